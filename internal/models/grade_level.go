package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// GradeLevel represents one grade level offered by the school.
type GradeLevel struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Note string
}

func (g *GradeLevel) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

// Returns all grade levels on this instance for export
func (GradeLevel) Export() (json.RawMessage, error) {
	var gradeLevels []GradeLevel
	err := DB.Unscoped().Where(&GradeLevel{}).Find(&gradeLevels).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&gradeLevels)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
