package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

// SchoolYear is the enrollment period all other school resources reference.
type SchoolYear struct {
	DefaultModel
	Name      string `gorm:"uniqueIndex"`
	StartDate time.Time
	EndDate   time.Time
	Note      string
}

func (s *SchoolYear) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)

	return nil
}

// Returns all school years on this instance for export
func (SchoolYear) Export() (json.RawMessage, error) {
	var schoolYears []SchoolYear
	err := DB.Unscoped().Where(&SchoolYear{}).Find(&schoolYears).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&schoolYears)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
