package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Guardian is the parent or guardian financially responsible for
// one or more students.
type Guardian struct {
	DefaultModel
	Name          string
	ContactNumber string
	Address       string
	Occupation    string
	Note          string
}

func (g *Guardian) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.ContactNumber = strings.TrimSpace(g.ContactNumber)
	g.Address = strings.TrimSpace(g.Address)
	g.Occupation = strings.TrimSpace(g.Occupation)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

// Returns all guardians on this instance for export
func (Guardian) Export() (json.RawMessage, error) {
	var guardians []Guardian
	err := DB.Unscoped().Where(&Guardian{}).Find(&guardians).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&guardians)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
