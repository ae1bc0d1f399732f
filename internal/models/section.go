package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section is a class section of a grade level in a specific school year.
type Section struct {
	DefaultModel
	Name         string     `gorm:"uniqueIndex:section_name_grade_year"`
	GradeLevel   GradeLevel `json:"-"`
	GradeLevelID uuid.UUID  `gorm:"uniqueIndex:section_name_grade_year"`
	SchoolYear   SchoolYear `json:"-"`
	SchoolYearID uuid.UUID  `gorm:"uniqueIndex:section_name_grade_year"`
	Adviser      string
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Section)
	return s.checkIntegrity(tx, *toSave)
}

func (s *Section) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Section)

	if tx.Statement.Changed("GradeLevelID") {
		err = tx.First(&GradeLevel{}, toSave.GradeLevelID).Error
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("SchoolYearID") {
		err = tx.First(&SchoolYear{}, toSave.SchoolYearID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that all referenced resources exist
func (s *Section) checkIntegrity(tx *gorm.DB, toSave Section) error {
	err := tx.First(&GradeLevel{}, toSave.GradeLevelID).Error
	if err != nil {
		return err
	}

	return tx.First(&SchoolYear{}, toSave.SchoolYearID).Error
}

func (s *Section) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Adviser = strings.TrimSpace(s.Adviser)

	return nil
}

// Returns all sections on this instance for export
func (Section) Export() (json.RawMessage, error) {
	var sections []Section
	err := DB.Unscoped().Where(&Section{}).Find(&sections).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&sections)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
