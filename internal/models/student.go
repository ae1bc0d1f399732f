package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// StudentStatus is the enrollment status of a student.
type StudentStatus string

const (
	StudentEnrolled    StudentStatus = "ENROLLED"
	StudentTransferred StudentStatus = "TRANSFERRED"
	StudentGraduated   StudentStatus = "GRADUATED"
	StudentDropped     StudentStatus = "DROPPED"
)

// Student is an enrolled student. Every student references the guardian
// paying their contributions and the section they are enrolled in.
type Student struct {
	DefaultModel
	FirstName     string
	LastName      string
	StudentNumber string        `gorm:"uniqueIndex"`
	Guardian      Guardian      `json:"-"`
	GuardianID    uuid.UUID
	Section       Section       `json:"-"`
	SectionID     uuid.UUID
	SchoolYear    SchoolYear    `json:"-"`
	SchoolYearID  uuid.UUID
	Status        StudentStatus `gorm:"default:ENROLLED"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Student)
	return s.checkIntegrity(tx, *toSave)
}

func (s *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Student)

	if tx.Statement.Changed("GuardianID") {
		err = tx.First(&Guardian{}, toSave.GuardianID).Error
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("SectionID") {
		err = tx.First(&Section{}, toSave.SectionID).Error
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
func (s *Student) checkIntegrity(tx *gorm.DB, toSave Student) error {
	err := tx.First(&Guardian{}, toSave.GuardianID).Error
	if err != nil {
		return err
	}

	err = tx.First(&Section{}, toSave.SectionID).Error
	if err != nil {
		return err
	}

	return tx.First(&SchoolYear{}, toSave.SchoolYearID).Error
}

func (s *Student) BeforeSave(_ *gorm.DB) error {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.StudentNumber = strings.TrimSpace(s.StudentNumber)

	if s.Status == "" {
		s.Status = StudentEnrolled
	}

	if !slices.Contains([]StudentStatus{StudentEnrolled, StudentTransferred, StudentGraduated, StudentDropped}, s.Status) {
		return ErrStudentStatus
	}

	return nil
}

// Returns all students on this instance for export
func (Student) Export() (json.RawMessage, error) {
	var students []Student
	err := DB.Unscoped().Where(&Student{}).Find(&students).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&students)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
