package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContributionType is one fee category collected from guardians. Payments
// against it form the fund pool that expenses can be drawn from.
type ContributionType struct {
	DefaultModel
	Name            string          `gorm:"uniqueIndex:contribution_type_name_year"`
	SchoolYear      SchoolYear      `json:"-"`
	SchoolYearID    uuid.UUID       `gorm:"uniqueIndex:contribution_type_name_year"`
	SuggestedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount asked per student, informational only
	Note            string
	Archived        bool
}

func (c *ContributionType) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*ContributionType)
	return tx.First(&SchoolYear{}, toSave.SchoolYearID).Error
}

func (c *ContributionType) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(ContributionType)

	if tx.Statement.Changed("SchoolYearID") {
		err = tx.First(&SchoolYear{}, toSave.SchoolYearID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *ContributionType) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.SuggestedAmount.IsNegative() {
		return ErrAmountNotPositive
	}

	return nil
}

// Returns all contribution types on this instance for export
func (ContributionType) Export() (json.RawMessage, error) {
	var contributionTypes []ContributionType
	err := DB.Unscoped().Where(&ContributionType{}).Find(&contributionTypes).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&contributionTypes)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
