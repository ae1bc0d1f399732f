package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRule assigns an expense category to expenses whose note matches
// the Match glob. Rules are applied in ascending priority order when an
// expense is recorded without an explicit category.
type CategoryRule struct {
	DefaultModel
	Priority          uint
	Match             string
	ExpenseCategory   ExpenseCategory `json:"-"`
	ExpenseCategoryID uuid.UUID
}

func (r *CategoryRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*CategoryRule)
	return tx.First(&ExpenseCategory{}, toSave.ExpenseCategoryID).Error
}

func (r *CategoryRule) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(CategoryRule)

	if tx.Statement.Changed("ExpenseCategoryID") {
		err = tx.First(&ExpenseCategory{}, toSave.ExpenseCategoryID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Returns all category rules on this instance for export
func (CategoryRule) Export() (json.RawMessage, error) {
	var categoryRules []CategoryRule
	err := DB.Unscoped().Where(&CategoryRule{}).Find(&categoryRules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&categoryRules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
