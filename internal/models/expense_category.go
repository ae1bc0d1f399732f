package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// ExpenseCategory is a known expense category. Categories are stored in the
// database so that all clients share one list instead of keeping their own.
type ExpenseCategory struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Note string
}

func (e *ExpenseCategory) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	return nil
}

// Returns all expense categories on this instance for export
func (ExpenseCategory) Export() (json.RawMessage, error) {
	var expenseCategories []ExpenseCategory
	err := DB.Unscoped().Where(&ExpenseCategory{}).Find(&expenseCategories).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenseCategories)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
