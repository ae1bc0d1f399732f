package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is one contribution collected from a student's guardian.
// The sum of payments per contribution type is that fund pool's income.
type Payment struct {
	DefaultModel
	Student            Student          `json:"-"`
	StudentID          uuid.UUID
	ContributionType   ContributionType `json:"-"`
	ContributionTypeID uuid.UUID
	Amount             decimal.Decimal  `gorm:"type:DECIMAL(20,8)"`
	Date               time.Time
	ReceiptNumber      string
	Note               string
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Payment)
	return p.checkIntegrity(tx, *toSave)
}

func (p *Payment) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Payment)

	if tx.Statement.Changed("StudentID") {
		err = tx.First(&Student{}, toSave.StudentID).Error
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("ContributionTypeID") {
		err = tx.First(&ContributionType{}, toSave.ContributionTypeID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that all referenced resources exist
func (p *Payment) checkIntegrity(tx *gorm.DB, toSave Payment) error {
	err := tx.First(&Student{}, toSave.StudentID).Error
	if err != nil {
		return err
	}

	return tx.First(&ContributionType{}, toSave.ContributionTypeID).Error
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	p.ReceiptNumber = strings.TrimSpace(p.ReceiptNumber)
	p.Note = strings.TrimSpace(p.Note)

	if !p.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if p.Date.IsZero() {
		p.Date = time.Now().In(time.UTC)
	} else {
		p.Date = p.Date.In(time.UTC)
	}

	return nil
}

// AfterFind enforces dates to be in UTC
func (p *Payment) AfterFind(tx *gorm.DB) (err error) {
	err = p.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	p.Date = p.Date.In(time.UTC)
	return
}

// Returns all payments on this instance for export
func (Payment) Export() (json.RawMessage, error) {
	var payments []Payment
	err := DB.Unscoped().Where(&Payment{}).Find(&payments).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&payments)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
