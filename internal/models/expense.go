package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent from a fund pool or stock consumed from an
// in-kind donation.
//
// The funding attribution follows from the references: an expense with a
// ContributionTypeID is drawn from that fund pool, one with a DonationID
// consumes in-kind stock and has a zero amount, and one with neither is
// drawn from the cash donation pool.
type Expense struct {
	DefaultModel
	Category           string
	Amount             decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date               time.Time
	Note               string
	ContributionType   ContributionType `json:"-"`
	ContributionTypeID *uuid.UUID
	Donation           Donation `json:"-"`
	DonationID         *uuid.UUID

	// In-kind expenses only
	QuantityUsed  uint
	EstimatedCost decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Informational estimate of the consumed stock's value
}

// InKind reports whether the expense consumes in-kind donation stock.
func (e Expense) InKind() bool {
	return e.DonationID != nil
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Note = strings.TrimSpace(e.Note)

	// Ensure that references are nil and not pointers to a nil UUID
	if e.ContributionTypeID != nil && *e.ContributionTypeID == uuid.Nil {
		e.ContributionTypeID = nil
	}
	if e.DonationID != nil && *e.DonationID == uuid.Nil {
		e.DonationID = nil
	}

	// An expense never references a fund pool and a donation at the same time
	if e.ContributionTypeID != nil && e.DonationID != nil {
		return ErrFundingSourceInvalid
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind enforces dates to be in UTC
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return
}

// Returns all expenses on this instance for export
func (Expense) Export() (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Unscoped().Where(&Expense{}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
