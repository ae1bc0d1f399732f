package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DonationType distinguishes cash donations, which feed the cash pool,
// from in-kind donations of physical items.
type DonationType string

const (
	DonationCash   DonationType = "CASH"
	DonationInKind DonationType = "IN_KIND"
)

// Donation is a donation to the school. Cash donations carry an amount and
// form the aggregate cash pool. In-kind donations carry item quantities and
// are consumed by recording quantity expenses against them.
type Donation struct {
	DefaultModel
	DonorName string
	Date      time.Time
	Type      DonationType `gorm:"default:CASH"`
	Note      string

	// Cash donations only
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	// In-kind donations only
	ItemName         string
	DonatedQuantity  uint
	UsedQuantity     uint
	DamagedQuantity  uint
	UnusableQuantity uint
	UsableQuantity   uint // Optional explicit cap on usable stock, 0 means unset
}

// RemainingUsable returns how many units of an in-kind donation can still
// be used: donated minus used, damaged and unusable units. An explicit
// UsableQuantity caps the result since the override cannot claim more stock
// than physically exists. The result is never negative.
func (d Donation) RemainingUsable() uint {
	consumed := d.UsedQuantity + d.DamagedQuantity + d.UnusableQuantity
	if consumed >= d.DonatedQuantity {
		return 0
	}

	remaining := d.DonatedQuantity - consumed
	if d.UsableQuantity != 0 && d.UsableQuantity < remaining {
		remaining = d.UsableQuantity
	}

	return remaining
}

func (d *Donation) BeforeSave(_ *gorm.DB) error {
	d.DonorName = strings.TrimSpace(d.DonorName)
	d.ItemName = strings.TrimSpace(d.ItemName)
	d.Note = strings.TrimSpace(d.Note)

	if d.Type == "" {
		d.Type = DonationCash
	}

	if !slices.Contains([]DonationType{DonationCash, DonationInKind}, d.Type) {
		return ErrDonationType
	}

	if d.Type == DonationCash && !d.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if d.Date.IsZero() {
		d.Date = time.Now().In(time.UTC)
	} else {
		d.Date = d.Date.In(time.UTC)
	}

	return nil
}

// AfterFind enforces dates to be in UTC
func (d *Donation) AfterFind(tx *gorm.DB) (err error) {
	err = d.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	d.Date = d.Date.In(time.UTC)
	return
}

// Returns all donations on this instance for export
func (Donation) Export() (json.RawMessage, error) {
	var donations []Donation
	err := DB.Unscoped().Where(&Donation{}).Find(&donations).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&donations)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
