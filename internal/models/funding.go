package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FundingSource is one spendable pool of money: a contribution type's fund
// pool or the aggregate pool of undesignated cash donations.
//
// Available is floored at zero. TotalPayments and TotalExpenses are reported
// unmodified, so a pool whose expenses exceed its payments is visible to
// callers even though it can no longer be spent from.
type FundingSource struct {
	ID            uuid.UUID       `json:"id"`            // Contribution type ID, Nil for the cash pool
	Name          string          `json:"name"`          // Display name of the source
	TotalPayments decimal.Decimal `json:"totalPayments"` // Money collected for this source
	TotalExpenses decimal.Decimal `json:"totalExpenses"` // Money spent from this source
	Available     decimal.Decimal `json:"available"`     // Spendable balance, never negative
}

// IsCashPool reports whether the source is the aggregate cash donation pool.
func (f FundingSource) IsCashPool() bool {
	return f.ID == uuid.Nil
}

// available floors a balance at zero.
func available(payments, expenses decimal.Decimal) decimal.Decimal {
	balance := payments.Sub(expenses)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// sumAmount sums the amount column of a table for the given conditions.
// Soft-deleted rows are excluded explicitly since Table() queries bypass
// gorm's deleted_at scoping.
func sumAmount(tx *gorm.DB, table string, query string, args ...any) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := tx.
		Table(table).
		Where("deleted_at IS NULL").
		Where(query, args...).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	// If no rows are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// ContributionBalance computes the funding source figures for one
// contribution type.
func ContributionBalance(tx *gorm.DB, contributionType ContributionType) (FundingSource, error) {
	payments, err := sumAmount(tx, "payments", "contribution_type_id = ?", contributionType.ID)
	if err != nil {
		return FundingSource{}, err
	}

	expenses, err := sumAmount(tx, "expenses", "contribution_type_id = ?", contributionType.ID)
	if err != nil {
		return FundingSource{}, err
	}

	return FundingSource{
		ID:            contributionType.ID,
		Name:          contributionType.Name,
		TotalPayments: payments,
		TotalExpenses: expenses,
		Available:     available(payments, expenses),
	}, nil
}

// CashPoolBalance computes the funding source figures for the cash donation
// pool. Expenses without a contribution type or donation reference are drawn
// from this pool.
func CashPoolBalance(tx *gorm.DB) (FundingSource, error) {
	donated, err := sumAmount(tx, "donations", "type = ?", DonationCash)
	if err != nil {
		return FundingSource{}, err
	}

	expenses, err := sumAmount(tx, "expenses", "contribution_type_id IS NULL AND donation_id IS NULL")
	if err != nil {
		return FundingSource{}, err
	}

	return FundingSource{
		ID:            uuid.Nil,
		Name:          "Cash donations",
		TotalPayments: donated,
		TotalExpenses: expenses,
		Available:     available(donated, expenses),
	}, nil
}

// FundingSources returns the full funding source catalog: one source per
// non-archived contribution type in name order, with the cash pool as the
// last entry.
func FundingSources(tx *gorm.DB) ([]FundingSource, error) {
	var contributionTypes []ContributionType
	// A struct condition would drop the zero-valued archived field, so the
	// filter is spelled out.
	err := tx.
		Where("archived = ?", false).
		Order("name ASC").
		Find(&contributionTypes).
		Error
	if err != nil {
		return nil, err
	}

	sources := make([]FundingSource, 0, len(contributionTypes)+1)
	for _, contributionType := range contributionTypes {
		source, err := ContributionBalance(tx, contributionType)
		if err != nil {
			return nil, err
		}

		sources = append(sources, source)
	}

	pool, err := CashPoolBalance(tx)
	if err != nil {
		return nil, err
	}

	return append(sources, pool), nil
}

// Eligible returns the sources with a positive available balance,
// preserving catalog order. Sources with a zero balance can never receive
// an allocation.
func Eligible(sources []FundingSource) []FundingSource {
	eligible := make([]FundingSource, 0, len(sources))
	for _, source := range sources {
		if source.Available.IsPositive() {
			eligible = append(eligible, source)
		}
	}

	return eligible
}
