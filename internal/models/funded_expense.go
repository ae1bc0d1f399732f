package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseSource selects where a new expense draws its funds from.
type ExpenseSource string

const (
	// Draw from one contribution type's fund pool
	SourceContribution ExpenseSource = "CONTRIBUTION"
	// Draw from the cash donation pool
	SourceCashPool ExpenseSource = "CASH_POOL"
	// Split across all sources with a positive balance
	SourceAll ExpenseSource = "ALL"
	// Consume stock from an in-kind donation
	SourceInKind ExpenseSource = "IN_KIND"
)

// ExpenseDraft is the input for recording one funded expense.
//
// Exactly one funding mode applies: monetary drafts reference a fund pool
// (or the cash pool, or all sources) and carry an amount, in-kind drafts
// reference a donation and carry a quantity. The two modes never mix.
type ExpenseDraft struct {
	Category string
	Amount   decimal.Decimal
	Date     time.Time
	Note     string
	Source   ExpenseSource

	// SourceContribution only
	ContributionTypeID uuid.UUID

	// SourceInKind only
	DonationID    uuid.UUID
	QuantityUsed  uint
	EstimatedCost decimal.Decimal
}

// CreateFundedExpense validates a draft against the current balances and
// records the resulting expense rows.
//
// Balance computation, validation, allocation and row creation all run in
// one database transaction, so a multi-source allocation is either recorded
// completely or not at all.
func CreateFundedExpense(db *gorm.DB, draft ExpenseDraft) ([]Expense, error) {
	var created []Expense

	err := db.Transaction(func(tx *gorm.DB) error {
		err := checkDraftFields(draft)
		if err != nil {
			return err
		}

		category, err := resolveCategory(tx, draft)
		if err != nil {
			return err
		}
		draft.Category = category

		switch draft.Source {
		case SourceContribution:
			created, err = createFromContribution(tx, draft)
		case SourceCashPool:
			created, err = createFromCashPool(tx, draft)
		case SourceAll:
			created, err = createFromAllSources(tx, draft)
		case SourceInKind:
			created, err = createFromDonation(tx, draft)
		default:
			return fmt.Errorf("%w: unknown source %q", ErrFundingSourceInvalid, draft.Source)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// checkDraftFields rejects drafts that mix the fields of the monetary and
// the in-kind funding modes. Stray references must fail loudly instead of
// being dropped, the caller meant something else than what would be stored.
func checkDraftFields(draft ExpenseDraft) error {
	switch draft.Source {
	case SourceContribution, SourceCashPool, SourceAll:
		if draft.DonationID != uuid.Nil || draft.QuantityUsed != 0 || !draft.EstimatedCost.IsZero() {
			return fmt.Errorf("%w: %s expenses cannot reference a donation", ErrFundingSourceInvalid, draft.Source)
		}

		if draft.Source != SourceContribution && draft.ContributionTypeID != uuid.Nil {
			return fmt.Errorf("%w: %s expenses cannot reference a contribution type", ErrFundingSourceInvalid, draft.Source)
		}
	case SourceInKind:
		if draft.ContributionTypeID != uuid.Nil {
			return fmt.Errorf("%w: in-kind expenses cannot reference a contribution type", ErrFundingSourceInvalid)
		}

		if !draft.Amount.IsZero() {
			return fmt.Errorf("%w: in-kind expenses carry a quantity, not an amount", ErrFundingSourceInvalid)
		}
	}

	return nil
}

// resolveCategory returns the category for the draft. When none is given,
// the category rules are applied to the note in priority order.
func resolveCategory(tx *gorm.DB, draft ExpenseDraft) (string, error) {
	if draft.Category != "" {
		return draft.Category, nil
	}

	var rules []CategoryRule
	err := tx.
		Preload("ExpenseCategory").
		Order("priority ASC").
		Find(&rules).
		Error
	if err != nil {
		return "", err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, draft.Note) {
			return rule.ExpenseCategory.Name, nil
		}
	}

	return "", ErrCategoryRequired
}

func createFromContribution(tx *gorm.DB, draft ExpenseDraft) ([]Expense, error) {
	if !draft.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	if draft.ContributionTypeID == uuid.Nil {
		return nil, fmt.Errorf("%w: a contribution type must be referenced", ErrFundingSourceInvalid)
	}

	var contributionType ContributionType
	err := tx.First(&contributionType, draft.ContributionTypeID).Error
	if err != nil {
		return nil, err
	}

	source, err := ContributionBalance(tx, contributionType)
	if err != nil {
		return nil, err
	}

	if draft.Amount.GreaterThan(source.Available) {
		return nil, fmt.Errorf("%w: %s has %s available", ErrInsufficientFunds, source.Name, source.Available)
	}

	expense := Expense{
		Category:           draft.Category,
		Amount:             draft.Amount,
		Date:               draft.Date,
		Note:               draft.Note,
		ContributionTypeID: &contributionType.ID,
	}
	err = tx.Create(&expense).Error
	if err != nil {
		return nil, err
	}

	return []Expense{expense}, nil
}

func createFromCashPool(tx *gorm.DB, draft ExpenseDraft) ([]Expense, error) {
	if !draft.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	pool, err := CashPoolBalance(tx)
	if err != nil {
		return nil, err
	}

	if draft.Amount.GreaterThan(pool.Available) {
		return nil, fmt.Errorf("%w: the cash pool has %s available", ErrInsufficientFunds, pool.Available)
	}

	expense := Expense{
		Category: draft.Category,
		Amount:   draft.Amount,
		Date:     draft.Date,
		Note:     draft.Note,
	}
	err = tx.Create(&expense).Error
	if err != nil {
		return nil, err
	}

	return []Expense{expense}, nil
}

// createFromAllSources splits the amount across the whole funding catalog
// and creates one expense row per allocated share.
func createFromAllSources(tx *gorm.DB, draft ExpenseDraft) ([]Expense, error) {
	sources, err := FundingSources(tx)
	if err != nil {
		return nil, err
	}

	shares, err := Allocate(draft.Amount, sources)
	if err != nil {
		return nil, err
	}

	expenses := make([]Expense, 0, len(shares))
	for _, share := range shares {
		expense := Expense{
			Category: draft.Category,
			Amount:   share.Amount,
			Date:     draft.Date,
			Note:     draft.Note,
		}

		if !share.Source.IsCashPool() {
			id := share.Source.ID
			expense.ContributionTypeID = &id
		}

		err = tx.Create(&expense).Error
		if err != nil {
			return nil, err
		}

		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// createFromDonation validates the quantity against the donation's
// remaining usable stock, records a zero-amount expense and consumes the
// stock on the donation.
func createFromDonation(tx *gorm.DB, draft ExpenseDraft) ([]Expense, error) {
	if draft.DonationID == uuid.Nil {
		return nil, fmt.Errorf("%w: a donation must be referenced", ErrFundingSourceInvalid)
	}

	if draft.QuantityUsed == 0 {
		return nil, ErrQuantityNotPositive
	}

	var donation Donation
	err := tx.First(&donation, draft.DonationID).Error
	if err != nil {
		return nil, err
	}

	if donation.Type != DonationInKind {
		return nil, ErrDonationNotInKind
	}

	remaining := donation.RemainingUsable()
	if draft.QuantityUsed > remaining {
		return nil, fmt.Errorf("%w: remaining usable stock: %d", ErrQuantityExceedsStock, remaining)
	}

	expense := Expense{
		Category:      draft.Category,
		Amount:        decimal.Zero,
		Date:          draft.Date,
		Note:          draft.Note,
		DonationID:    &donation.ID,
		QuantityUsed:  draft.QuantityUsed,
		EstimatedCost: draft.EstimatedCost,
	}
	err = tx.Create(&expense).Error
	if err != nil {
		return nil, err
	}

	err = tx.Model(&donation).Update("used_quantity", donation.UsedQuantity+draft.QuantityUsed).Error
	if err != nil {
		return nil, err
	}

	return []Expense{expense}, nil
}

// DeleteExpense removes an expense. For an in-kind expense the consumed
// units are returned to the donation's stock in the same transaction.
func DeleteExpense(db *gorm.DB, expense Expense) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if expense.DonationID != nil && expense.QuantityUsed > 0 {
			var donation Donation
			err := tx.First(&donation, expense.DonationID).Error
			if err != nil {
				return err
			}

			used := uint(0)
			if donation.UsedQuantity > expense.QuantityUsed {
				used = donation.UsedQuantity - expense.QuantityUsed
			}

			err = tx.Model(&donation).Update("used_quantity", used).Error
			if err != nil {
				return err
			}
		}

		return tx.Delete(&expense).Error
	})
}
