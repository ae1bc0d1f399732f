package models_test

import (
	"testing"

	"github.com/schoolfunds/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// payInto records a payment so that the contribution type's pool holds the
// given amount.
func (suite *TestSuiteStandard) payInto(contributionType models.ContributionType, amount float64) {
	student := suite.createTestStudent(models.Student{})
	_ = suite.createTestPayment(models.Payment{
		StudentID:          student.ID,
		ContributionTypeID: contributionType.ID,
		Amount:             decimal.NewFromFloat(amount),
	})
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseContribution() {
	contributionType := suite.createTestContributionType(models.ContributionType{})
	suite.payInto(contributionType, 500)

	expenses, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category:           "Supplies",
		Amount:             decimal.NewFromFloat(200),
		Source:             models.SourceContribution,
		ContributionTypeID: contributionType.ID,
	})
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)

	suite.Assert().Equal(contributionType.ID, *expenses[0].ContributionTypeID)
	suite.Assert().True(expenses[0].Amount.Equal(decimal.NewFromFloat(200)))

	source, err := models.ContributionBalance(models.DB, contributionType)
	suite.Require().Nil(err)
	suite.Assert().True(source.Available.Equal(decimal.NewFromFloat(300)), source.Available.String())
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseContributionInsufficient() {
	contributionType := suite.createTestContributionType(models.ContributionType{})
	suite.payInto(contributionType, 100)

	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category:           "Supplies",
		Amount:             decimal.NewFromFloat(100.01),
		Source:             models.SourceContribution,
		ContributionTypeID: contributionType.ID,
	})

	suite.Assert().ErrorIs(err, models.ErrInsufficientFunds)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "a rejected draft must not leave expense rows behind")
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseCashPool() {
	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(400)})

	expenses, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category: "Repairs",
		Amount:   decimal.NewFromFloat(150),
		Source:   models.SourceCashPool,
	})
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)

	suite.Assert().Nil(expenses[0].ContributionTypeID)
	suite.Assert().Nil(expenses[0].DonationID)

	pool, err := models.CashPoolBalance(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(pool.Available.Equal(decimal.NewFromFloat(250)), pool.Available.String())
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseCashPoolInsufficient() {
	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(100)})

	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category: "Repairs",
		Amount:   decimal.NewFromFloat(500),
		Source:   models.SourceCashPool,
	})

	suite.Assert().ErrorIs(err, models.ErrInsufficientFunds)
}

// An expense drawn from all sources creates one row per allocated share and
// the rows add up to the requested amount.
func (suite *TestSuiteStandard) TestCreateFundedExpenseAllSources() {
	first := suite.createTestContributionType(models.ContributionType{Name: "Athletics fee"})
	second := suite.createTestContributionType(models.ContributionType{Name: "PTA fee"})
	suite.payInto(first, 300)
	suite.payInto(second, 300)
	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(300)})

	expenses, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category: "Field trip",
		Amount:   decimal.NewFromFloat(600),
		Source:   models.SourceAll,
	})
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 3)

	sum := decimal.Zero
	for _, expense := range expenses {
		sum = sum.Add(expense.Amount)
	}
	suite.Assert().True(sum.Equal(decimal.NewFromFloat(600)), sum.String())

	// The cash pool share is the row without a contribution type
	suite.Assert().NotNil(expenses[0].ContributionTypeID)
	suite.Assert().NotNil(expenses[1].ContributionTypeID)
	suite.Assert().Nil(expenses[2].ContributionTypeID)
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseAllSourcesInsufficient() {
	contributionType := suite.createTestContributionType(models.ContributionType{})
	suite.payInto(contributionType, 100)

	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category: "Field trip",
		Amount:   decimal.NewFromFloat(5000),
		Source:   models.SourceAll,
	})

	suite.Assert().ErrorIs(err, models.ErrInsufficientTotalFunds)
}

// Spending exactly the total available empties the eligible set, the next
// allocation has nothing left to draw from.
func (suite *TestSuiteStandard) TestCreateFundedExpenseAllSourcesDrainsCatalog() {
	first := suite.createTestContributionType(models.ContributionType{Name: "Library fund"})
	second := suite.createTestContributionType(models.ContributionType{Name: "Sports fund"})
	suite.payInto(first, 300)
	suite.payInto(second, 300)
	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(400)})

	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category: "Renovation",
		Amount:   decimal.NewFromFloat(1000),
		Source:   models.SourceAll,
	})
	suite.Require().Nil(err)

	sources, err := models.FundingSources(models.DB)
	suite.Require().Nil(err)
	for _, source := range sources {
		suite.Assert().True(source.Available.IsZero(), source.Name)
	}
	suite.Assert().Empty(models.Eligible(sources))

	_, err = models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category: "Renovation",
		Amount:   decimal.NewFromFloat(1),
		Source:   models.SourceAll,
	})
	suite.Assert().ErrorIs(err, models.ErrInsufficientTotalFunds)
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseInKind() {
	donation := suite.createTestDonation(models.Donation{
		Type:            models.DonationInKind,
		ItemName:        "Reams of paper",
		DonatedQuantity: 20,
	})

	expenses, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category:     "Supplies",
		Source:       models.SourceInKind,
		DonationID:   donation.ID,
		QuantityUsed: 5,
	})
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)

	suite.Assert().True(expenses[0].Amount.IsZero(), "in-kind expenses do not move money")
	suite.Assert().Equal(uint(5), expenses[0].QuantityUsed)

	suite.Require().Nil(models.DB.First(&donation, donation.ID).Error)
	suite.Assert().Equal(uint(15), donation.RemainingUsable())
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseInKindExceedsStock() {
	donation := suite.createTestDonation(models.Donation{
		Type:            models.DonationInKind,
		ItemName:        "Chairs",
		DonatedQuantity: 4,
		UsedQuantity:    2,
	})

	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category:     "Furniture",
		Source:       models.SourceInKind,
		DonationID:   donation.ID,
		QuantityUsed: 3,
	})

	suite.Assert().ErrorIs(err, models.ErrQuantityExceedsStock)
}

// The rejection has to name the exact remaining stock so the caller can
// retry with a valid quantity.
func (suite *TestSuiteStandard) TestCreateFundedExpenseInKindStockInError() {
	donation := suite.createTestDonation(models.Donation{
		Type:             models.DonationInKind,
		ItemName:         "Rice sacks",
		DonatedQuantity:  10,
		UsedQuantity:     3,
		DamagedQuantity:  1,
		UnusableQuantity: 0,
	})
	suite.Require().Equal(uint(6), donation.RemainingUsable())

	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category:     "Feeding program",
		Source:       models.SourceInKind,
		DonationID:   donation.ID,
		QuantityUsed: 7,
	})
	suite.Require().ErrorIs(err, models.ErrQuantityExceedsStock)
	suite.Assert().Contains(err.Error(), "remaining usable stock: 6")

	expenses, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category:     "Feeding program",
		Source:       models.SourceInKind,
		DonationID:   donation.ID,
		QuantityUsed: 6,
	})
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseInKindRequiresInKindDonation() {
	donation := suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(50)})

	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category:     "Supplies",
		Source:       models.SourceInKind,
		DonationID:   donation.ID,
		QuantityUsed: 1,
	})

	suite.Assert().ErrorIs(err, models.ErrDonationNotInKind)
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseUnknownSource() {
	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category: "Supplies",
		Amount:   decimal.NewFromFloat(10),
		Source:   "LOTTERY",
	})

	suite.Assert().ErrorIs(err, models.ErrFundingSourceInvalid)
}

// A draft can only carry the fields of its own funding mode. Stray
// references from the other mode are rejected, not silently dropped.
func (suite *TestSuiteStandard) TestCreateFundedExpenseMixedModeFields() {
	contributionType := suite.createTestContributionType(models.ContributionType{})
	suite.payInto(contributionType, 500)

	donation := suite.createTestDonation(models.Donation{
		Type:            models.DonationInKind,
		ItemName:        "Paint cans",
		DonatedQuantity: 10,
	})

	tests := []struct {
		name  string
		draft models.ExpenseDraft
	}{
		{
			"contribution draft referencing a donation",
			models.ExpenseDraft{
				Category:           "Supplies",
				Amount:             decimal.NewFromFloat(100),
				Source:             models.SourceContribution,
				ContributionTypeID: contributionType.ID,
				DonationID:         donation.ID,
			},
		},
		{
			"cash pool draft carrying a quantity",
			models.ExpenseDraft{
				Category:     "Supplies",
				Amount:       decimal.NewFromFloat(100),
				Source:       models.SourceCashPool,
				QuantityUsed: 2,
			},
		},
		{
			"all sources draft referencing a contribution type",
			models.ExpenseDraft{
				Category:           "Supplies",
				Amount:             decimal.NewFromFloat(100),
				Source:             models.SourceAll,
				ContributionTypeID: contributionType.ID,
			},
		},
		{
			"in-kind draft carrying an amount",
			models.ExpenseDraft{
				Category:     "Supplies",
				Amount:       decimal.NewFromFloat(100),
				Source:       models.SourceInKind,
				DonationID:   donation.ID,
				QuantityUsed: 2,
			},
		},
		{
			"in-kind draft referencing a contribution type",
			models.ExpenseDraft{
				Category:           "Supplies",
				Source:             models.SourceInKind,
				DonationID:         donation.ID,
				ContributionTypeID: contributionType.ID,
				QuantityUsed:       2,
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.CreateFundedExpense(models.DB, tt.draft)
			assert.ErrorIs(t, err, models.ErrFundingSourceInvalid)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Zero(count, "no expense may be recorded for a rejected draft")
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseCategoryFromRules() {
	category := suite.createTestExpenseCategory(models.ExpenseCategory{Name: "Utilities"})
	_ = suite.createTestCategoryRule(models.CategoryRule{
		Priority:          1,
		Match:             "*electric*",
		ExpenseCategoryID: category.ID,
	})

	fallback := suite.createTestExpenseCategory(models.ExpenseCategory{Name: "Other"})
	_ = suite.createTestCategoryRule(models.CategoryRule{
		Priority:          2,
		Match:             "*",
		ExpenseCategoryID: fallback.ID,
	})

	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(1000)})

	expenses, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Note:   "March electric bill",
		Amount: decimal.NewFromFloat(75),
		Source: models.SourceCashPool,
	})
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)

	suite.Assert().Equal("Utilities", expenses[0].Category)
}

func (suite *TestSuiteStandard) TestCreateFundedExpenseCategoryRequired() {
	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(1000)})

	_, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Note:   "No rule matches this",
		Amount: decimal.NewFromFloat(75),
		Source: models.SourceCashPool,
	})

	suite.Assert().ErrorIs(err, models.ErrCategoryRequired)
}

func (suite *TestSuiteStandard) TestDeleteExpenseReturnsStock() {
	donation := suite.createTestDonation(models.Donation{
		Type:            models.DonationInKind,
		ItemName:        "Whiteboards",
		DonatedQuantity: 10,
	})

	expenses, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category:     "Classroom",
		Source:       models.SourceInKind,
		DonationID:   donation.ID,
		QuantityUsed: 4,
	})
	suite.Require().Nil(err)

	suite.Require().Nil(models.DeleteExpense(models.DB, expenses[0]))

	suite.Require().Nil(models.DB.First(&donation, donation.ID).Error)
	suite.Assert().Equal(uint(0), donation.UsedQuantity)
	suite.Assert().Equal(uint(10), donation.RemainingUsable())
}

func (suite *TestSuiteStandard) TestDeleteExpenseMonetary() {
	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(100)})

	expenses, err := models.CreateFundedExpense(models.DB, models.ExpenseDraft{
		Category: "Repairs",
		Amount:   decimal.NewFromFloat(60),
		Source:   models.SourceCashPool,
	})
	suite.Require().Nil(err)

	suite.Require().Nil(models.DeleteExpense(models.DB, expenses[0]))

	pool, err := models.CashPoolBalance(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(pool.Available.Equal(decimal.NewFromFloat(100)), pool.Available.String())
}
