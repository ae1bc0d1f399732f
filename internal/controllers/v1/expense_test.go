package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/schoolfunds/backend/internal/controllers/v1"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/schoolfunds/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fundContributionType records a payment so that the contribution type's
// pool holds the given amount.
func fundContributionType(t *testing.T, contributionType v1.ContributionTypeResponse, amount float64) {
	_ = createTestPayment(t, v1.PaymentEditable{
		ContributionTypeID: contributionType.Data.ID,
		Amount:             decimal.NewFromFloat(amount),
	})
}

func (suite *TestSuiteStandard) TestExpensesCreateFromContribution() {
	contributionType := createTestContributionType(suite.T(), v1.ContributionTypeEditable{})
	fundContributionType(suite.T(), contributionType, 500)

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category:           "Supplies",
		Amount:             decimal.NewFromFloat(200),
		Source:             models.SourceContribution,
		ContributionTypeID: contributionType.Data.ID,
	})
	suite.Require().Len(response.Data, 1)

	expense := response.Data[0].Data
	suite.Assert().Equal(models.SourceContribution, expense.Source)
	suite.Assert().Equal(contributionType.Data.ID, *expense.ContributionTypeID)
	suite.Require().NotNil(expense.Links.ContributionType)
}

func (suite *TestSuiteStandard) TestExpensesCreateInsufficientFunds() {
	contributionType := createTestContributionType(suite.T(), v1.ContributionTypeEditable{})
	fundContributionType(suite.T(), contributionType, 100)

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category:           "Supplies",
		Amount:             decimal.NewFromFloat(100.01),
		Source:             models.SourceContribution,
		ContributionTypeID: contributionType.Data.ID,
	}, http.StatusBadRequest)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[0].Error, models.ErrInsufficientFunds.Error())
}

func (suite *TestSuiteStandard) TestExpensesCreateFromCashPool() {
	_ = createTestDonation(suite.T(), v1.DonationEditable{Amount: decimal.NewFromFloat(400)})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category: "Repairs",
		Amount:   decimal.NewFromFloat(150),
		Source:   models.SourceCashPool,
	})
	suite.Require().Len(response.Data, 1)

	expense := response.Data[0].Data
	suite.Assert().Equal(models.SourceCashPool, expense.Source)
	suite.Assert().Nil(expense.ContributionTypeID)
	suite.Assert().Nil(expense.DonationID)
}

// An expense funded from all sources creates one row per allocated share.
func (suite *TestSuiteStandard) TestExpensesCreateFromAllSources() {
	first := createTestContributionType(suite.T(), v1.ContributionTypeEditable{Name: "Athletics fee"})
	second := createTestContributionType(suite.T(), v1.ContributionTypeEditable{Name: "PTA fee"})
	fundContributionType(suite.T(), first, 300)
	fundContributionType(suite.T(), second, 300)
	_ = createTestDonation(suite.T(), v1.DonationEditable{Amount: decimal.NewFromFloat(300)})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category: "Field trip",
		Amount:   decimal.NewFromFloat(600),
		Source:   models.SourceAll,
	})
	suite.Require().Len(response.Data, 3)

	sum := decimal.Zero
	for _, r := range response.Data {
		suite.Require().NotNil(r.Data)
		sum = sum.Add(r.Data.Amount)
	}

	suite.Assert().True(sum.Equal(decimal.NewFromFloat(600)), sum.String())
	suite.Assert().Equal(models.SourceCashPool, response.Data[2].Data.Source, "the cash pool share comes last")
}

func (suite *TestSuiteStandard) TestExpensesCreateFromAllSourcesInsufficient() {
	contributionType := createTestContributionType(suite.T(), v1.ContributionTypeEditable{})
	fundContributionType(suite.T(), contributionType, 100)

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category: "Field trip",
		Amount:   decimal.NewFromFloat(5000),
		Source:   models.SourceAll,
	}, http.StatusBadRequest)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[0].Error, models.ErrInsufficientTotalFunds.Error())
}

func (suite *TestSuiteStandard) TestExpensesCreateInKind() {
	donation := createTestDonation(suite.T(), v1.DonationEditable{
		Type:            models.DonationInKind,
		ItemName:        "Reams of bond paper",
		DonatedQuantity: 20,
	})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category:     "Supplies",
		Source:       models.SourceInKind,
		DonationID:   donation.Data.ID,
		QuantityUsed: 5,
	})
	suite.Require().Len(response.Data, 1)

	expense := response.Data[0].Data
	suite.Assert().Equal(models.SourceInKind, expense.Source)
	suite.Assert().True(expense.Amount.IsZero(), "in-kind expenses do not move money")
	suite.Assert().Equal(uint(5), expense.QuantityUsed)

	// The donation's stock is reduced
	r := test.Request(suite.T(), http.MethodGet, donation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var reloaded v1.DonationResponse
	test.DecodeResponse(suite.T(), &r, &reloaded)
	suite.Assert().Equal(uint(15), reloaded.Data.RemainingUsable)
}

func (suite *TestSuiteStandard) TestExpensesCreateInKindExceedsStock() {
	donation := createTestDonation(suite.T(), v1.DonationEditable{
		Type:            models.DonationInKind,
		ItemName:        "Monobloc chairs",
		DonatedQuantity: 4,
	})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category:     "Furniture",
		Source:       models.SourceInKind,
		DonationID:   donation.Data.ID,
		QuantityUsed: 5,
	}, http.StatusBadRequest)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[0].Error, models.ErrQuantityExceedsStock.Error())
	suite.Assert().Contains(*response.Data[0].Error, "remaining usable stock: 4")
}

// A draft mixing monetary and in-kind fields is a client error.
func (suite *TestSuiteStandard) TestExpensesCreateMixedModeFields() {
	donation := createTestDonation(suite.T(), v1.DonationEditable{
		Type:            models.DonationInKind,
		ItemName:        "Folders",
		DonatedQuantity: 10,
	})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category:     "Supplies",
		Amount:       decimal.NewFromFloat(100),
		Source:       models.SourceInKind,
		DonationID:   donation.Data.ID,
		QuantityUsed: 2,
	}, http.StatusBadRequest)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[0].Error, models.ErrFundingSourceInvalid.Error())
}

func (suite *TestSuiteStandard) TestExpensesCreateUnknownSource() {
	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category: "Supplies",
		Amount:   decimal.NewFromFloat(10),
		Source:   "LOTTERY",
	}, http.StatusBadRequest)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[0].Error, models.ErrFundingSourceInvalid.Error())
}

// When no category is given, the category rules resolve one from the note.
func (suite *TestSuiteStandard) TestExpensesCreateCategoryFromRules() {
	category := createTestExpenseCategory(suite.T(), v1.ExpenseCategoryEditable{Name: "Utilities"})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{
		Priority:          1,
		Match:             "*electric*",
		ExpenseCategoryID: category.Data.ID,
	})

	_ = createTestDonation(suite.T(), v1.DonationEditable{Amount: decimal.NewFromFloat(1000)})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Note:   "March electric bill",
		Amount: decimal.NewFromFloat(75),
		Source: models.SourceCashPool,
	})
	suite.Require().Len(response.Data, 1)

	suite.Assert().Equal("Utilities", response.Data[0].Data.Category)
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	contributionType := createTestContributionType(suite.T(), v1.ContributionTypeEditable{})
	fundContributionType(suite.T(), contributionType, 1000)

	donation := createTestDonation(suite.T(), v1.DonationEditable{
		Type:            models.DonationInKind,
		ItemName:        "Paint cans",
		DonatedQuantity: 10,
	})
	_ = createTestDonation(suite.T(), v1.DonationEditable{Amount: decimal.NewFromFloat(1000)})

	_ = createTestExpense(suite.T(), v1.ExpenseCreate{
		Category:           "Supplies",
		Amount:             decimal.NewFromFloat(100),
		Source:             models.SourceContribution,
		ContributionTypeID: contributionType.Data.ID,
	})

	_ = createTestExpense(suite.T(), v1.ExpenseCreate{
		Category: "Repairs",
		Note:     "Leaking roof",
		Amount:   decimal.NewFromFloat(200),
		Source:   models.SourceCashPool,
	})

	_ = createTestExpense(suite.T(), v1.ExpenseCreate{
		Category:     "Repairs",
		Source:       models.SourceInKind,
		DonationID:   donation.Data.ID,
		QuantityUsed: 2,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Fuzzy category", "category=Repairs", 2},
		{"Fuzzy note", "note=roof", 1},
		{"Contribution type", fmt.Sprintf("contributionType=%s", contributionType.Data.ID), 1},
		{"Donation", fmt.Sprintf("donation=%s", donation.Data.ID), 1},
		{"Source contribution", "source=CONTRIBUTION", 1},
		{"Source cash pool", "source=CASH_POOL", 1},
		{"Source in-kind", "source=IN_KIND", 1},
		{"All", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

// The amount and the funding references cannot be changed after creation.
func (suite *TestSuiteStandard) TestExpensesUpdate() {
	_ = createTestDonation(suite.T(), v1.DonationEditable{Amount: decimal.NewFromFloat(500)})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category: "Repairs",
		Amount:   decimal.NewFromFloat(100),
		Source:   models.SourceCashPool,
	})
	suite.Require().Len(response.Data, 1)
	expense := response.Data[0].Data

	r := test.Request(suite.T(), http.MethodPatch, expense.Links.Self, map[string]any{
		"category": "Maintenance",
		"amount":   99999,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal("Maintenance", updated.Data.Category)
	suite.Assert().True(updated.Data.Amount.Equal(decimal.NewFromFloat(100)), "the amount must not be changeable")
}

// Deleting an in-kind expense returns the consumed units to the donation.
func (suite *TestSuiteStandard) TestExpensesDeleteReturnsStock() {
	donation := createTestDonation(suite.T(), v1.DonationEditable{
		Type:            models.DonationInKind,
		ItemName:        "Whiteboards",
		DonatedQuantity: 10,
	})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category:     "Classroom",
		Source:       models.SourceInKind,
		DonationID:   donation.Data.ID,
		QuantityUsed: 4,
	})
	suite.Require().Len(response.Data, 1)

	r := test.Request(suite.T(), http.MethodDelete, response.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, donation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var reloaded v1.DonationResponse
	test.DecodeResponse(suite.T(), &r, &reloaded)
	suite.Assert().Equal(uint(10), reloaded.Data.RemainingUsable)
}

func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	_ = createTestDonation(suite.T(), v1.DonationEditable{Amount: decimal.NewFromFloat(100)})

	response := createTestExpense(suite.T(), v1.ExpenseCreate{
		Category: "Repairs",
		Amount:   decimal.NewFromFloat(50),
		Source:   models.SourceCashPool,
	})
	suite.Require().Len(response.Data, 1)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing expense", response.Data[0].Data.ID.String(), http.StatusOK},
		{"No expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "definitely-not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}
