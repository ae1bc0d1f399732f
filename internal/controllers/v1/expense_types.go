package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ExpenseCreate is the request body for creating expenses. The source
// decides how the expense is funded and which references must be set.
type ExpenseCreate struct {
	Category string               `json:"category" example:"Classroom Supplies" default:""`                                                  // Category of the expense. When empty, the category rules are applied to the note.
	Amount   decimal.Decimal      `json:"amount" example:"75.50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount spent. Must be 0 for in-kind expenses.
	Date     time.Time            `json:"date" example:"2025-08-15T00:00:00Z"`                                                               // Date of the expense. Defaults to the creation time.
	Note     string               `json:"note" example:"Paint for the classroom walls" default:""`                                           // A longer description for the expense
	Source   models.ExpenseSource `json:"source" example:"CONTRIBUTION"`                                                                     // How the expense is funded: CONTRIBUTION, CASH_POOL, ALL or IN_KIND

	ContributionTypeID uuid.UUID `json:"contributionTypeId" example:"d23y1bc9-bdef-4878-b4c1-108e0178bd8a"` // The contribution type paying for the expense. Only set for source CONTRIBUTION.

	DonationID    uuid.UUID       `json:"donationId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The in-kind donation being consumed. Only set for source IN_KIND.
	QuantityUsed  uint            `json:"quantityUsed" example:"3" default:"0"`                      // Units of the donation consumed. Only set for source IN_KIND.
	EstimatedCost decimal.Decimal `json:"estimatedCost" example:"45" default:"0"`                    // Informational estimate of the consumed stock's value
}

// draft returns the funding draft for the request body
func (create ExpenseCreate) draft() models.ExpenseDraft {
	return models.ExpenseDraft{
		Category:           create.Category,
		Amount:             create.Amount,
		Date:               create.Date,
		Note:               create.Note,
		Source:             create.Source,
		ContributionTypeID: create.ContributionTypeID,
		DonationID:         create.DonationID,
		QuantityUsed:       create.QuantityUsed,
		EstimatedCost:      create.EstimatedCost,
	}
}

// ExpenseEditable are the fields that can be changed after an expense
// has been created. The amount and the funding references are fixed since
// they were validated against the balances at creation time.
type ExpenseEditable struct {
	Category      string          `json:"category" example:"Classroom Supplies" default:""`        // Category of the expense
	Date          time.Time       `json:"date" example:"2025-08-15T00:00:00Z"`                     // Date of the expense
	Note          string          `json:"note" example:"Paint for the classroom walls" default:""` // A longer description for the expense
	EstimatedCost decimal.Decimal `json:"estimatedCost" example:"45" default:"0"`                  // Informational estimate of the consumed stock's value
}

// model returns the database resource for the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Category:      editable.Category,
		Date:          editable.Date,
		Note:          editable.Note,
		EstimatedCost: editable.EstimatedCost,
	}
}

type ExpenseLinks struct {
	Self             string  `json:"self" example:"https://example.com/api/v1/expenses/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                             // The expense itself
	ContributionType *string `json:"contributionType" example:"https://example.com/api/v1/contribution-types/d23y1bc9-bdef-4878-b4c1-108e0178bd8a"`      // The contribution type paying for the expense, if any
	Donation         *string `json:"donation" example:"https://example.com/api/v1/donations/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                       // The donation the expense consumes, if any
}

// Expense is the API v1 representation of an Expense.
type Expense struct {
	models.DefaultModel
	Category           string               `json:"category" example:"Classroom Supplies"`                             // Category of the expense
	Amount             decimal.Decimal      `json:"amount" example:"75.50"`                                            // Amount spent. 0 for in-kind expenses.
	Date               time.Time            `json:"date" example:"2025-08-15T00:00:00Z"`                               // Date of the expense
	Note               string               `json:"note" example:"Paint for the classroom walls"`                      // A longer description for the expense
	Source             models.ExpenseSource `json:"source" example:"CONTRIBUTION"`                                     // How the expense is funded
	ContributionTypeID *uuid.UUID           `json:"contributionTypeId" example:"d23y1bc9-bdef-4878-b4c1-108e0178bd8a"` // The contribution type paying for the expense, if any
	DonationID         *uuid.UUID           `json:"donationId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`         // The in-kind donation being consumed, if any
	QuantityUsed       uint                 `json:"quantityUsed" example:"3"`                                          // Units of the donation consumed
	EstimatedCost      decimal.Decimal      `json:"estimatedCost" example:"45"`                                        // Informational estimate of the consumed stock's value
	Links              ExpenseLinks         `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	source := models.SourceCashPool
	if model.DonationID != nil {
		source = models.SourceInKind
	} else if model.ContributionTypeID != nil {
		source = models.SourceContribution
	}

	links := ExpenseLinks{
		Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
	}

	if model.ContributionTypeID != nil {
		l := fmt.Sprintf("%s/v1/contribution-types/%s", url, model.ContributionTypeID)
		links.ContributionType = &l
	}

	if model.DonationID != nil {
		l := fmt.Sprintf("%s/v1/donations/%s", url, model.DonationID)
		links.Donation = &l
	}

	return Expense{
		DefaultModel:       model.DefaultModel,
		Category:           model.Category,
		Amount:             model.Amount,
		Date:               model.Date,
		Note:               model.Note,
		Source:             source,
		ContributionTypeID: model.ContributionTypeID,
		DonationID:         model.DonationID,
		QuantityUsed:       model.QuantityUsed,
		EstimatedCost:      model.EstimatedCost,
		Links:              links,
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"there are not enough funds available in total"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created expenses
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category           string `form:"category" filterField:"false"` // Fuzzy filter for the category
	Note               string `form:"note" filterField:"false"`     // Fuzzy filter for the note
	ContributionTypeID string `form:"contributionType"`             // By contribution type ID
	DonationID         string `form:"donation"`                     // By donation ID
	Source             string `form:"source" filterField:"false"`   // By funding source: CONTRIBUTION, CASH_POOL or IN_KIND
	Offset             uint   `form:"offset" filterField:"false"`   // The offset of the first Expense returned. Defaults to 0.
	Limit              int    `form:"limit" filterField:"false"`    // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	var contributionTypeID, donationID *uuid.UUID

	ctID, err := httputil.UUIDFromString(f.ContributionTypeID)
	if err != nil {
		return models.Expense{}, err
	}
	if ctID != uuid.Nil {
		contributionTypeID = &ctID
	}

	dID, err := httputil.UUIDFromString(f.DonationID)
	if err != nil {
		return models.Expense{}, err
	}
	if dID != uuid.Nil {
		donationID = &dID
	}

	return models.Expense{
		ContributionTypeID: contributionTypeID,
		DonationID:         donationID,
	}, nil
}
