package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ContributionTypeEditable struct {
	Name            string          `json:"name" example:"PTA Fund" default:""`                                                                       // Name of the contribution type
	SchoolYearID    uuid.UUID       `json:"schoolYearId" example:"d23y1bc9-bdef-4878-b4c1-108e0178bd8a"`                                              // ID of the school year this contribution type belongs to
	SuggestedAmount decimal.Decimal `json:"suggestedAmount" example:"250" default:"0" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount asked per student, informational only
	Note            string          `json:"note" example:"Collected during enrollment" default:""`                                                    // A longer description for the contribution type
	Archived        bool            `json:"archived" example:"true" default:"false"`                                                                  // Is the contribution type archived?
}

// model returns the database resource for the editable fields
func (editable ContributionTypeEditable) model() models.ContributionType {
	return models.ContributionType{
		Name:            editable.Name,
		SchoolYearID:    editable.SchoolYearID,
		SuggestedAmount: editable.SuggestedAmount,
		Note:            editable.Note,
		Archived:        editable.Archived,
	}
}

type ContributionTypeLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/contribution-types/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                      // The contribution type itself
	Payments string `json:"payments" example:"https://example.com/api/v1/payments?contributionType=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`          // Payments for this contribution type
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?contributionType=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`          // Expenses funded from this contribution type
}

// ContributionType is the API v1 representation of a ContributionType.
type ContributionType struct {
	models.DefaultModel
	ContributionTypeEditable
	Links ContributionTypeLinks `json:"links"`
}

func newContributionType(c *gin.Context, model models.ContributionType) ContributionType {
	url := c.GetString(string(models.DBContextURL))

	return ContributionType{
		DefaultModel: model.DefaultModel,
		ContributionTypeEditable: ContributionTypeEditable{
			Name:            model.Name,
			SchoolYearID:    model.SchoolYearID,
			SuggestedAmount: model.SuggestedAmount,
			Note:            model.Note,
			Archived:        model.Archived,
		},
		Links: ContributionTypeLinks{
			Self:     fmt.Sprintf("%s/v1/contribution-types/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/payments?contributionType=%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?contributionType=%s", url, model.ID),
		},
	}
}

type ContributionTypeListResponse struct {
	Data       []ContributionType `json:"data"`                                                          // List of contribution types
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination        `json:"pagination"`                                                    // Pagination information
}

type ContributionTypeCreateResponse struct {
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ContributionTypeResponse `json:"data"`                                                          // List of created contribution types
}

func (t *ContributionTypeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ContributionTypeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ContributionTypeResponse struct {
	Data  *ContributionType `json:"data"`                                                          // Data for the contribution type
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ContributionTypeQueryFilter struct {
	Name         string `form:"name" filterField:"false"`   // Fuzzy filter for the contribution type name
	Note         string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	SchoolYearID string `form:"schoolYear"`                 // By school year ID
	Archived     bool   `form:"archived"`                   // Is the contribution type archived?
	Search       string `form:"search" filterField:"false"` // By string in name or note
	Offset       uint   `form:"offset" filterField:"false"` // The offset of the first ContributionType returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`  // Maximum number of ContributionTypes to return. Defaults to 50.
}

func (f ContributionTypeQueryFilter) model() (models.ContributionType, error) {
	schoolYearID, err := httputil.UUIDFromString(f.SchoolYearID)
	if err != nil {
		return models.ContributionType{}, err
	}

	return models.ContributionType{
		SchoolYearID: schoolYearID,
		Archived:     f.Archived,
	}, nil
}
