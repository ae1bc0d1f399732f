package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/models"
)

type SchoolYearEditable struct {
	Name      string    `json:"name" example:"2025-2026" default:""`                 // Name of the school year
	StartDate time.Time `json:"startDate" example:"2025-06-02T00:00:00Z"`            // First day of the school year
	EndDate   time.Time `json:"endDate" example:"2026-03-27T00:00:00Z"`              // Last day of the school year
	Note      string    `json:"note" example:"Back to in-person classes" default:""` // A longer description for the school year
}

// model returns the database resource for the editable fields
func (editable SchoolYearEditable) model() models.SchoolYear {
	return models.SchoolYear{
		Name:      editable.Name,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
		Note:      editable.Note,
	}
}

type SchoolYearLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/school-years/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                          // The school year itself
	Sections          string `json:"sections" example:"https://example.com/api/v1/sections?schoolYear=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`               // Sections for this school year
	ContributionTypes string `json:"contributionTypes" example:"https://example.com/api/v1/contribution-types?schoolYear=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Contribution types for this school year
}

// SchoolYear is the API v1 representation of a SchoolYear.
type SchoolYear struct {
	models.DefaultModel
	SchoolYearEditable
	Links SchoolYearLinks `json:"links"`
}

func newSchoolYear(c *gin.Context, model models.SchoolYear) SchoolYear {
	url := c.GetString(string(models.DBContextURL))

	return SchoolYear{
		DefaultModel: model.DefaultModel,
		SchoolYearEditable: SchoolYearEditable{
			Name:      model.Name,
			StartDate: model.StartDate,
			EndDate:   model.EndDate,
			Note:      model.Note,
		},
		Links: SchoolYearLinks{
			Self:              fmt.Sprintf("%s/v1/school-years/%s", url, model.ID),
			Sections:          fmt.Sprintf("%s/v1/sections?schoolYear=%s", url, model.ID),
			ContributionTypes: fmt.Sprintf("%s/v1/contribution-types?schoolYear=%s", url, model.ID),
		},
	}
}

type SchoolYearListResponse struct {
	Data       []SchoolYear `json:"data"`                                                          // List of school years
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type SchoolYearCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SchoolYearResponse `json:"data"`                                                          // List of created school years
}

func (s *SchoolYearCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SchoolYearResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SchoolYearResponse struct {
	Data  *SchoolYear `json:"data"`                                                          // Data for the school year
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SchoolYearQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the school year name
	Note   string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first SchoolYear returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of SchoolYears to return. Defaults to 50.
}

func (f SchoolYearQueryFilter) model() (models.SchoolYear, error) {
	return models.SchoolYear{}, nil
}
