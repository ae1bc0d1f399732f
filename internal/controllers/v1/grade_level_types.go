package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/models"
)

type GradeLevelEditable struct {
	Name string `json:"name" example:"Grade 4" default:""`             // Name of the grade level
	Note string `json:"note" example:"Third floor, main building" default:""` // A longer description for the grade level
}

// model returns the database resource for the editable fields
func (editable GradeLevelEditable) model() models.GradeLevel {
	return models.GradeLevel{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type GradeLevelLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/grade-levels/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`              // The grade level itself
	Sections string `json:"sections" example:"https://example.com/api/v1/sections?gradeLevel=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Sections of this grade level
}

// GradeLevel is the API v1 representation of a GradeLevel.
type GradeLevel struct {
	models.DefaultModel
	GradeLevelEditable
	Links GradeLevelLinks `json:"links"`
}

func newGradeLevel(c *gin.Context, model models.GradeLevel) GradeLevel {
	url := c.GetString(string(models.DBContextURL))

	return GradeLevel{
		DefaultModel: model.DefaultModel,
		GradeLevelEditable: GradeLevelEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: GradeLevelLinks{
			Self:     fmt.Sprintf("%s/v1/grade-levels/%s", url, model.ID),
			Sections: fmt.Sprintf("%s/v1/sections?gradeLevel=%s", url, model.ID),
		},
	}
}

type GradeLevelListResponse struct {
	Data       []GradeLevel `json:"data"`                                                          // List of grade levels
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type GradeLevelCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GradeLevelResponse `json:"data"`                                                          // List of created grade levels
}

func (g *GradeLevelCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	g.Data = append(g.Data, GradeLevelResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GradeLevelResponse struct {
	Data  *GradeLevel `json:"data"`                                                          // Data for the grade level
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GradeLevelQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the grade level name
	Note   string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first GradeLevel returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of GradeLevels to return. Defaults to 50.
}

func (f GradeLevelQueryFilter) model() (models.GradeLevel, error) {
	return models.GradeLevel{}, nil
}
