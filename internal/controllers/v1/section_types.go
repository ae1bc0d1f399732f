package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
)

type SectionEditable struct {
	Name         string    `json:"name" example:"Sampaguita" default:""`                     // Name of the section
	GradeLevelID uuid.UUID `json:"gradeLevelId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the grade level this section belongs to
	SchoolYearID uuid.UUID `json:"schoolYearId" example:"d23y1bc9-bdef-4878-b4c1-108e0178bd8a"` // ID of the school year this section belongs to
	Adviser      string    `json:"adviser" example:"Mr. Reyes" default:""`                   // Name of the adviser teacher
}

// model returns the database resource for the editable fields
func (editable SectionEditable) model() models.Section {
	return models.Section{
		Name:         editable.Name,
		GradeLevelID: editable.GradeLevelID,
		SchoolYearID: editable.SchoolYearID,
		Adviser:      editable.Adviser,
	}
}

type SectionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/sections/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`              // The section itself
	Students string `json:"students" example:"https://example.com/api/v1/students?section=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Students in this section
}

// Section is the API v1 representation of a Section.
type Section struct {
	models.DefaultModel
	SectionEditable
	Links SectionLinks `json:"links"`
}

func newSection(c *gin.Context, model models.Section) Section {
	url := c.GetString(string(models.DBContextURL))

	return Section{
		DefaultModel: model.DefaultModel,
		SectionEditable: SectionEditable{
			Name:         model.Name,
			GradeLevelID: model.GradeLevelID,
			SchoolYearID: model.SchoolYearID,
			Adviser:      model.Adviser,
		},
		Links: SectionLinks{
			Self:     fmt.Sprintf("%s/v1/sections/%s", url, model.ID),
			Students: fmt.Sprintf("%s/v1/students?section=%s", url, model.ID),
		},
	}
}

type SectionListResponse struct {
	Data       []Section   `json:"data"`                                                          // List of sections
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SectionCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SectionResponse `json:"data"`                                                          // List of created sections
}

func (s *SectionCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SectionResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SectionResponse struct {
	Data  *Section `json:"data"`                                                          // Data for the section
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SectionQueryFilter struct {
	Name         string `form:"name" filterField:"false"`   // Fuzzy filter for the section name
	GradeLevelID string `form:"gradeLevel"`                 // By grade level ID
	SchoolYearID string `form:"schoolYear"`                 // By school year ID
	Adviser      string `form:"adviser"`                    // By adviser
	Offset       uint   `form:"offset" filterField:"false"` // The offset of the first Section returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`  // Maximum number of Sections to return. Defaults to 50.
}

func (f SectionQueryFilter) model() (models.Section, error) {
	gradeLevelID, err := httputil.UUIDFromString(f.GradeLevelID)
	if err != nil {
		return models.Section{}, err
	}

	schoolYearID, err := httputil.UUIDFromString(f.SchoolYearID)
	if err != nil {
		return models.Section{}, err
	}

	return models.Section{
		GradeLevelID: gradeLevelID,
		SchoolYearID: schoolYearID,
		Adviser:      f.Adviser,
	}, nil
}
