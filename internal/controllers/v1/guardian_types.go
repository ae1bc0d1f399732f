package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/models"
)

type GuardianEditable struct {
	Name          string `json:"name" example:"Maria Santos" default:""`              // Full name of the guardian
	ContactNumber string `json:"contactNumber" example:"+63 917 555 0134" default:""` // Phone number of the guardian
	Address       string `json:"address" example:"12 Mabini St, Quezon City" default:""` // Home address
	Occupation    string `json:"occupation" example:"Nurse" default:""`               // Occupation of the guardian
	Note          string `json:"note" example:"Prefers SMS over calls" default:""`    // A longer description for the guardian
}

// model returns the database resource for the editable fields
func (editable GuardianEditable) model() models.Guardian {
	return models.Guardian{
		Name:          editable.Name,
		ContactNumber: editable.ContactNumber,
		Address:       editable.Address,
		Occupation:    editable.Occupation,
		Note:          editable.Note,
	}
}

type GuardianLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/guardians/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`               // The guardian itself
	Students string `json:"students" example:"https://example.com/api/v1/students?guardian=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Students of this guardian
}

// Guardian is the API v1 representation of a Guardian.
type Guardian struct {
	models.DefaultModel
	GuardianEditable
	Links GuardianLinks `json:"links"`
}

func newGuardian(c *gin.Context, model models.Guardian) Guardian {
	url := c.GetString(string(models.DBContextURL))

	return Guardian{
		DefaultModel: model.DefaultModel,
		GuardianEditable: GuardianEditable{
			Name:          model.Name,
			ContactNumber: model.ContactNumber,
			Address:       model.Address,
			Occupation:    model.Occupation,
			Note:          model.Note,
		},
		Links: GuardianLinks{
			Self:     fmt.Sprintf("%s/v1/guardians/%s", url, model.ID),
			Students: fmt.Sprintf("%s/v1/students?guardian=%s", url, model.ID),
		},
	}
}

type GuardianListResponse struct {
	Data       []Guardian  `json:"data"`                                                          // List of guardians
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GuardianCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GuardianResponse `json:"data"`                                                          // List of created guardians
}

func (g *GuardianCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	g.Data = append(g.Data, GuardianResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GuardianResponse struct {
	Data  *Guardian `json:"data"`                                                          // Data for the guardian
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GuardianQueryFilter struct {
	Name       string `form:"name" filterField:"false"`   // Fuzzy filter for the guardian name
	Note       string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Occupation string `form:"occupation"`                 // By occupation
	Search     string `form:"search" filterField:"false"` // By string in name or note
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first Guardian returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of Guardians to return. Defaults to 50.
}

func (f GuardianQueryFilter) model() (models.Guardian, error) {
	return models.Guardian{
		Occupation: f.Occupation,
	}, nil
}
