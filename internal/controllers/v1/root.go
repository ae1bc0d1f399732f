package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	SchoolYears       string `json:"schoolYears" example:"https://example.com/api/v1/school-years"`             // URL of SchoolYear collection endpoint
	GradeLevels       string `json:"gradeLevels" example:"https://example.com/api/v1/grade-levels"`             // URL of GradeLevel collection endpoint
	Sections          string `json:"sections" example:"https://example.com/api/v1/sections"`                    // URL of Section collection endpoint
	Guardians         string `json:"guardians" example:"https://example.com/api/v1/guardians"`                  // URL of Guardian collection endpoint
	Students          string `json:"students" example:"https://example.com/api/v1/students"`                    // URL of Student collection endpoint
	ContributionTypes string `json:"contributionTypes" example:"https://example.com/api/v1/contribution-types"` // URL of ContributionType collection endpoint
	Payments          string `json:"payments" example:"https://example.com/api/v1/payments"`                    // URL of Payment collection endpoint
	Donations         string `json:"donations" example:"https://example.com/api/v1/donations"`                  // URL of Donation collection endpoint
	Expenses          string `json:"expenses" example:"https://example.com/api/v1/expenses"`                    // URL of Expense collection endpoint
	ExpenseCategories string `json:"expenseCategories" example:"https://example.com/api/v1/expense-categories"` // URL of ExpenseCategory collection endpoint
	CategoryRules     string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"`         // URL of CategoryRule collection endpoint
	Users             string `json:"users" example:"https://example.com/api/v1/users"`                          // URL of User collection endpoint
	FundingSources    string `json:"fundingSources" example:"https://example.com/api/v1/funding-sources"`       // URL of the funding source catalog endpoint
	Reports           string `json:"reports" example:"https://example.com/api/v1/reports"`                      // URL of the report endpoint
	Export            string `json:"export" example:"https://example.com/api/v1/export"`                        // URL of the export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			SchoolYears:       url + "/v1/school-years",
			GradeLevels:       url + "/v1/grade-levels",
			Sections:          url + "/v1/sections",
			Guardians:         url + "/v1/guardians",
			Students:          url + "/v1/students",
			ContributionTypes: url + "/v1/contribution-types",
			Payments:          url + "/v1/payments",
			Donations:         url + "/v1/donations",
			Expenses:          url + "/v1/expenses",
			ExpenseCategories: url + "/v1/expense-categories",
			CategoryRules:     url + "/v1/category-rules",
			Users:             url + "/v1/users",
			FundingSources:    url + "/v1/funding-sources",
			Reports:           url + "/v1/reports",
			Export:            url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
