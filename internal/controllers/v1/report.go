package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsReport)
		r.GET("", GetReport)
	}
}

type ReportResponse struct {
	Data  *models.Report `json:"data"`                                                // The report
	Error *string        `json:"error" example:"no database connection is available"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns aggregated figures over the stored data: funding source balances, expense totals by category and by month, in-kind stock levels and enrollment counts per grade level
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		500	{object}	ReportResponse
// @Router			/v1/reports [get]
func GetReport(c *gin.Context) {
	report, err := models.BuildReport(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &report})
}
