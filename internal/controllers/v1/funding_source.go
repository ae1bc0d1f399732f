package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
)

// RegisterFundingSourceRoutes registers the routes for the funding source
// catalog with the RouterGroup that is passed.
func RegisterFundingSourceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsFundingSources)
		r.GET("", GetFundingSources)
	}
}

type FundingSourceListResponse struct {
	Data  []models.FundingSource `json:"data"`                                              // List of funding sources
	Error *string                `json:"error" example:"no database connection is available"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FundingSources
// @Success		204
// @Router			/v1/funding-sources [options]
func OptionsFundingSources(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List funding sources
// @Description	Returns the funding source catalog: every active contribution type with its balance, followed by the cash donation pool. The cash pool has the nil UUID as its ID.
// @Tags			FundingSources
// @Produce		json
// @Success		200	{object}	FundingSourceListResponse
// @Failure		500	{object}	FundingSourceListResponse
// @Router			/v1/funding-sources [get]
func GetFundingSources(c *gin.Context) {
	sources, err := models.FundingSources(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundingSourceListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, FundingSourceListResponse{Data: sources})
}
