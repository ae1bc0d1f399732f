package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterDonationRoutes registers the routes for donations with
// the RouterGroup that is passed.
func RegisterDonationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDonationList)
		r.GET("", GetDonations)
		r.POST("", CreateDonations)
	}

	// Donation with ID
	{
		r.OPTIONS("/:id", OptionsDonationDetail)
		r.GET("/:id", GetDonation)
		r.PATCH("/:id", UpdateDonation)
		r.DELETE("/:id", DeleteDonation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Router			/v1/donations [options]
func OptionsDonationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [options]
func OptionsDonationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Donation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates donations
// @Description	Creates new donations
// @Tags			Donations
// @Produce		json
// @Success		201			{object}	DonationCreateResponse
// @Failure		400			{object}	DonationCreateResponse
// @Failure		500			{object}	DonationCreateResponse
// @Param			donations	body		[]DonationEditable	true	"Donations"
// @Router			/v1/donations [post]
func CreateDonations(c *gin.Context) {
	var editables []DonationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DonationCreateResponse{}

	for _, editable := range editables {
		donation := editable.model()
		err = models.DB.Create(&donation).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDonation(c, donation)
		r.Data = append(r.Data, DonationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List donations
// @Description	Returns a list of donations
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationListResponse
// @Failure		400	{object}	DonationListResponse
// @Failure		500	{object}	DonationListResponse
// @Router			/v1/donations [get]
// @Param			donorName	query	string	false	"Filter by donor name"
// @Param			itemName	query	string	false	"Filter by item name"
// @Param			type		query	string	false	"Filter by donation type (CASH or IN_KIND)"
// @Param			note		query	string	false	"Filter by note"
// @Param			offset	query	uint	false	"The offset of the first Donation returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Donations to return. Defaults to 50."
func GetDonations(c *gin.Context) {
	var filter DonationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DonationListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("datetime(date) DESC").
		Where(&model, queryFields...)

	if filter.DonorName != "" {
		q = q.Where("donor_name LIKE ?", fmt.Sprintf("%%%s%%", filter.DonorName))
	}

	if filter.ItemName != "" {
		q = q.Where("item_name LIKE ?", fmt.Sprintf("%%%s%%", filter.ItemName))
	}

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Donations and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var donations []models.Donation
	err = q.Find(&donations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Donation, 0)
	for _, donation := range donations {
		data = append(data, newDonation(c, donation))
	}

	c.JSON(http.StatusOK, DonationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get donation
// @Description	Returns a specific donation
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationResponse
// @Failure		400	{object}	DonationResponse
// @Failure		404	{object}	DonationResponse
// @Failure		500	{object}	DonationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [get]
func GetDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &s,
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &s,
		})
		return
	}

	data := newDonation(c, donation)
	c.JSON(http.StatusOK, DonationResponse{Data: &data})
}

// @Summary		Update donation
// @Description	Updates a donation. Only values to be updated need to be specified.
// @Tags			Donations
// @Produce		json
// @Success		200			{object}	DonationResponse
// @Failure		400			{object}	DonationResponse
// @Failure		404			{object}	DonationResponse
// @Failure		500			{object}	DonationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			donation	body		DonationEditable	true	"Donation"
// @Router			/v1/donations/{id} [patch]
func UpdateDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &s,
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DonationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &s,
		})
		return
	}

	var data DonationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&donation).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newDonation(c, donation)
	c.JSON(http.StatusOK, DonationResponse{Data: &apiResource})
}

// @Summary		Delete donation
// @Description	Deletes a donation
// @Tags			Donations
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [delete]
func DeleteDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&donation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
