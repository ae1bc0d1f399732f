package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterContributionTypeRoutes registers the routes for contribution types with
// the RouterGroup that is passed.
func RegisterContributionTypeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsContributionTypeList)
		r.GET("", GetContributionTypes)
		r.POST("", CreateContributionTypes)
	}

	// ContributionType with ID
	{
		r.OPTIONS("/:id", OptionsContributionTypeDetail)
		r.GET("/:id", GetContributionType)
		r.PATCH("/:id", UpdateContributionType)
		r.DELETE("/:id", DeleteContributionType)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ContributionTypes
// @Success		204
// @Router			/v1/contribution-types [options]
func OptionsContributionTypeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ContributionTypes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contribution-types/{id} [options]
func OptionsContributionTypeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.ContributionType{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates contribution types
// @Description	Creates new contribution types
// @Tags			ContributionTypes
// @Produce		json
// @Success		201			{object}	ContributionTypeCreateResponse
// @Failure		400			{object}	ContributionTypeCreateResponse
// @Failure		500			{object}	ContributionTypeCreateResponse
// @Param			contributionTypes	body		[]ContributionTypeEditable	true	"Contribution types"
// @Router			/v1/contribution-types [post]
func CreateContributionTypes(c *gin.Context) {
	var editables []ContributionTypeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContributionTypeCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ContributionTypeCreateResponse{}

	for _, editable := range editables {
		contributionType := editable.model()
		err = models.DB.Create(&contributionType).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newContributionType(c, contributionType)
		r.Data = append(r.Data, ContributionTypeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List contribution types
// @Description	Returns a list of contribution types
// @Tags			ContributionTypes
// @Produce		json
// @Success		200	{object}	ContributionTypeListResponse
// @Failure		400	{object}	ContributionTypeListResponse
// @Failure		500	{object}	ContributionTypeListResponse
// @Router			/v1/contribution-types [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			schoolYear	query	string	false	"Filter by school year ID"
// @Param			archived	query	bool	false	"Is the contribution type archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first ContributionType returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of ContributionTypes to return. Defaults to 50."
func GetContributionTypes(c *gin.Context) {
	var filter ContributionTypeQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ContributionTypeListResponse{
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
		c.JSON(status(err), ContributionTypeListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&model, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 ContributionTypes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var contributionTypes []models.ContributionType
	err = q.Find(&contributionTypes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionTypeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContributionTypeListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]ContributionType, 0)
	for _, contributionType := range contributionTypes {
		data = append(data, newContributionType(c, contributionType))
	}

	c.JSON(http.StatusOK, ContributionTypeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get contribution type
// @Description	Returns a specific contribution type
// @Tags			ContributionTypes
// @Produce		json
// @Success		200	{object}	ContributionTypeResponse
// @Failure		400	{object}	ContributionTypeResponse
// @Failure		404	{object}	ContributionTypeResponse
// @Failure		500	{object}	ContributionTypeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contribution-types/{id} [get]
func GetContributionType(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionTypeResponse{
			Error: &s,
		})
		return
	}

	var contributionType models.ContributionType
	err = models.DB.First(&contributionType, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionTypeResponse{
			Error: &s,
		})
		return
	}

	data := newContributionType(c, contributionType)
	c.JSON(http.StatusOK, ContributionTypeResponse{Data: &data})
}

// @Summary		Update contribution type
// @Description	Updates a contribution type. Only values to be updated need to be specified.
// @Tags			ContributionTypes
// @Produce		json
// @Success		200			{object}	ContributionTypeResponse
// @Failure		400			{object}	ContributionTypeResponse
// @Failure		404			{object}	ContributionTypeResponse
// @Failure		500			{object}	ContributionTypeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contributionType	body		ContributionTypeEditable	true	"Contribution type"
// @Router			/v1/contribution-types/{id} [patch]
func UpdateContributionType(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionTypeResponse{
			Error: &s,
		})
		return
	}

	var contributionType models.ContributionType
	err = models.DB.First(&contributionType, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionTypeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ContributionTypeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionTypeResponse{
			Error: &s,
		})
		return
	}

	var data ContributionTypeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionTypeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&contributionType).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionTypeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newContributionType(c, contributionType)
	c.JSON(http.StatusOK, ContributionTypeResponse{Data: &apiResource})
}

// @Summary		Delete contribution type
// @Description	Deletes a contribution type
// @Tags			ContributionTypes
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contribution-types/{id} [delete]
func DeleteContributionType(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var contributionType models.ContributionType
	err = models.DB.First(&contributionType, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&contributionType).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
