package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterGuardianRoutes registers the routes for guardians with
// the RouterGroup that is passed.
func RegisterGuardianRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGuardianList)
		r.GET("", GetGuardians)
		r.POST("", CreateGuardians)
	}

	// Guardian with ID
	{
		r.OPTIONS("/:id", OptionsGuardianDetail)
		r.GET("/:id", GetGuardian)
		r.PATCH("/:id", UpdateGuardian)
		r.DELETE("/:id", DeleteGuardian)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Guardians
// @Success		204
// @Router			/v1/guardians [options]
func OptionsGuardianList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Guardians
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/guardians/{id} [options]
func OptionsGuardianDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Guardian{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates guardians
// @Description	Creates new guardians
// @Tags			Guardians
// @Produce		json
// @Success		201			{object}	GuardianCreateResponse
// @Failure		400			{object}	GuardianCreateResponse
// @Failure		500			{object}	GuardianCreateResponse
// @Param			guardians	body		[]GuardianEditable	true	"Guardians"
// @Router			/v1/guardians [post]
func CreateGuardians(c *gin.Context) {
	var editables []GuardianEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GuardianCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := GuardianCreateResponse{}

	for _, editable := range editables {
		guardian := editable.model()
		err = models.DB.Create(&guardian).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newGuardian(c, guardian)
		r.Data = append(r.Data, GuardianResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List guardians
// @Description	Returns a list of guardians
// @Tags			Guardians
// @Produce		json
// @Success		200	{object}	GuardianListResponse
// @Failure		400	{object}	GuardianListResponse
// @Failure		500	{object}	GuardianListResponse
// @Router			/v1/guardians [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			occupation	query	string	false	"Filter by occupation"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first Guardian returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Guardians to return. Defaults to 50."
func GetGuardians(c *gin.Context) {
	var filter GuardianQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GuardianListResponse{
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
		c.JSON(status(err), GuardianListResponse{
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

	// Default to 50 Guardians and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var guardians []models.Guardian
	err = q.Find(&guardians).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuardianListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GuardianListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Guardian, 0)
	for _, guardian := range guardians {
		data = append(data, newGuardian(c, guardian))
	}

	c.JSON(http.StatusOK, GuardianListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get guardian
// @Description	Returns a specific guardian
// @Tags			Guardians
// @Produce		json
// @Success		200	{object}	GuardianResponse
// @Failure		400	{object}	GuardianResponse
// @Failure		404	{object}	GuardianResponse
// @Failure		500	{object}	GuardianResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/guardians/{id} [get]
func GetGuardian(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuardianResponse{
			Error: &s,
		})
		return
	}

	var guardian models.Guardian
	err = models.DB.First(&guardian, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuardianResponse{
			Error: &s,
		})
		return
	}

	data := newGuardian(c, guardian)
	c.JSON(http.StatusOK, GuardianResponse{Data: &data})
}

// @Summary		Update guardian
// @Description	Updates a guardian. Only values to be updated need to be specified.
// @Tags			Guardians
// @Produce		json
// @Success		200			{object}	GuardianResponse
// @Failure		400			{object}	GuardianResponse
// @Failure		404			{object}	GuardianResponse
// @Failure		500			{object}	GuardianResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			guardian	body		GuardianEditable	true	"Guardian"
// @Router			/v1/guardians/{id} [patch]
func UpdateGuardian(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuardianResponse{
			Error: &s,
		})
		return
	}

	var guardian models.Guardian
	err = models.DB.First(&guardian, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuardianResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GuardianEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuardianResponse{
			Error: &s,
		})
		return
	}

	var data GuardianEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuardianResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&guardian).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuardianResponse{
			Error: &s,
		})
		return
	}

	apiResource := newGuardian(c, guardian)
	c.JSON(http.StatusOK, GuardianResponse{Data: &apiResource})
}

// @Summary		Delete guardian
// @Description	Deletes a guardian
// @Tags			Guardians
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/guardians/{id} [delete]
func DeleteGuardian(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var guardian models.Guardian
	err = models.DB.First(&guardian, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&guardian).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
