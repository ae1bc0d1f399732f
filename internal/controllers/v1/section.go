package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterSectionRoutes registers the routes for sections with
// the RouterGroup that is passed.
func RegisterSectionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSectionList)
		r.GET("", GetSections)
		r.POST("", CreateSections)
	}

	// Section with ID
	{
		r.OPTIONS("/:id", OptionsSectionDetail)
		r.GET("/:id", GetSection)
		r.PATCH("/:id", UpdateSection)
		r.DELETE("/:id", DeleteSection)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sections
// @Success		204
// @Router			/v1/sections [options]
func OptionsSectionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sections
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sections/{id} [options]
func OptionsSectionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Section{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates sections
// @Description	Creates new sections
// @Tags			Sections
// @Produce		json
// @Success		201			{object}	SectionCreateResponse
// @Failure		400			{object}	SectionCreateResponse
// @Failure		500			{object}	SectionCreateResponse
// @Param			sections	body		[]SectionEditable	true	"Sections"
// @Router			/v1/sections [post]
func CreateSections(c *gin.Context) {
	var editables []SectionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SectionCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SectionCreateResponse{}

	for _, editable := range editables {
		section := editable.model()
		err = models.DB.Create(&section).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSection(c, section)
		r.Data = append(r.Data, SectionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List sections
// @Description	Returns a list of sections
// @Tags			Sections
// @Produce		json
// @Success		200	{object}	SectionListResponse
// @Failure		400	{object}	SectionListResponse
// @Failure		500	{object}	SectionListResponse
// @Router			/v1/sections [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			gradeLevel	query	string	false	"Filter by grade level ID"
// @Param			schoolYear	query	string	false	"Filter by school year ID"
// @Param			adviser		query	string	false	"Filter by adviser"
// @Param			offset	query	uint	false	"The offset of the first Section returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Sections to return. Defaults to 50."
func GetSections(c *gin.Context) {
	var filter SectionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SectionListResponse{
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
		c.JSON(status(err), SectionListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&model, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, "", "")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Sections and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var sections []models.Section
	err = q.Find(&sections).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SectionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SectionListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Section, 0)
	for _, section := range sections {
		data = append(data, newSection(c, section))
	}

	c.JSON(http.StatusOK, SectionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get section
// @Description	Returns a specific section
// @Tags			Sections
// @Produce		json
// @Success		200	{object}	SectionResponse
// @Failure		400	{object}	SectionResponse
// @Failure		404	{object}	SectionResponse
// @Failure		500	{object}	SectionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sections/{id} [get]
func GetSection(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SectionResponse{
			Error: &s,
		})
		return
	}

	var section models.Section
	err = models.DB.First(&section, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SectionResponse{
			Error: &s,
		})
		return
	}

	data := newSection(c, section)
	c.JSON(http.StatusOK, SectionResponse{Data: &data})
}

// @Summary		Update section
// @Description	Updates a section. Only values to be updated need to be specified.
// @Tags			Sections
// @Produce		json
// @Success		200			{object}	SectionResponse
// @Failure		400			{object}	SectionResponse
// @Failure		404			{object}	SectionResponse
// @Failure		500			{object}	SectionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			section	body		SectionEditable	true	"Section"
// @Router			/v1/sections/{id} [patch]
func UpdateSection(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SectionResponse{
			Error: &s,
		})
		return
	}

	var section models.Section
	err = models.DB.First(&section, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SectionResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SectionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SectionResponse{
			Error: &s,
		})
		return
	}

	var data SectionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SectionResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&section).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SectionResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSection(c, section)
	c.JSON(http.StatusOK, SectionResponse{Data: &apiResource})
}

// @Summary		Delete section
// @Description	Deletes a section
// @Tags			Sections
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sections/{id} [delete]
func DeleteSection(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var section models.Section
	err = models.DB.First(&section, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&section).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
