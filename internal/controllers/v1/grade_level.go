package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterGradeLevelRoutes registers the routes for grade levels with
// the RouterGroup that is passed.
func RegisterGradeLevelRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGradeLevelList)
		r.GET("", GetGradeLevels)
		r.POST("", CreateGradeLevels)
	}

	// GradeLevel with ID
	{
		r.OPTIONS("/:id", OptionsGradeLevelDetail)
		r.GET("/:id", GetGradeLevel)
		r.PATCH("/:id", UpdateGradeLevel)
		r.DELETE("/:id", DeleteGradeLevel)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			GradeLevels
// @Success		204
// @Router			/v1/grade-levels [options]
func OptionsGradeLevelList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			GradeLevels
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/grade-levels/{id} [options]
func OptionsGradeLevelDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.GradeLevel{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates grade levels
// @Description	Creates new grade levels
// @Tags			GradeLevels
// @Produce		json
// @Success		201			{object}	GradeLevelCreateResponse
// @Failure		400			{object}	GradeLevelCreateResponse
// @Failure		500			{object}	GradeLevelCreateResponse
// @Param			gradeLevels	body		[]GradeLevelEditable	true	"Grade levels"
// @Router			/v1/grade-levels [post]
func CreateGradeLevels(c *gin.Context) {
	var editables []GradeLevelEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GradeLevelCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := GradeLevelCreateResponse{}

	for _, editable := range editables {
		gradeLevel := editable.model()
		err = models.DB.Create(&gradeLevel).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newGradeLevel(c, gradeLevel)
		r.Data = append(r.Data, GradeLevelResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List grade levels
// @Description	Returns a list of grade levels
// @Tags			GradeLevels
// @Produce		json
// @Success		200	{object}	GradeLevelListResponse
// @Failure		400	{object}	GradeLevelListResponse
// @Failure		500	{object}	GradeLevelListResponse
// @Router			/v1/grade-levels [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first GradeLevel returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of GradeLevels to return. Defaults to 50."
func GetGradeLevels(c *gin.Context) {
	var filter GradeLevelQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GradeLevelListResponse{
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
		c.JSON(status(err), GradeLevelListResponse{
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

	// Default to 50 GradeLevels and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var gradeLevels []models.GradeLevel
	err = q.Find(&gradeLevels).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GradeLevelListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GradeLevelListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]GradeLevel, 0)
	for _, gradeLevel := range gradeLevels {
		data = append(data, newGradeLevel(c, gradeLevel))
	}

	c.JSON(http.StatusOK, GradeLevelListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get grade level
// @Description	Returns a specific grade level
// @Tags			GradeLevels
// @Produce		json
// @Success		200	{object}	GradeLevelResponse
// @Failure		400	{object}	GradeLevelResponse
// @Failure		404	{object}	GradeLevelResponse
// @Failure		500	{object}	GradeLevelResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/grade-levels/{id} [get]
func GetGradeLevel(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GradeLevelResponse{
			Error: &s,
		})
		return
	}

	var gradeLevel models.GradeLevel
	err = models.DB.First(&gradeLevel, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GradeLevelResponse{
			Error: &s,
		})
		return
	}

	data := newGradeLevel(c, gradeLevel)
	c.JSON(http.StatusOK, GradeLevelResponse{Data: &data})
}

// @Summary		Update grade level
// @Description	Updates a grade level. Only values to be updated need to be specified.
// @Tags			GradeLevels
// @Produce		json
// @Success		200			{object}	GradeLevelResponse
// @Failure		400			{object}	GradeLevelResponse
// @Failure		404			{object}	GradeLevelResponse
// @Failure		500			{object}	GradeLevelResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			gradeLevel	body		GradeLevelEditable	true	"Grade level"
// @Router			/v1/grade-levels/{id} [patch]
func UpdateGradeLevel(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GradeLevelResponse{
			Error: &s,
		})
		return
	}

	var gradeLevel models.GradeLevel
	err = models.DB.First(&gradeLevel, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GradeLevelResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GradeLevelEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GradeLevelResponse{
			Error: &s,
		})
		return
	}

	var data GradeLevelEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GradeLevelResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&gradeLevel).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GradeLevelResponse{
			Error: &s,
		})
		return
	}

	apiResource := newGradeLevel(c, gradeLevel)
	c.JSON(http.StatusOK, GradeLevelResponse{Data: &apiResource})
}

// @Summary		Delete grade level
// @Description	Deletes a grade level
// @Tags			GradeLevels
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/grade-levels/{id} [delete]
func DeleteGradeLevel(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var gradeLevel models.GradeLevel
	err = models.DB.First(&gradeLevel, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&gradeLevel).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
