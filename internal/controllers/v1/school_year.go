package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterSchoolYearRoutes registers the routes for school years with
// the RouterGroup that is passed.
func RegisterSchoolYearRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSchoolYearList)
		r.GET("", GetSchoolYears)
		r.POST("", CreateSchoolYears)
	}

	// SchoolYear with ID
	{
		r.OPTIONS("/:id", OptionsSchoolYearDetail)
		r.GET("/:id", GetSchoolYear)
		r.PATCH("/:id", UpdateSchoolYear)
		r.DELETE("/:id", DeleteSchoolYear)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SchoolYears
// @Success		204
// @Router			/v1/school-years [options]
func OptionsSchoolYearList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SchoolYears
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/school-years/{id} [options]
func OptionsSchoolYearDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.SchoolYear{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates school years
// @Description	Creates new school years
// @Tags			SchoolYears
// @Produce		json
// @Success		201			{object}	SchoolYearCreateResponse
// @Failure		400			{object}	SchoolYearCreateResponse
// @Failure		500			{object}	SchoolYearCreateResponse
// @Param			schoolYears	body		[]SchoolYearEditable	true	"School years"
// @Router			/v1/school-years [post]
func CreateSchoolYears(c *gin.Context) {
	var editables []SchoolYearEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchoolYearCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SchoolYearCreateResponse{}

	for _, editable := range editables {
		schoolYear := editable.model()
		err = models.DB.Create(&schoolYear).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSchoolYear(c, schoolYear)
		r.Data = append(r.Data, SchoolYearResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List school years
// @Description	Returns a list of school years
// @Tags			SchoolYears
// @Produce		json
// @Success		200	{object}	SchoolYearListResponse
// @Failure		400	{object}	SchoolYearListResponse
// @Failure		500	{object}	SchoolYearListResponse
// @Router			/v1/school-years [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first SchoolYear returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of SchoolYears to return. Defaults to 50."
func GetSchoolYears(c *gin.Context) {
	var filter SchoolYearQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SchoolYearListResponse{
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
		c.JSON(status(err), SchoolYearListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("start_date DESC").
		Where(&model, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 SchoolYears and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var schoolYears []models.SchoolYear
	err = q.Find(&schoolYears).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolYearListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchoolYearListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]SchoolYear, 0)
	for _, schoolYear := range schoolYears {
		data = append(data, newSchoolYear(c, schoolYear))
	}

	c.JSON(http.StatusOK, SchoolYearListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get school year
// @Description	Returns a specific school year
// @Tags			SchoolYears
// @Produce		json
// @Success		200	{object}	SchoolYearResponse
// @Failure		400	{object}	SchoolYearResponse
// @Failure		404	{object}	SchoolYearResponse
// @Failure		500	{object}	SchoolYearResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/school-years/{id} [get]
func GetSchoolYear(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolYearResponse{
			Error: &s,
		})
		return
	}

	var schoolYear models.SchoolYear
	err = models.DB.First(&schoolYear, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolYearResponse{
			Error: &s,
		})
		return
	}

	data := newSchoolYear(c, schoolYear)
	c.JSON(http.StatusOK, SchoolYearResponse{Data: &data})
}

// @Summary		Update school year
// @Description	Updates a school year. Only values to be updated need to be specified.
// @Tags			SchoolYears
// @Produce		json
// @Success		200			{object}	SchoolYearResponse
// @Failure		400			{object}	SchoolYearResponse
// @Failure		404			{object}	SchoolYearResponse
// @Failure		500			{object}	SchoolYearResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			schoolYear	body		SchoolYearEditable	true	"School year"
// @Router			/v1/school-years/{id} [patch]
func UpdateSchoolYear(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolYearResponse{
			Error: &s,
		})
		return
	}

	var schoolYear models.SchoolYear
	err = models.DB.First(&schoolYear, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolYearResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SchoolYearEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolYearResponse{
			Error: &s,
		})
		return
	}

	var data SchoolYearEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolYearResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&schoolYear).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolYearResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSchoolYear(c, schoolYear)
	c.JSON(http.StatusOK, SchoolYearResponse{Data: &apiResource})
}

// @Summary		Delete school year
// @Description	Deletes a school year
// @Tags			SchoolYears
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/school-years/{id} [delete]
func DeleteSchoolYear(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var schoolYear models.SchoolYear
	err = models.DB.First(&schoolYear, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&schoolYear).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
