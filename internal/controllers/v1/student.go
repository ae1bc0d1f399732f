package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterStudentRoutes registers the routes for students with
// the RouterGroup that is passed.
func RegisterStudentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsStudentList)
		r.GET("", GetStudents)
		r.POST("", CreateStudents)
	}

	// Student with ID
	{
		r.OPTIONS("/:id", OptionsStudentDetail)
		r.GET("/:id", GetStudent)
		r.PATCH("/:id", UpdateStudent)
		r.DELETE("/:id", DeleteStudent)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Students
// @Success		204
// @Router			/v1/students [options]
func OptionsStudentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Students
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/students/{id} [options]
func OptionsStudentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Student{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates students
// @Description	Creates new students
// @Tags			Students
// @Produce		json
// @Success		201			{object}	StudentCreateResponse
// @Failure		400			{object}	StudentCreateResponse
// @Failure		500			{object}	StudentCreateResponse
// @Param			students	body		[]StudentEditable	true	"Students"
// @Router			/v1/students [post]
func CreateStudents(c *gin.Context) {
	var editables []StudentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := StudentCreateResponse{}

	for _, editable := range editables {
		student := editable.model()
		err = models.DB.Create(&student).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newStudent(c, student)
		r.Data = append(r.Data, StudentResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List students
// @Description	Returns a list of students
// @Tags			Students
// @Produce		json
// @Success		200	{object}	StudentListResponse
// @Failure		400	{object}	StudentListResponse
// @Failure		500	{object}	StudentListResponse
// @Router			/v1/students [get]
// @Param			firstName		query	string	false	"Filter by first name"
// @Param			lastName		query	string	false	"Filter by last name"
// @Param			studentNumber	query	string	false	"Filter by student number"
// @Param			guardian		query	string	false	"Filter by guardian ID"
// @Param			section			query	string	false	"Filter by section ID"
// @Param			schoolYear		query	string	false	"Filter by school year ID"
// @Param			status			query	string	false	"Filter by enrollment status"
// @Param			search			query	string	false	"Search for this text in names and student number"
// @Param			offset	query	uint	false	"The offset of the first Student returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Students to return. Defaults to 50."
func GetStudents(c *gin.Context) {
	var filter StudentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, StudentListResponse{
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
		c.JSON(status(err), StudentListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("last_name ASC, first_name ASC").
		Where(&model, queryFields...)

	if filter.FirstName != "" {
		q = q.Where("first_name LIKE ?", fmt.Sprintf("%%%s%%", filter.FirstName))
	}

	if filter.LastName != "" {
		q = q.Where("last_name LIKE ?", fmt.Sprintf("%%%s%%", filter.LastName))
	}

	if filter.Search != "" {
		search := fmt.Sprintf("%%%s%%", filter.Search)
		q = q.Where(
			models.DB.Where("first_name LIKE ?", search).
				Or(models.DB.Where("last_name LIKE ?", search)).
				Or(models.DB.Where("student_number LIKE ?", search)),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Students and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var students []models.Student
	err = q.Find(&students).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StudentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Student, 0)
	for _, student := range students {
		data = append(data, newStudent(c, student))
	}

	c.JSON(http.StatusOK, StudentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get student
// @Description	Returns a specific student
// @Tags			Students
// @Produce		json
// @Success		200	{object}	StudentResponse
// @Failure		400	{object}	StudentResponse
// @Failure		404	{object}	StudentResponse
// @Failure		500	{object}	StudentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/students/{id} [get]
func GetStudent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StudentResponse{
			Error: &s,
		})
		return
	}

	var student models.Student
	err = models.DB.First(&student, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StudentResponse{
			Error: &s,
		})
		return
	}

	data := newStudent(c, student)
	c.JSON(http.StatusOK, StudentResponse{Data: &data})
}

// @Summary		Update student
// @Description	Updates a student. Only values to be updated need to be specified.
// @Tags			Students
// @Produce		json
// @Success		200			{object}	StudentResponse
// @Failure		400			{object}	StudentResponse
// @Failure		404			{object}	StudentResponse
// @Failure		500			{object}	StudentResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			student	body		StudentEditable	true	"Student"
// @Router			/v1/students/{id} [patch]
func UpdateStudent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StudentResponse{
			Error: &s,
		})
		return
	}

	var student models.Student
	err = models.DB.First(&student, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StudentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, StudentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StudentResponse{
			Error: &s,
		})
		return
	}

	var data StudentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StudentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&student).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StudentResponse{
			Error: &s,
		})
		return
	}

	apiResource := newStudent(c, student)
	c.JSON(http.StatusOK, StudentResponse{Data: &apiResource})
}

// @Summary		Delete student
// @Description	Deletes a student
// @Tags			Students
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/students/{id} [delete]
func DeleteStudent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var student models.Student
	err = models.DB.First(&student, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&student).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
