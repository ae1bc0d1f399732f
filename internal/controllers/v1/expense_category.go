package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterExpenseCategoryRoutes registers the routes for expense categories with
// the RouterGroup that is passed.
func RegisterExpenseCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseCategoryList)
		r.GET("", GetExpenseCategories)
		r.POST("", CreateExpenseCategories)
	}

	// ExpenseCategory with ID
	{
		r.OPTIONS("/:id", OptionsExpenseCategoryDetail)
		r.GET("/:id", GetExpenseCategory)
		r.PATCH("/:id", UpdateExpenseCategory)
		r.DELETE("/:id", DeleteExpenseCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExpenseCategories
// @Success		204
// @Router			/v1/expense-categories [options]
func OptionsExpenseCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExpenseCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expense-categories/{id} [options]
func OptionsExpenseCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.ExpenseCategory{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates expense categories
// @Description	Creates new expense categories
// @Tags			ExpenseCategories
// @Produce		json
// @Success		201			{object}	ExpenseCategoryCreateResponse
// @Failure		400			{object}	ExpenseCategoryCreateResponse
// @Failure		500			{object}	ExpenseCategoryCreateResponse
// @Param			expenseCategories	body		[]ExpenseCategoryEditable	true	"Expense categories"
// @Router			/v1/expense-categories [post]
func CreateExpenseCategories(c *gin.Context) {
	var editables []ExpenseCategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCategoryCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCategoryCreateResponse{}

	for _, editable := range editables {
		expenseCategory := editable.model()
		err = models.DB.Create(&expenseCategory).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpenseCategory(c, expenseCategory)
		r.Data = append(r.Data, ExpenseCategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List expense categories
// @Description	Returns a list of expense categories
// @Tags			ExpenseCategories
// @Produce		json
// @Success		200	{object}	ExpenseCategoryListResponse
// @Failure		400	{object}	ExpenseCategoryListResponse
// @Failure		500	{object}	ExpenseCategoryListResponse
// @Router			/v1/expense-categories [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first ExpenseCategory returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of ExpenseCategories to return. Defaults to 50."
func GetExpenseCategories(c *gin.Context) {
	var filter ExpenseCategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseCategoryListResponse{
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
		c.JSON(status(err), ExpenseCategoryListResponse{
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

	// Default to 50 ExpenseCategories and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var expenseCategories []models.ExpenseCategory
	err = q.Find(&expenseCategories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCategoryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCategoryListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]ExpenseCategory, 0)
	for _, expenseCategory := range expenseCategories {
		data = append(data, newExpenseCategory(c, expenseCategory))
	}

	c.JSON(http.StatusOK, ExpenseCategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense category
// @Description	Returns a specific expense category
// @Tags			ExpenseCategories
// @Produce		json
// @Success		200	{object}	ExpenseCategoryResponse
// @Failure		400	{object}	ExpenseCategoryResponse
// @Failure		404	{object}	ExpenseCategoryResponse
// @Failure		500	{object}	ExpenseCategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expense-categories/{id} [get]
func GetExpenseCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCategoryResponse{
			Error: &s,
		})
		return
	}

	var expenseCategory models.ExpenseCategory
	err = models.DB.First(&expenseCategory, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCategoryResponse{
			Error: &s,
		})
		return
	}

	data := newExpenseCategory(c, expenseCategory)
	c.JSON(http.StatusOK, ExpenseCategoryResponse{Data: &data})
}

// @Summary		Update expense category
// @Description	Updates a expense category. Only values to be updated need to be specified.
// @Tags			ExpenseCategories
// @Produce		json
// @Success		200			{object}	ExpenseCategoryResponse
// @Failure		400			{object}	ExpenseCategoryResponse
// @Failure		404			{object}	ExpenseCategoryResponse
// @Failure		500			{object}	ExpenseCategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expenseCategory	body		ExpenseCategoryEditable	true	"Expense category"
// @Router			/v1/expense-categories/{id} [patch]
func UpdateExpenseCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCategoryResponse{
			Error: &s,
		})
		return
	}

	var expenseCategory models.ExpenseCategory
	err = models.DB.First(&expenseCategory, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCategoryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseCategoryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCategoryResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseCategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCategoryResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&expenseCategory).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCategoryResponse{
			Error: &s,
		})
		return
	}

	apiResource := newExpenseCategory(c, expenseCategory)
	c.JSON(http.StatusOK, ExpenseCategoryResponse{Data: &apiResource})
}

// @Summary		Delete expense category
// @Description	Deletes a expense category
// @Tags			ExpenseCategories
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expense-categories/{id} [delete]
func DeleteExpenseCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expenseCategory models.ExpenseCategory
	err = models.DB.First(&expenseCategory, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&expenseCategory).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
