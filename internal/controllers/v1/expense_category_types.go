package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/models"
)

type ExpenseCategoryEditable struct {
	Name string `json:"name" example:"Classroom Supplies" default:""`      // Name of the expense category
	Note string `json:"note" example:"Chalk, paper, markers" default:""` // A longer description for the expense category
}

// model returns the database resource for the editable fields
func (editable ExpenseCategoryEditable) model() models.ExpenseCategory {
	return models.ExpenseCategory{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type ExpenseCategoryLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/expense-categories/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                       // The expense category itself
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules?expenseCategory=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Rules assigning this category
}

// ExpenseCategory is the API v1 representation of an ExpenseCategory.
type ExpenseCategory struct {
	models.DefaultModel
	ExpenseCategoryEditable
	Links ExpenseCategoryLinks `json:"links"`
}

func newExpenseCategory(c *gin.Context, model models.ExpenseCategory) ExpenseCategory {
	url := c.GetString(string(models.DBContextURL))

	return ExpenseCategory{
		DefaultModel: model.DefaultModel,
		ExpenseCategoryEditable: ExpenseCategoryEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: ExpenseCategoryLinks{
			Self:          fmt.Sprintf("%s/v1/expense-categories/%s", url, model.ID),
			CategoryRules: fmt.Sprintf("%s/v1/category-rules?expenseCategory=%s", url, model.ID),
		},
	}
}

type ExpenseCategoryListResponse struct {
	Data       []ExpenseCategory `json:"data"`                                                          // List of expense categories
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type ExpenseCategoryCreateResponse struct {
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseCategoryResponse `json:"data"`                                                          // List of created expense categories
}

func (e *ExpenseCategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseCategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseCategoryResponse struct {
	Data  *ExpenseCategory `json:"data"`                                                          // Data for the expense category
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseCategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the expense category name
	Note   string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first ExpenseCategory returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of ExpenseCategories to return. Defaults to 50.
}

func (f ExpenseCategoryQueryFilter) model() (models.ExpenseCategory, error) {
	return models.ExpenseCategory{}, nil
}
