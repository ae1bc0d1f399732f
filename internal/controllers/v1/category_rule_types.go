package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
)

type CategoryRuleEditable struct {
	Priority          uint      `json:"priority" example:"1"`                                            // The priority of the category rule, lower number means higher priority
	Match             string    `json:"match" example:"Paint*" default:""`                               // The matching applied to the expense note. Supports globbing.
	ExpenseCategoryID uuid.UUID `json:"expenseCategoryId" example:"f9e873c2-fb4f-4c80-9b33-9b6e8aaa4d23"` // The expense category to assign when the rule matches
}

// model returns the database resource for the editable fields
func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		Priority:          editable.Priority,
		Match:             editable.Match,
		ExpenseCategoryID: editable.ExpenseCategoryID,
	}
}

type CategoryRuleLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/category-rules/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`             // The category rule itself
	ExpenseCategory string `json:"expenseCategory" example:"https://example.com/api/v1/expense-categories/f9e873c2-fb4f-4c80-9b33-9b6e8aaa4d23"` // The expense category assigned by this rule
}

// CategoryRule is the API v1 representation of a CategoryRule.
type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority:          model.Priority,
			Match:             model.Match,
			ExpenseCategoryID: model.ExpenseCategoryID,
		},
		Links: CategoryRuleLinks{
			Self:            fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
			ExpenseCategory: fmt.Sprintf("%s/v1/expense-categories/%s", url, model.ExpenseCategoryID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of category rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created category rules
}

func (r *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the category rule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryRuleQueryFilter struct {
	Match             string `form:"match" filterField:"false"`  // Fuzzy filter for the match
	ExpenseCategoryID string `form:"expenseCategory"`            // By expense category ID
	Priority          uint   `form:"priority"`                   // By priority
	Offset            uint   `form:"offset" filterField:"false"` // The offset of the first CategoryRule returned. Defaults to 0.
	Limit             int    `form:"limit" filterField:"false"`  // Maximum number of CategoryRules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model() (models.CategoryRule, error) {
	expenseCategoryID, err := httputil.UUIDFromString(f.ExpenseCategoryID)
	if err != nil {
		return models.CategoryRule{}, err
	}

	return models.CategoryRule{
		Priority:          f.Priority,
		ExpenseCategoryID: expenseCategoryID,
	}, nil
}
