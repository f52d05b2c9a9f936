package v1

import (
	"fmt"

	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
)

type BudgetEditable struct {
	Name     string `json:"name" example:"Morre's Budget" default:""`    // Name of the budget
	Note     string `json:"note" example:"My personal expenses" default:""` // A longer description of the budget
	Currency string `json:"currency" example:"EUR" default:"USD"`         // ISO 4217 code of the currency of the budget
}

func (editable BudgetEditable) ledger() ledger.BudgetEditable {
	return ledger.BudgetEditable{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

type BudgetLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                          // The budget itself
	CategoryGroups string `json:"categoryGroups" example:"https://example.com/api/v1/category-groups?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Category groups of this budget
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // Categories of this budget
	Totals         string `json:"totals" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/totals"`                // Sums of assigned, activity and available of all categories
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: BudgetLinks{
			Self:           fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			CategoryGroups: fmt.Sprintf("%s/v1/category-groups?budget=%s", url, model.ID),
			Categories:     fmt.Sprintf("%s/v1/categories?budget=%s", url, model.ID),
			Totals:         fmt.Sprintf("%s/v1/budgets/%s/totals", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data []Budget `json:"data"` // List of budgets
	ResponseError
}

type BudgetCreateResponse struct {
	Data []BudgetResponse `json:"data"` // List of created budgets
	ResponseError
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	b.Data = append(b.Data, BudgetResponse{ResponseError: newResponseError(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data *Budget `json:"data"` // Data for the budget
	ResponseError
}
