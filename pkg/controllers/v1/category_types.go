package v1

import (
	"fmt"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryGroupEditable struct {
	Name     string    `json:"name" example:"Bills" default:""`                         // Name of the category group
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget the group belongs to. Defaults to the selected budget
	Order    *int      `json:"order" example:"2"`                                       // Position of the group in its budget. Defaults to the end
}

func (editable CategoryGroupEditable) ledger() ledger.CategoryGroupEditable {
	return ledger.CategoryGroupEditable{
		Name:     editable.Name,
		BudgetID: editable.BudgetID,
		Order:    editable.Order,
	}
}

type CategoryGroupLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/category-groups/3b1ea324-d438-4419-882a-2fc91d71772f"`        // The category group itself
	Categories string `json:"categories" example:"https://example.com/api/v1/categories?group=3b1ea324-d438-4419-882a-2fc91d71772f"` // Categories of this group
	Totals     string `json:"totals" example:"https://example.com/api/v1/category-groups/3b1ea324-d438-4419-882a-2fc91d71772f/totals"` // Sums of assigned, activity and available of the categories in this group
}

// CategoryGroup is the API v1 representation of a CategoryGroup.
type CategoryGroup struct {
	models.DefaultModel
	Name     string             `json:"name" example:"Bills"`
	BudgetID uuid.UUID          `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	Order    int                `json:"order" example:"2"`
	Links    CategoryGroupLinks `json:"links"`
}

func newCategoryGroup(c *gin.Context, model models.CategoryGroup) CategoryGroup {
	url := c.GetString(string(models.DBContextURL))

	return CategoryGroup{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		BudgetID:     model.BudgetID,
		Order:        model.Order,
		Links: CategoryGroupLinks{
			Self:       fmt.Sprintf("%s/v1/category-groups/%s", url, model.ID),
			Categories: fmt.Sprintf("%s/v1/categories?group=%s", url, model.ID),
			Totals:     fmt.Sprintf("%s/v1/category-groups/%s/totals", url, model.ID),
		},
	}
}

type CategoryGroupListResponse struct {
	Data []CategoryGroup `json:"data"` // List of category groups
	ResponseError
}

type CategoryGroupCreateResponse struct {
	Data []CategoryGroupResponse `json:"data"` // List of created category groups
	ResponseError
}

func (r *CategoryGroupCreateResponse) appendError(err error, currentStatus int) int {
	r.Data = append(r.Data, CategoryGroupResponse{ResponseError: newResponseError(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryGroupResponse struct {
	Data *CategoryGroup `json:"data"` // Data for the category group
	ResponseError
}

type CategoryGroupQueryFilter struct {
	BudgetID string `form:"budget"` // By budget ID. Defaults to the selected budget
}

// CategoryEditable contains the fields of a category that can be changed
// with a PATCH request.
type CategoryEditable struct {
	Name         string       `json:"name" example:"Groceries" default:""`                    // Name of the category
	GroupID      uuid.UUID    `json:"groupId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category group the category belongs to
	TargetAmount types.Amount `json:"targetAmount" example:"400" default:"0"`                 // Monthly goal for the category. Must not be negative
	Note         string       `json:"note" example:"Food and household supplies" default:""`  // A longer description of the category
	Order        *int         `json:"order" example:"1"`                                      // Position of the category in its group. Defaults to the end
}

func (editable CategoryEditable) ledger() ledger.CategoryEditable {
	return ledger.CategoryEditable{
		Name:         editable.Name,
		GroupID:      editable.GroupID,
		TargetAmount: editable.TargetAmount,
		Note:         editable.Note,
		Order:        editable.Order,
	}
}

// CategoryCreate contains the fields of a category that can be set on
// creation. The running totals can only be seeded here.
type CategoryCreate struct {
	CategoryEditable
	Assigned  types.Amount `json:"assigned" example:"400" default:"0"`  // Amount assigned to the category
	Activity  types.Amount `json:"activity" example:"0" default:"0"`    // Initial activity
	Available types.Amount `json:"available" example:"400" default:"0"` // Initial available amount
}

func (create CategoryCreate) seed() *ledger.CategorySeed {
	if create.Assigned.IsZero() && create.Activity.IsZero() && create.Available.IsZero() {
		return nil
	}

	return &ledger.CategorySeed{
		Assigned:  create.Assigned,
		Activity:  create.Activity,
		Available: create.Available,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/f8b93ce5-309d-4ef1-b7c5-cac1b0e1b0a5"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=f8b93ce5-309d-4ef1-b7c5-cac1b0e1b0a5"` // Transactions posted against the category
}

// Category is the API v1 representation of a Category.
type Category struct {
	models.DefaultModel
	Name         string        `json:"name" example:"Groceries"`
	GroupID      uuid.UUID     `json:"groupId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	TargetAmount types.Amount  `json:"targetAmount" example:"400"`
	Assigned     types.Amount  `json:"assigned" example:"400"`                                 // Amount assigned to the category
	Activity     types.Amount  `json:"activity" example:"-87.45"`                              // Sum of the transactions posted against the category
	Available    types.Amount  `json:"available" example:"312.55"`                             // Amount that can still be spent
	Note         string        `json:"note" example:"Food and household supplies"`
	Order        int           `json:"order" example:"1"`
	Links        CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		GroupID:      model.GroupID,
		TargetAmount: model.TargetAmount,
		Assigned:     model.Assigned,
		Activity:     model.Activity,
		Available:    model.Available,
		Note:         model.Note,
		Order:        model.Order,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data []Category `json:"data"` // List of categories
	ResponseError
}

type CategoryCreateResponse struct {
	Data []CategoryResponse `json:"data"` // List of created categories
	ResponseError
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	r.Data = append(r.Data, CategoryResponse{ResponseError: newResponseError(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data *Category `json:"data"` // Data for the category
	ResponseError
}

type CategoryQueryFilter struct {
	BudgetID string `form:"budget"` // By budget ID. Defaults to the selected budget
	GroupID  string `form:"group"`  // By category group ID. Takes precedence over the budget
}
