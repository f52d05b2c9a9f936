// Package v1 implements the HTTP API for the ledger.
package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
)

// Controller serves the v1 API for a ledger.
type Controller struct {
	Ledger *ledger.Ledger
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", Options)
		r.GET("", Get)
	}

	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterCategoryGroupRoutes(r.Group("/category-groups"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterReportRoutes(r.Group("/reports"))
	co.RegisterSelectionRoutes(r.Group("/selection"))
	co.RegisterImportRoutes(r.Group("/import"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets        string `json:"budgets" example:"https://example.com/api/v1/budgets"`                // URL of budget list endpoint
	Accounts       string `json:"accounts" example:"https://example.com/api/v1/accounts"`              // URL of account list endpoint
	CategoryGroups string `json:"categoryGroups" example:"https://example.com/api/v1/category-groups"` // URL of category group list endpoint
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`          // URL of category list endpoint
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`      // URL of transaction list endpoint
	Reports        string `json:"reports" example:"https://example.com/api/v1/reports/{month}"`        // URL of the month report endpoint
	Selection      string `json:"selection" example:"https://example.com/api/v1/selection"`            // URL of the selection endpoint
	Import         string `json:"import" example:"https://example.com/api/v1/import"`                  // URL of the import API
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:        url + "/v1/budgets",
			Accounts:       url + "/v1/accounts",
			CategoryGroups: url + "/v1/category-groups",
			Categories:     url + "/v1/categories",
			Transactions:   url + "/v1/transactions",
			Reports:        url + "/v1/reports/{month}",
			Selection:      url + "/v1/selection",
			Import:         url + "/v1/import",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
