// Package root serves the entry point of the API, which links to every
// top level resource.
package root

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs    string `json:"docs" example:"https://ledger.example.com/docs/index.html"` // Swagger UI
	Healthz string `json:"healthz" example:"https://ledger.example.com/healthz"`      // Database health check
	Version string `json:"version" example:"https://ledger.example.com/version"`      // Build version of the ledger
	Metrics string `json:"metrics" example:"https://ledger.example.com/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://ledger.example.com/v1"`                // Budgets, accounts, categories and transactions
}

// linksFor returns the links relative to the base URL of the API.
func linksFor(base string) Links {
	return Links{
		Docs:    base + "/docs/index.html",
		Healthz: base + "/healthz",
		Version: base + "/version",
		Metrics: base + "/metrics",
		V1:      base + "/v1",
	}
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Links to the top level resources of the ledger
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: linksFor(c.GetString(string(models.DBContextURL))),
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
