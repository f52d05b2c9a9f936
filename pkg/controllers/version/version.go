// Package version reports which build of the ledger is serving requests.
package version

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"`
}

type Object struct {
	Version string `json:"version" example:"1.4.2"` // Build version of the ledger
}

// RegisterRoutes serves v as the version on r.
func RegisterRoutes(r *gin.RouterGroup, v string) {
	r.GET("", Handler(v))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Handler returns the handler responding with the build version v.
//
//	@Summary		Ledger version
//	@Description	Returns the build version of the ledger
//	@Tags			General
//	@Success		200	{object}	Response
//	@Router			/version [get]
func Handler(v string) gin.HandlerFunc {
	response := Response{Data: Object{Version: v}}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response)
	}
}
