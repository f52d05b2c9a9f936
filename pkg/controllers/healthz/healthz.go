package healthz

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Response struct {
	Error string `json:"error" example:"an error occurred on the server during your request"` // The error, if the service is not healthy
}

// RegisterRoutes registers the healthz endpoint. The database
// is pinged on every request.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	Response
// @Router			/healthz [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			c.JSON(http.StatusInternalServerError, Response{
				Error: models.ErrGeneral.Error(),
			})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
