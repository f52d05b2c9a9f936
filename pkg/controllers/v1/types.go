package v1

import (
	ez_uuid "github.com/envelope-zero/ledger/internal/uuid"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset int   `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// TotalsResponse contains the sums of the running totals of the categories
// in a category group or budget.
type TotalsResponse struct {
	Data *ledger.Totals `json:"data"`
	ResponseError
}

// bindURI binds the ID of the resource in the URI.
func bindURI(c *gin.Context) (URIID, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	return uri, err
}
