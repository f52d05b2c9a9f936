package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/gin-gonic/gin"
)

type URIMonth struct {
	Month types.Month `uri:"month" binding:"required" example:"2013-11"` // Year and month
}

type ReportQuery struct {
	AccountID string `form:"account"` // Limit the report to this account
}

type ReportResponse struct {
	Data *ledger.MonthReport `json:"data"` // Data for the month
	ResponseError
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsReport)
	r.GET("/:month", co.GetReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/{month} [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month report
// @Description	Returns income, expenses, net and the activity per category for the transactions of a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		404		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Param			account	query		string	false	"Limit the report to this account"
// @Router			/v1/reports/{month} [get]
func (co Controller) GetReport(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
		return
	}

	var query ReportQuery
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ReportResponse{ResponseError: newResponseError(httputil.ErrInvalidQueryString)})
		return
	}

	accountID, err := httputil.UUIDPtrFromString(query.AccountID)
	if err != nil {
		c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
		return
	}

	if accountID != nil {
		_, err = co.Ledger.Accounts.Get(c.Request.Context(), *accountID)
		if err != nil {
			c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
			return
		}
	}

	report, err := co.Ledger.Transactions.MonthReport(c.Request.Context(), uri.Month, accountID)
	if err != nil {
		c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &report})
}
