package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	_, err = co.Ledger.Transactions.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transactions
// @Description	Creates transactions and updates the categories they are posted against.
// @Description	Transactions without an account ID are created for the selected account.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), TransactionCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		if editable.AccountID == uuid.Nil {
			if selected := co.Ledger.Accounts.Selected(); selected != nil {
				editable.AccountID = *selected
			}
		}

		transaction, err := co.Ledger.Transactions.Create(c.Request.Context(), editable.ledger())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			account		query	string	false	"Filter by account ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			type		query	string	false	"Filter by type"
// @Param			cleared		query	bool	false	"Is the transaction cleared?"
// @Param			payee		query	string	false	"Filter by payee. Supports * as wildcard"
// @Param			fromDate	query	string	false	"Transactions at and after this date"
// @Param			untilDate	query	string	false	"Transactions before and at this date"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, TransactionListResponse{ResponseError: newResponseError(httputil.ErrInvalidQueryString)})
		return
	}

	// Get the fields set in the query string
	setFields := httputil.GetURLFields(c.Request.URL, query)

	filter, err := query.ledger(setFields)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{ResponseError: newResponseError(err)})
		return
	}

	transactions, total, err := co.Ledger.Transactions.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	transaction, err := co.Ledger.Transactions.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction and the categories it was and is posted against.
// @Description	Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	var data TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	transaction, err := co.Ledger.Transactions.Update(c.Request.Context(), uri.ID.UUID, data.ledger(), updateFields)
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction and reverses its effect on the category it is posted against
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	deleted, err := co.Ledger.Transactions.Delete(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, newResponseError(errNotFound("transaction")))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
