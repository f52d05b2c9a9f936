package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccounts)
		r.OPTIONS("/total", OptionsAccountTotal)
		r.GET("/total", co.GetAccountTotal)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.PATCH("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
		r.OPTIONS("/:id/register", co.OptionsAccountRegister)
		r.GET("/:id/register", co.GetAccountRegister)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts/total [options]
func OptionsAccountTotal(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	if co.accountExists(c) {
		httputil.OptionsGetPatchDelete(c)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/register [options]
func (co Controller) OptionsAccountRegister(c *gin.Context) {
	if co.accountExists(c) {
		httputil.OptionsGet(c)
	}
}

// accountExists reports if the account in the URI exists. If it does
// not, the error response is written.
func (co Controller) accountExists(c *gin.Context) bool {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return false
	}

	_, err = co.Ledger.Accounts.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return false
	}

	return true
}

// @Summary		Create accounts
// @Description	Creates new accounts
// @Tags			Accounts
// @Produce		json
// @Success		201			{object}	AccountCreateResponse
// @Failure		400			{object}	AccountCreateResponse
// @Failure		500			{object}	AccountCreateResponse
// @Param			accounts	body		[]AccountEditable	true	"Accounts"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccounts(c *gin.Context) {
	var editables []AccountEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), AccountCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AccountCreateResponse{}

	for _, editable := range editables {
		account, err := co.Ledger.Accounts.Create(c.Request.Context(), editable.ledger())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAccount(c, account)
		r.Data = append(r.Data, AccountResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List accounts
// @Description	Returns the list of all accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	accounts, err := co.Ledger.Accounts.List(c.Request.Context())
	if err != nil {
		c.JSON(status(err), AccountListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newAccount(c, account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get total balance
// @Description	Returns the sum of the balances of all accounts in a group. Debt reduces the total.
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountTotalResponse
// @Failure		400		{object}	AccountTotalResponse
// @Failure		500		{object}	AccountTotalResponse
// @Param			group	query		string	false	"The group to sum up. Defaults to budget"
// @Router			/v1/accounts/total [get]
func (co Controller) GetAccountTotal(c *gin.Context) {
	var query AccountTotalQuery
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, AccountTotalResponse{ResponseError: newResponseError(httputil.ErrInvalidQueryString)})
		return
	}

	if query.Group == "" {
		query.Group = models.AccountGroupBudget
	}

	if !query.Group.Valid() {
		c.JSON(http.StatusBadRequest, AccountTotalResponse{ResponseError: newResponseError(errAccountGroup)})
		return
	}

	total, err := co.Ledger.Accounts.TotalBalance(c.Request.Context(), query.Group)
	if err != nil {
		c.JSON(status(err), AccountTotalResponse{ResponseError: newResponseError(err)})
		return
	}

	c.JSON(http.StatusOK, AccountTotalResponse{Data: &AccountTotal{Group: query.Group, Balance: total}})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), AccountResponse{ResponseError: newResponseError(err)})
		return
	}

	account, err := co.Ledger.Accounts.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), AccountResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Get account register
// @Description	Returns the transactions of the account, oldest first, with the running balance after each transaction
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountRegisterResponse
// @Failure		400	{object}	AccountRegisterResponse
// @Failure		404	{object}	AccountRegisterResponse
// @Failure		500	{object}	AccountRegisterResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/register [get]
func (co Controller) GetAccountRegister(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), AccountRegisterResponse{ResponseError: newResponseError(err)})
		return
	}

	_, err = co.Ledger.Accounts.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), AccountRegisterResponse{ResponseError: newResponseError(err)})
		return
	}

	entries, err := co.Ledger.Transactions.Register(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), AccountRegisterResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]AccountRegisterEntry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, AccountRegisterEntry{
			Transaction: newTransaction(c, entry.Transaction),
			Balance:     entry.Balance,
		})
	}

	c.JSON(http.StatusOK, AccountRegisterResponse{Data: data})
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func (co Controller) UpdateAccount(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), AccountResponse{ResponseError: newResponseError(err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		c.JSON(status(err), AccountResponse{ResponseError: newResponseError(err)})
		return
	}

	var data AccountEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), AccountResponse{ResponseError: newResponseError(err)})
		return
	}

	account, err := co.Ledger.Accounts.Update(c.Request.Context(), uri.ID.UUID, data.ledger(), updateFields)
	if err != nil {
		c.JSON(status(err), AccountResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &apiResource})
}

// @Summary		Delete account
// @Description	Deletes an account. Transactions of the account are not deleted.
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	deleted, err := co.Ledger.Accounts.Delete(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, newResponseError(errNotFound("account")))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
