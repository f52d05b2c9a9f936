package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
		r.OPTIONS("/:id/totals", co.OptionsBudgetTotals)
		r.GET("/:id/totals", co.GetBudgetTotals)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	_, err = co.Ledger.Budgets.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budgets
// @Description	Creates new budgets. The last budget created is selected.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), BudgetCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget, err := co.Ledger.Budgets.Create(c.Request.Context(), editable.ledger())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List budgets
// @Description	Returns the list of all budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.Ledger.Budgets.List(c.Request.Context())
	if err != nil {
		c.JSON(status(err), BudgetListResponse{ResponseError: newResponseError(err)})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	budget, err := co.Ledger.Budgets.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	budget, err := co.Ledger.Budgets.Update(c.Request.Context(), uri.ID.UUID, data.ledger(), updateFields)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a budget with all of its category groups and categories
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	deleted, err := co.Ledger.Budgets.Delete(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, newResponseError(errNotFound("budget")))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/totals [options]
func (co Controller) OptionsBudgetTotals(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	_, err = co.Ledger.Budgets.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get budget totals
// @Description	Returns the sums of assigned, activity and available of all categories of the budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	TotalsResponse
// @Failure		400	{object}	TotalsResponse
// @Failure		404	{object}	TotalsResponse
// @Failure		500	{object}	TotalsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/totals [get]
func (co Controller) GetBudgetTotals(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), TotalsResponse{ResponseError: newResponseError(err)})
		return
	}

	totals, err := co.Ledger.Categories.BudgetTotals(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), TotalsResponse{ResponseError: newResponseError(err)})
		return
	}

	c.JSON(http.StatusOK, TotalsResponse{Data: &totals})
}
