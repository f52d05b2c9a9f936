package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterCategoryGroupRoutes registers the routes for category groups with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryGroupRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryGroupList)
		r.GET("", co.GetCategoryGroups)
		r.POST("", co.CreateCategoryGroups)
	}

	// Category group with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryGroupDetail)
		r.GET("/:id", co.GetCategoryGroup)
		r.PATCH("/:id", co.UpdateCategoryGroup)
		r.DELETE("/:id", co.DeleteCategoryGroup)
		r.OPTIONS("/:id/totals", co.OptionsCategoryGroupTotals)
		r.GET("/:id/totals", co.GetCategoryGroupTotals)
	}
}

// budgetID returns the budget ID from the query parameter. If it is
// not set, the selected budget is used.
func (co Controller) budgetID(param string) (uuid.UUID, error) {
	id, err := httputil.UUIDFromString(param)
	if err != nil {
		return uuid.Nil, err
	}

	if id != uuid.Nil {
		return id, nil
	}

	selected := co.Ledger.Budgets.Selected()
	if selected == nil {
		return uuid.Nil, errBudgetIDParameter
	}

	return *selected, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Groups
// @Success		204
// @Router			/v1/category-groups [options]
func OptionsCategoryGroupList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Groups
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [options]
func (co Controller) OptionsCategoryGroupDetail(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	_, err = co.Ledger.Categories.GetGroup(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category groups
// @Description	Creates new category groups. Groups without a budget ID are created in the selected budget.
// @Tags			Category Groups
// @Produce		json
// @Success		201		{object}	CategoryGroupCreateResponse
// @Failure		400		{object}	CategoryGroupCreateResponse
// @Failure		500		{object}	CategoryGroupCreateResponse
// @Param			groups	body		[]CategoryGroupEditable	true	"Category groups"
// @Router			/v1/category-groups [post]
func (co Controller) CreateCategoryGroups(c *gin.Context) {
	var editables []CategoryGroupEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), CategoryGroupCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryGroupCreateResponse{}

	for _, editable := range editables {
		if editable.BudgetID == uuid.Nil {
			editable.BudgetID, err = co.budgetID("")
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		group, err := co.Ledger.Categories.CreateGroup(c.Request.Context(), editable.ledger())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryGroup(c, group)
		r.Data = append(r.Data, CategoryGroupResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List category groups
// @Description	Returns the category groups of a budget
// @Tags			Category Groups
// @Produce		json
// @Success		200		{object}	CategoryGroupListResponse
// @Failure		400		{object}	CategoryGroupListResponse
// @Failure		500		{object}	CategoryGroupListResponse
// @Param			budget	query		string	false	"Filter by budget ID. Defaults to the selected budget"
// @Router			/v1/category-groups [get]
func (co Controller) GetCategoryGroups(c *gin.Context) {
	var filter CategoryGroupQueryFilter
	if err := c.BindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CategoryGroupListResponse{ResponseError: newResponseError(httputil.ErrInvalidQueryString)})
		return
	}

	budgetID, err := co.budgetID(filter.BudgetID)
	if err != nil {
		c.JSON(status(err), CategoryGroupListResponse{ResponseError: newResponseError(err)})
		return
	}

	groups, err := co.Ledger.Categories.ListGroups(c.Request.Context(), budgetID)
	if err != nil {
		c.JSON(status(err), CategoryGroupListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]CategoryGroup, 0, len(groups))
	for _, group := range groups {
		data = append(data, newCategoryGroup(c, group))
	}

	c.JSON(http.StatusOK, CategoryGroupListResponse{Data: data})
}

// @Summary		Get category group
// @Description	Returns a specific category group
// @Tags			Category Groups
// @Produce		json
// @Success		200	{object}	CategoryGroupResponse
// @Failure		400	{object}	CategoryGroupResponse
// @Failure		404	{object}	CategoryGroupResponse
// @Failure		500	{object}	CategoryGroupResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [get]
func (co Controller) GetCategoryGroup(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), CategoryGroupResponse{ResponseError: newResponseError(err)})
		return
	}

	group, err := co.Ledger.Categories.GetGroup(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), CategoryGroupResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newCategoryGroup(c, group)
	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &data})
}

// @Summary		Update category group
// @Description	Updates a category group. Only values to be updated need to be specified.
// @Tags			Category Groups
// @Produce		json
// @Success		200		{object}	CategoryGroupResponse
// @Failure		400		{object}	CategoryGroupResponse
// @Failure		404		{object}	CategoryGroupResponse
// @Failure		500		{object}	CategoryGroupResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			group	body		CategoryGroupEditable	true	"Category group"
// @Router			/v1/category-groups/{id} [patch]
func (co Controller) UpdateCategoryGroup(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), CategoryGroupResponse{ResponseError: newResponseError(err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryGroupEditable{})
	if err != nil {
		c.JSON(status(err), CategoryGroupResponse{ResponseError: newResponseError(err)})
		return
	}

	var data CategoryGroupEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), CategoryGroupResponse{ResponseError: newResponseError(err)})
		return
	}

	group, err := co.Ledger.Categories.UpdateGroup(c.Request.Context(), uri.ID.UUID, data.ledger(), updateFields)
	if err != nil {
		c.JSON(status(err), CategoryGroupResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newCategoryGroup(c, group)
	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &apiResource})
}

// @Summary		Delete category group
// @Description	Deletes a category group and all categories in it
// @Tags			Category Groups
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [delete]
func (co Controller) DeleteCategoryGroup(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	deleted, err := co.Ledger.Categories.DeleteGroup(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, newResponseError(errNotFound("category group")))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Groups
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id}/totals [options]
func (co Controller) OptionsCategoryGroupTotals(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	_, err = co.Ledger.Categories.GetGroup(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get category group totals
// @Description	Returns the sums of assigned, activity and available of the categories in the group
// @Tags			Category Groups
// @Produce		json
// @Success		200	{object}	TotalsResponse
// @Failure		400	{object}	TotalsResponse
// @Failure		404	{object}	TotalsResponse
// @Failure		500	{object}	TotalsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id}/totals [get]
func (co Controller) GetCategoryGroupTotals(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), TotalsResponse{ResponseError: newResponseError(err)})
		return
	}

	totals, err := co.Ledger.Categories.GroupTotals(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), TotalsResponse{ResponseError: newResponseError(err)})
		return
	}

	c.JSON(http.StatusOK, TotalsResponse{Data: &totals})
}
