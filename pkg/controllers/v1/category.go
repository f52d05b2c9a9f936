package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	_, err = co.Ledger.Categories.GetCategory(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create categories
// @Description	Creates new categories. Assigned, activity and available can only be set here.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryCreate	true	"Categories"
// @Router			/v1/categories [post]
func (co Controller) CreateCategories(c *gin.Context) {
	var creates []CategoryCreate

	err := httputil.BindData(c, &creates)
	if err != nil {
		c.JSON(status(err), CategoryCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, create := range creates {
		category, err := co.Ledger.Categories.CreateCategory(c.Request.Context(), create.ledger(), create.seed())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategory(c, category)
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List categories
// @Description	Returns the categories of a category group or a budget
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			budget	query		string	false	"Filter by budget ID. Defaults to the selected budget"
// @Param			group	query		string	false	"Filter by category group ID"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.BindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CategoryListResponse{ResponseError: newResponseError(httputil.ErrInvalidQueryString)})
		return
	}

	groupID, err := httputil.UUIDFromString(filter.GroupID)
	if err != nil {
		c.JSON(status(err), CategoryListResponse{ResponseError: newResponseError(err)})
		return
	}

	var categories []models.Category
	if groupID != uuid.Nil {
		categories, err = co.Ledger.Categories.ListGroupCategories(c.Request.Context(), groupID)
	} else {
		var budgetID uuid.UUID
		budgetID, err = co.budgetID(filter.BudgetID)
		if err == nil {
			categories, err = co.Ledger.Categories.ListCategories(c.Request.Context(), budgetID)
		}
	}

	if err != nil {
		c.JSON(status(err), CategoryListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	category, err := co.Ledger.Categories.GetCategory(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified. Assigned, activity and available cannot be changed.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	var data CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	category, err := co.Ledger.Categories.UpdateCategory(c.Request.Context(), uri.ID.UUID, data.ledger(), updateFields)
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Delete category
// @Description	Deletes a category. Transactions posted against it keep referencing it.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	ResponseError
// @Failure		404	{object}	ResponseError
// @Failure		500	{object}	ResponseError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	deleted, err := co.Ledger.Categories.DeleteCategory(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newResponseError(err))
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, newResponseError(errNotFound("category")))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
