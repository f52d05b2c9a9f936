package v1

import (
	"context"
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Selection contains the currently selected resources. Resources that
// are not selected are null.
type Selection struct {
	BudgetID   *uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // The selected budget
	AccountID  *uuid.UUID `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // The selected account
	CategoryID *uuid.UUID `json:"categoryId" example:"f8b93ce5-309d-4ef1-b7c5-cac1b0e1b0a5"` // The selected category
}

type SelectionResponse struct {
	Data *Selection `json:"data"` // Data for the selection
	ResponseError
}

// RegisterSelectionRoutes registers the routes for the selection with
// the RouterGroup that is passed.
func (co Controller) RegisterSelectionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSelection)
	r.GET("", co.GetSelection)
	r.PATCH("", co.UpdateSelection)
}

func (co Controller) selection() Selection {
	return Selection{
		BudgetID:   co.Ledger.Budgets.Selected(),
		AccountID:  co.Ledger.Accounts.Selected(),
		CategoryID: co.Ledger.Categories.Selected(),
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Selection
// @Success		204
// @Router			/v1/selection [options]
func OptionsSelection(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get selection
// @Description	Returns the selected budget, account and category
// @Tags			Selection
// @Produce		json
// @Success		200	{object}	SelectionResponse
// @Router			/v1/selection [get]
func (co Controller) GetSelection(c *gin.Context) {
	data := co.selection()
	c.JSON(http.StatusOK, SelectionResponse{Data: &data})
}

// @Summary		Update selection
// @Description	Selects a budget, account or category. Only the selections to change need to be specified, null clears a selection.
// @Tags			Selection
// @Accept			json
// @Produce		json
// @Success		200			{object}	SelectionResponse
// @Failure		400			{object}	SelectionResponse
// @Failure		404			{object}	SelectionResponse
// @Failure		500			{object}	SelectionResponse
// @Param			selection	body		Selection	true	"Selection"
// @Router			/v1/selection [patch]
func (co Controller) UpdateSelection(c *gin.Context) {
	updateFields, err := httputil.GetBodyFields(c, Selection{})
	if err != nil {
		c.JSON(status(err), SelectionResponse{ResponseError: newResponseError(err)})
		return
	}

	var data Selection
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), SelectionResponse{ResponseError: newResponseError(err)})
		return
	}

	selectors := []struct {
		field    string
		resource string
		id       *uuid.UUID
		sel      func(context.Context, *uuid.UUID) (bool, error)
	}{
		{"BudgetID", "budget", data.BudgetID, co.Ledger.Budgets.Select},
		{"AccountID", "account", data.AccountID, co.Ledger.Accounts.Select},
		{"CategoryID", "category", data.CategoryID, co.Ledger.Categories.Select},
	}

	for _, s := range selectors {
		if !slices.Contains(updateFields, s.field) {
			continue
		}

		ok, err := s.sel(c.Request.Context(), s.id)
		if err != nil {
			c.JSON(status(err), SelectionResponse{ResponseError: newResponseError(err)})
			return
		}

		if !ok {
			c.JSON(http.StatusNotFound, SelectionResponse{ResponseError: newResponseError(errNotFound(s.resource))})
			return
		}
	}

	selection := co.selection()
	c.JSON(http.StatusOK, SelectionResponse{Data: &selection})
}
