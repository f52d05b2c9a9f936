package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/ledger/pkg/controllers/v1"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/envelope-zero/ledger/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	tests := []struct {
		name     string
		budgets  any
		status   int
		currency []string
	}{
		{"Single", []v1.BudgetEditable{{Name: "Household", Currency: "EUR"}}, http.StatusCreated, []string{"EUR"}},
		{"Default currency", []v1.BudgetEditable{{Name: "Household"}}, http.StatusCreated, []string{ledger.DefaultCurrency}},
		{"Multiple", []v1.BudgetEditable{{Name: "One"}, {Name: "Two", Currency: "JPY"}}, http.StatusCreated, []string{ledger.DefaultCurrency, "JPY"}},
		{"Invalid currency", []v1.BudgetEditable{{Name: "One"}, {Name: "Two", Currency: "EURO"}}, http.StatusBadRequest, []string{ledger.DefaultCurrency, ""}},
		{"Empty name", []v1.BudgetEditable{{Name: ""}}, http.StatusBadRequest, []string{""}},
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest, nil},
		{"No array", `{ "name": "Single" }`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/budgets", tt.budgets)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.currency == nil {
				assert.NotNil(t, response.Error)
				return
			}

			for i, currency := range tt.currency {
				if currency == "" {
					assert.NotNil(t, response.Data[i].Error)
					assert.Nil(t, response.Data[i].Data)
					continue
				}

				assert.Equal(t, currency, response.Data[i].Data.Currency)
				assert.Equal(t, fmt.Sprintf("http://example.com/v1/budgets/%s", response.Data[i].Data.ID), response.Data[i].Data.Links.Self)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsValidationField() {
	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{{Name: "  "}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Field)
	assert.Equal(suite.T(), "name", *response.Data[0].Field)
	assert.Equal(suite.T(), ledger.ErrNameEmpty.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, r.Body.String())

	suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "First"})
	suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Second"})

	r = test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "First", response.Data[0].Name)
	assert.Equal(suite.T(), "Second", response.Data[1].Name)
}

// TestBudgetsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	b := suite.createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Budget", b.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Budget with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No Budget with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, tt.method, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")

			var budget v1.BudgetResponse
			test.DecodeResponse(t, &r, &budget)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Budget exists", suite.createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	b := suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Before", Note: "Keep me", Currency: "EUR"})
	path := fmt.Sprintf("http://example.com/v1/budgets/%s", b.Data.ID)

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, budget v1.Budget)
	}{
		{"Name only", map[string]any{"name": "After"}, http.StatusOK, func(t *testing.T, budget v1.Budget) {
			assert.Equal(t, "After", budget.Name)
			assert.Equal(t, "Keep me", budget.Note)
			assert.Equal(t, "EUR", budget.Currency)
		}},
		{"Clear note", map[string]any{"note": ""}, http.StatusOK, func(t *testing.T, budget v1.Budget) {
			assert.Equal(t, "", budget.Note)
		}},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest, nil},
		{"Invalid currency", map[string]any{"currency": "Euro"}, http.StatusBadRequest, nil},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, nil},
		{"Empty body", "", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPatch, path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)

			if tt.check != nil {
				tt.check(t, *response.Data)
			}
		})
	}

	r := test.Request(suite.co, suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), map[string]any{"name": "Nope"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	b := suite.createTestBudget(suite.T(), v1.BudgetEditable{})
	g := suite.createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{BudgetID: b.Data.ID})
	c := suite.createTestCategory(suite.T(), v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{GroupID: g.Data.ID}})

	r := test.Request(suite.co, suite.T(), http.MethodDelete, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, path := range []string{b.Data.Links.Self, g.Data.Links.Self, c.Data.Links.Self} {
		r = test.Request(suite.co, suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r = test.Request(suite.co, suite.T(), http.MethodDelete, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestBudgetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	suite.CloseDB()

	suite.createTestBudget(suite.T(), v1.BudgetEditable{}, http.StatusInternalServerError)

	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}
