package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/envelope-zero/ledger/internal/types"
	v1 "github.com/envelope-zero/ledger/pkg/controllers/v1"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	g := suite.createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})

	tests := []struct {
		name     string
		category v1.CategoryCreate
		status   int
		field    string
	}{
		{"Plain", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Groceries", GroupID: g.Data.ID}}, http.StatusCreated, ""},
		{"Seeded", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Rent", GroupID: g.Data.ID}, Assigned: 120000, Available: 120000}, http.StatusCreated, ""},
		{"Empty name", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: " ", GroupID: g.Data.ID}}, http.StatusBadRequest, "name"},
		{"Negative target", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Fun", GroupID: g.Data.ID, TargetAmount: -100}}, http.StatusBadRequest, "targetAmount"},
		{"Unknown group", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Fun", GroupID: uuid.New()}}, http.StatusBadRequest, "groupId"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryCreate{tt.category})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)
			suite.Require().Len(response.Data, 1)

			if tt.status != http.StatusCreated {
				suite.Require().NotNil(response.Data[0].Field)
				assert.Equal(t, tt.field, *response.Data[0].Field)
				return
			}

			c := response.Data[0].Data
			assert.Equal(t, tt.category.Assigned, c.Assigned)
			assert.Equal(t, tt.category.Activity, c.Activity)
			assert.Equal(t, tt.category.Available, c.Available)
			assert.Equal(t, g.Data.ID, c.GroupID)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	b := suite.createTestBudget(suite.T(), v1.BudgetEditable{})
	g1 := suite.createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{BudgetID: b.Data.ID})
	g2 := suite.createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{BudgetID: b.Data.ID})

	suite.createTestCategory(suite.T(), v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{GroupID: g1.Data.ID}})
	suite.createTestCategory(suite.T(), v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{GroupID: g2.Data.ID}})
	suite.createTestCategory(suite.T(), v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{GroupID: g2.Data.ID}})

	// Select the budget the categories are in
	r := test.Request(suite.co, suite.T(), http.MethodPatch, "http://example.com/v1/selection", map[string]any{"budgetId": b.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name   string
		query  string
		status int
		len    int
	}{
		{"Selected budget", "", http.StatusOK, 3},
		{"Budget", fmt.Sprintf("?budget=%s", b.Data.ID), http.StatusOK, 3},
		{"Group", fmt.Sprintf("?group=%s", g2.Data.ID), http.StatusOK, 2},
		{"Group takes precedence", fmt.Sprintf("?group=%s&budget=%s", g1.Data.ID, uuid.New()), http.StatusOK, 1},
		{"Unknown budget", fmt.Sprintf("?budget=%s", uuid.New()), http.StatusOK, 0},
		{"Invalid group", "?group=NotAUUID", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesListNoBudget() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := suite.createTestCategory(suite.T(), v1.CategoryCreate{})

	tests := []struct {
		name   string
		id     string
		method string
		status int
	}{
		{"GET Existing", c.Data.ID.String(), http.MethodGet, http.StatusOK},
		{"GET Unknown", uuid.New().String(), http.MethodGet, http.StatusNotFound},
		{"GET Invalid ID", "NotAUUID", http.MethodGet, http.StatusBadRequest},
		{"OPTIONS Existing", c.Data.ID.String(), http.MethodOptions, http.StatusNoContent},
		{"OPTIONS Unknown", uuid.New().String(), http.MethodOptions, http.StatusNotFound},
		{"DELETE Unknown", uuid.New().String(), http.MethodDelete, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	c := suite.createTestCategory(suite.T(), v1.CategoryCreate{Assigned: 5000, Available: 5000})
	suite.createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &c.Data.ID, Amount: types.MustParseAmount("12.50")})

	g := suite.createTestCategoryGroup(suite.T(), v1.CategoryGroupEditable{})

	r := test.Request(suite.co, suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{
		"name":         "Dining out",
		"targetAmount": "150",
		"groupId":      g.Data.ID,
		"activity":     "1000",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Dining out", response.Data.Name)
	assert.Equal(suite.T(), types.MustParseAmount("150"), response.Data.TargetAmount)
	assert.Equal(suite.T(), g.Data.ID, response.Data.GroupID)

	// The running totals are not changed by updates
	assert.Equal(suite.T(), types.MustParseAmount("-12.50"), response.Data.Activity)
	assert.Equal(suite.T(), types.MustParseAmount("62.50"), response.Data.Available)
	assert.Equal(suite.T(), types.MustParseAmount("50"), response.Data.Assigned)
}

func (suite *TestSuiteStandard) TestCategoriesUpdateValidation() {
	c := suite.createTestCategory(suite.T(), v1.CategoryCreate{})

	tests := []struct {
		name  string
		body  map[string]any
		field string
		err   error
	}{
		{"Empty name", map[string]any{"name": ""}, "name", ledger.ErrNameEmpty},
		{"Negative target", map[string]any{"targetAmount": "-1"}, "targetAmount", ledger.ErrTargetAmountNegative},
		{"Unknown group", map[string]any{"groupId": uuid.New()}, "groupId", ledger.ErrCategoryGroupMissing},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPatch, c.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.CategoryResponse
			test.DecodeResponse(t, &r, &response)
			suite.Require().NotNil(response.Field)
			assert.Equal(t, tt.field, *response.Field)
			assert.Contains(t, *response.Error, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	c := suite.createTestCategory(suite.T(), v1.CategoryCreate{})

	r := test.Request(suite.co, suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.co, suite.T(), http.MethodGet, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.co, suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
