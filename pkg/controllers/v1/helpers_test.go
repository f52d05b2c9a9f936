package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/envelope-zero/ledger/internal/types"
	v1 "github.com/envelope-zero/ledger/pkg/controllers/v1"
	"github.com/envelope-zero/ledger/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) createTestBudget(t *testing.T, b v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if b.Name == "" {
		b.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{b})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BudgetResponse{}
}

func (suite *TestSuiteStandard) createTestAccount(t *testing.T, a v1.AccountEditable, expectedStatus ...int) v1.AccountResponse {
	if a.Name == "" {
		a.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/accounts", []v1.AccountEditable{a})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.AccountCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.AccountResponse{}
}

func (suite *TestSuiteStandard) createTestCategoryGroup(t *testing.T, g v1.CategoryGroupEditable, expectedStatus ...int) v1.CategoryGroupResponse {
	if g.BudgetID == uuid.Nil {
		g.BudgetID = suite.createTestBudget(t, v1.BudgetEditable{}).Data.ID
	}

	if g.Name == "" {
		g.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/category-groups", []v1.CategoryGroupEditable{g})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CategoryGroupCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.CategoryGroupResponse{}
}

func (suite *TestSuiteStandard) createTestCategory(t *testing.T, c v1.CategoryCreate, expectedStatus ...int) v1.CategoryResponse {
	if c.GroupID == uuid.Nil {
		c.GroupID = suite.createTestCategoryGroup(t, v1.CategoryGroupEditable{}).Data.ID
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryCreate{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.CategoryResponse{}
}

func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, tr v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if tr.AccountID == uuid.Nil {
		tr.AccountID = suite.createTestAccount(t, v1.AccountEditable{}).Data.ID
	}

	if tr.Payee == "" {
		tr.Payee = "Test payee"
	}

	if tr.Amount.IsZero() {
		tr.Amount = types.MustParseAmount("-10")
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tr})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.TransactionResponse{}
}

// getCategory returns the current state of a category.
func (suite *TestSuiteStandard) getCategory(t *testing.T, id uuid.UUID) v1.Category {
	r := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", id), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(t, &r, &response)
	return *response.Data
}
