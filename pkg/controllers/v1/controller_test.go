package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/ledger/pkg/controllers/v1"
	"github.com/envelope-zero/ledger/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Budgets:        "http://example.com/v1/budgets",
		Accounts:       "http://example.com/v1/accounts",
		CategoryGroups: "http://example.com/v1/category-groups",
		Categories:     "http://example.com/v1/categories",
		Transactions:   "http://example.com/v1/transactions",
		Reports:        "http://example.com/v1/reports/{month}",
		Selection:      "http://example.com/v1/selection",
		Import:         "http://example.com/v1/import",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/budgets", "OPTIONS, GET, POST"},
		{"http://example.com/v1/accounts", "OPTIONS, GET, POST"},
		{"http://example.com/v1/accounts/total", "OPTIONS, GET"},
		{"http://example.com/v1/category-groups", "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/reports/2024-03", "OPTIONS, GET"},
		{"http://example.com/v1/selection", "OPTIONS, GET, PATCH"},
		{"http://example.com/v1/import", "OPTIONS, GET"},
		{"http://example.com/v1/import/ynab-import", "OPTIONS, POST"},
		{"http://example.com/v1/import/ynab-import-preview", "OPTIONS, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
