package v1

import (
	"fmt"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

type TransactionEditable struct {
	Date       types.Date             `json:"date" example:"1815-12-10"`                                                // Date of the transaction. Defaults to today
	AccountID  uuid.UUID              `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                 // ID of the account. Defaults to the selected account
	Amount     types.Amount           `json:"amount" example:"14.03"`                                                   // Amount of the transaction. Stored negative for expenses and positive for income
	Payee      string                 `json:"payee" example:"Deutsche Bahn" default:""`                                 // Who the money was paid to or received from
	CategoryID *uuid.UUID             `json:"categoryId" example:"f8b93ce5-309d-4ef1-b7c5-cac1b0e1b0a5"`                // ID of the category the transaction is posted against
	Note       string                 `json:"note" example:"Train ride to Alexandria" default:""`                       // A longer description of the transaction
	Cleared    bool                   `json:"cleared" example:"true" default:"false"`                                   // Has the transaction cleared the account?
	Type       models.TransactionType `json:"type" example:"expense" default:"expense" enums:"expense,income,transfer"` // Type of the transaction
}

func (editable TransactionEditable) ledger() ledger.TransactionEditable {
	return ledger.TransactionEditable{
		Date:       editable.Date,
		AccountID:  editable.AccountID,
		Amount:     editable.Amount,
		Payee:      editable.Payee,
		CategoryID: editable.CategoryID,
		Note:       editable.Note,
		Cleared:    editable.Cleared,
		Type:       editable.Type,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`             // The transaction itself
	Account  string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`              // The account of the transaction
	Category string `json:"category,omitempty" example:"https://example.com/api/v1/categories/f8b93ce5-309d-4ef1-b7c5-cac1b0e1b0a5"` // The category of the transaction, if any
}

// Transaction is the API v1 representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	ImportHash string           `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // SHA256 of the imported line. Empty for transactions that were not imported
	Links      TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	t := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:       model.Date,
			AccountID:  model.AccountID,
			Amount:     model.Amount,
			Payee:      model.Payee,
			CategoryID: model.CategoryID,
			Note:       model.Note,
			Cleared:    model.Cleared,
			Type:       model.Type,
		},
		ImportHash: model.ImportHash,
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}

	if model.CategoryID != nil {
		t.Links.Category = fmt.Sprintf("%s/v1/categories/%s", url, *model.CategoryID)
	}

	return t
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Pagination *Pagination   `json:"pagination"` // Pagination information
	ResponseError
}

type TransactionCreateResponse struct {
	Data []TransactionResponse `json:"data"` // List of created transactions
	ResponseError
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	r.Data = append(r.Data, TransactionResponse{ResponseError: newResponseError(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data *Transaction `json:"data"` // Data for the transaction
	ResponseError
}

type TransactionQueryFilter struct {
	AccountID  string                 `form:"account"`   // By account ID
	CategoryID string                 `form:"category"`  // By category ID
	Type       models.TransactionType `form:"type"`      // By type
	Cleared    bool                   `form:"cleared"`   // Is the transaction cleared?
	Payee      string                 `form:"payee"`     // By payee. Supports "*" as wildcard, matching is case insensitive
	FromDate   types.Date             `form:"fromDate"`  // Transactions at and after this date
	UntilDate  types.Date             `form:"untilDate"` // Transactions before and at this date
	Offset     uint                   `form:"offset"`    // The offset of the first transaction returned. Defaults to 0.
	Limit      int                    `form:"limit"`     // Maximum number of transactions to return. Defaults to 50.
}

// ledger converts the query filter to the filter of the transaction store.
// setFields are the fields set in the query string.
func (f TransactionQueryFilter) ledger(setFields []string) (ledger.TransactionFilter, error) {
	accountID, err := httputil.UUIDPtrFromString(f.AccountID)
	if err != nil {
		return ledger.TransactionFilter{}, err
	}

	categoryID, err := httputil.UUIDPtrFromString(f.CategoryID)
	if err != nil {
		return ledger.TransactionFilter{}, err
	}

	filter := ledger.TransactionFilter{
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       f.Type,
		Payee:      f.Payee,
		FromDate:   f.FromDate,
		UntilDate:  f.UntilDate,
		Offset:     int(f.Offset),
		Limit:      ledger.DefaultLimit,
	}

	if slices.Contains(setFields, "Cleared") {
		cleared := f.Cleared
		filter.Cleared = &cleared
	}

	if slices.Contains(setFields, "Limit") {
		filter.Limit = f.Limit
	}

	return filter, nil
}
