package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/importer"
	ynabimport "github.com/envelope-zero/ledger/pkg/importer/parser/ynab-import"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errAccountIDParameter = errors.New("the account parameter must be set")

type ImportQuery struct {
	AccountID string `form:"account"` // ID of the account to import the transactions for
}

// TransactionPreview is a transaction parsed from an import file.
type TransactionPreview struct {
	Transaction             TransactionEditable `json:"transaction"`
	ImportHash              string              `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // SHA256 of the line of the file
	DuplicateTransactionIDs []uuid.UUID         `json:"duplicateTransactionIds"`                                                               // IDs of transactions that this transaction duplicates
}

func newTransactionPreview(p importer.TransactionPreview) TransactionPreview {
	t := p.Transaction

	return TransactionPreview{
		Transaction: TransactionEditable{
			Date:       t.Date,
			AccountID:  t.AccountID,
			Amount:     t.Amount,
			Payee:      t.Payee,
			CategoryID: t.CategoryID,
			Note:       t.Note,
			Cleared:    t.Cleared,
			Type:       t.Type,
		},
		ImportHash:              t.ImportHash,
		DuplicateTransactionIDs: p.DuplicateTransactionIDs,
	}
}

type ImportPreviewList struct {
	Data []TransactionPreview `json:"data"` // List of transaction previews
	ResponseError
}

type ImportTransactionsResponse struct {
	Data []Transaction `json:"data"` // List of created transactions
	ResponseError
}

type ImportResponse struct {
	Links ImportLinks `json:"links"` // Links for the import API
}

type ImportLinks struct {
	YnabImport        string `json:"ynabImport" example:"https://example.com/api/v1/import/ynab-import"`                // URL of YNAB Import endpoint
	YnabImportPreview string `json:"ynabImportPreview" example:"https://example.com/api/v1/import/ynab-import-preview"` // URL of YNAB Import preview endpoint
}

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsImport)
		r.GET("", GetImport)

		r.OPTIONS("/ynab-import", OptionsImportYnabImport)
		r.POST("/ynab-import", co.ImportYnabImport)

		r.OPTIONS("/ynab-import-preview", OptionsImportYnabImport)
		r.POST("/ynab-import-preview", co.ImportYnabImportPreview)
	}
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, httputil.ErrNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), suffix) {
		return nil, fmt.Errorf("this endpoint only supports %s files", suffix)
	}

	return formFile.Open()
}

// parseYnabImport parses the uploaded file for the account in the query.
func (co Controller) parseYnabImport(c *gin.Context) ([]importer.TransactionPreview, error) {
	var query ImportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, httputil.ErrInvalidQueryString
	}

	accountID, err := httputil.UUIDFromString(query.AccountID)
	if err != nil {
		return nil, err
	}

	if accountID == uuid.Nil {
		accountID, err = co.selectedAccount()
		if err != nil {
			return nil, err
		}
	}

	_, err = co.Ledger.Accounts.Get(c.Request.Context(), accountID)
	if err != nil {
		return nil, err
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ynabimport.Parse(f, accountID)
}

// selectedAccount returns the ID of the selected account.
func (co Controller) selectedAccount() (uuid.UUID, error) {
	selected := co.Ledger.Accounts.Selected()
	if selected == nil {
		return uuid.Nil, errAccountIDParameter
	}

	return *selected, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Import API overview
// @Description	Returns links to the import endpoints
// @Tags			Import
// @Success		200	{object}	ImportResponse
// @Router			/v1/import [get]
func GetImport(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, ImportResponse{
		Links: ImportLinks{
			YnabImport:        url + "/v1/import/ynab-import",
			YnabImportPreview: url + "/v1/import/ynab-import-preview",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/ynab-import [options]
// @Router			/v1/import/ynab-import-preview [options]
func OptionsImportYnabImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Transaction Import Preview
// @Description	Returns a preview of transactions to be imported after parsing a YNAB Import format csv file
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportPreviewList
// @Failure		400		{object}	ImportPreviewList
// @Failure		404		{object}	ImportPreviewList
// @Failure		500		{object}	ImportPreviewList
// @Param			file	formData	file	true	"File to import"
// @Param			account	query		string	false	"ID of the account to import transactions for. Defaults to the selected account"
// @Router			/v1/import/ynab-import-preview [post]
func (co Controller) ImportYnabImportPreview(c *gin.Context) {
	previews, err := co.parseYnabImport(c)
	if err != nil {
		c.JSON(status(err), ImportPreviewList{ResponseError: newResponseError(err)})
		return
	}

	err = importer.FindDuplicates(c.Request.Context(), co.Ledger.Transactions, previews)
	if err != nil {
		c.JSON(status(err), ImportPreviewList{ResponseError: newResponseError(err)})
		return
	}

	data := make([]TransactionPreview, 0, len(previews))
	for _, p := range previews {
		data = append(data, newTransactionPreview(p))
	}

	c.JSON(http.StatusOK, ImportPreviewList{Data: data})
}

// @Summary		Import transactions
// @Description	Creates the transactions of a YNAB Import format csv file for an account.
// @Description	Transactions that have been imported before are skipped.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportTransactionsResponse
// @Failure		400		{object}	ImportTransactionsResponse
// @Failure		404		{object}	ImportTransactionsResponse
// @Failure		500		{object}	ImportTransactionsResponse
// @Param			file	formData	file	true	"File to import"
// @Param			account	query		string	false	"ID of the account to import transactions for. Defaults to the selected account"
// @Router			/v1/import/ynab-import [post]
func (co Controller) ImportYnabImport(c *gin.Context) {
	previews, err := co.parseYnabImport(c)
	if err != nil {
		c.JSON(status(err), ImportTransactionsResponse{ResponseError: newResponseError(err)})
		return
	}

	transactions, err := importer.Create(c.Request.Context(), co.Ledger.Transactions, previews)

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(c, t))
	}

	if err != nil {
		c.JSON(status(err), ImportTransactionsResponse{Data: data, ResponseError: newResponseError(err)})
		return
	}

	c.JSON(http.StatusCreated, ImportTransactionsResponse{Data: data})
}
