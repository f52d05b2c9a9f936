package v1

import (
	"fmt"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
)

type AccountEditable struct {
	Name    string              `json:"name" example:"Cash" default:""`                                       // Name of the account
	Type    models.AccountType  `json:"type" example:"cash" default:"cash" enums:"cash,credit,loan,tracking"` // Type of the account
	Balance types.Amount        `json:"balance" example:"173.12" default:"0"`                                 // Balance of the account. For credit and loan accounts, a positive balance is stored as debt
	Group   models.AccountGroup `json:"group" example:"budget" enums:"budget,tracking"`                       // Does the account factor into the budget? Defaults to tracking for tracking accounts, budget otherwise
	Note    string              `json:"note" example:"Money in my wallet" default:""`                         // A longer description for the account
}

func (editable AccountEditable) ledger() ledger.AccountEditable {
	return ledger.AccountEditable{
		Name:    editable.Name,
		Type:    editable.Type,
		Balance: editable.Balance,
		Group:   editable.Group,
		Note:    editable.Note,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Register     string `json:"register" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/register"`        // Transactions of the account with the running balance
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
}

// Account is the API v1 representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:    model.Name,
			Type:    model.Type,
			Balance: model.Balance,
			Group:   model.Group,
			Note:    model.Note,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Register:     fmt.Sprintf("%s/v1/accounts/%s/register", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data []Account `json:"data"` // List of accounts
	ResponseError
}

type AccountCreateResponse struct {
	Data []AccountResponse `json:"data"` // List of created accounts
	ResponseError
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	a.Data = append(a.Data, AccountResponse{ResponseError: newResponseError(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data *Account `json:"data"` // Data for the account
	ResponseError
}

type AccountTotalQuery struct {
	Group models.AccountGroup `form:"group" enums:"budget,tracking"` // The group to sum up. Defaults to budget
}

type AccountTotal struct {
	Group   models.AccountGroup `json:"group" example:"budget"`
	Balance types.Amount        `json:"balance" example:"2735.17"` // Sum of the balances of all accounts in the group
}

type AccountTotalResponse struct {
	Data *AccountTotal `json:"data"`
	ResponseError
}

type AccountRegisterEntry struct {
	Transaction Transaction  `json:"transaction"`
	Balance     types.Amount `json:"balance" example:"312.07"` // Balance of the account after this transaction
}

type AccountRegisterResponse struct {
	Data []AccountRegisterEntry `json:"data"` // Transactions of the account, oldest first
	ResponseError
}
