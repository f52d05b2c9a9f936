package ledger

import (
	"errors"
)

var (
	ErrNameEmpty              = errors.New("the name must not be empty")
	ErrPayeeEmpty             = errors.New("the payee must not be empty")
	ErrAmountZero             = errors.New("the amount must not be zero")
	ErrTargetAmountNegative   = errors.New("the target amount must not be negative")
	ErrCurrencyInvalid        = errors.New("the currency is not a valid ISO 4217 currency code")
	ErrAccountTypeInvalid     = errors.New("the account type must be one of cash, credit, loan, tracking")
	ErrAccountGroupInvalid    = errors.New("the account group must be one of budget, tracking")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be one of expense, income, transfer")
	ErrAccountIDEmpty         = errors.New("the account ID must be set")
	ErrAccountMissing         = errors.New("there is no account with the specified ID")
	ErrBudgetMissing          = errors.New("there is no budget with the specified ID")
	ErrCategoryGroupMissing   = errors.New("there is no category group with the specified ID")
	ErrCategoryMissing        = errors.New("there is no category with the specified ID")
)

// ErrDanglingReference is logged when a transaction references a category
// that does not exist anymore. It is never returned to callers.
var ErrDanglingReference = errors.New("the transaction references a category that does not exist")

// ValidationError is returned when data passed in fails a precondition.
//
// Operations returning a ValidationError have not changed any data.
type ValidationError struct {
	Field string // JSON name of the field that failed validation
	Err   error
}

func (e ValidationError) Error() string {
	return e.Err.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return ValidationError{Field: field, Err: err}
}
