package models

import (
	"strings"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Valid reports if the transaction type is known.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction is money flowing in or out of an account.
//
// AccountID and CategoryID are not foreign keys. Accounts and categories
// can be deleted while transactions still reference them.
type Transaction struct {
	DefaultModel
	Date       types.Date `gorm:"index"`
	AccountID  uuid.UUID  `gorm:"index"`
	Amount     types.Amount
	Payee      string
	CategoryID *uuid.UUID `gorm:"index"`
	Note       string
	Cleared    bool
	Type       TransactionType `gorm:"not null"`
	ImportHash string          `gorm:"index"` // SHA256 of the line of the import file, empty for transactions not created by an import
}

// Normalize applies the sign convention for the transaction type.
// Expenses are negative, income is positive. Transfers keep their sign.
func (t *Transaction) Normalize() {
	switch t.Type {
	case TransactionTypeExpense:
		t.Amount = -t.Amount.Abs()
	case TransactionTypeIncome:
		t.Amount = t.Amount.Abs()
	}
}

// BeforeSave
//   - trims whitespace from string fields
//   - ensures that the category ID is nil and not a pointer to a nil UUID
//   - defaults the date to today
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Payee = strings.TrimSpace(t.Payee)
	t.Note = strings.TrimSpace(t.Note)

	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	return nil
}
