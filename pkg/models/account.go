package models

import (
	"strings"

	"github.com/envelope-zero/ledger/internal/types"
	"gorm.io/gorm"
)

type AccountType string

const (
	AccountTypeCash     AccountType = "cash"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeLoan     AccountType = "loan"
	AccountTypeTracking AccountType = "tracking"
)

// Valid reports if the account type is known.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeCash, AccountTypeCredit, AccountTypeLoan, AccountTypeTracking:
		return true
	}
	return false
}

// IsDebt reports if accounts of this type hold debt.
func (t AccountType) IsDebt() bool {
	return t == AccountTypeCredit || t == AccountTypeLoan
}

// AccountGroup decides if an account counts towards the budget.
type AccountGroup string

const (
	AccountGroupBudget   AccountGroup = "budget"
	AccountGroupTracking AccountGroup = "tracking"
)

// Valid reports if the account group is known.
func (g AccountGroup) Valid() bool {
	return g == AccountGroupBudget || g == AccountGroupTracking
}

// Account represents an asset or debt account, e.g. a bank account.
//
// Debt accounts (credit cards and loans) hold non-positive balances.
type Account struct {
	DefaultModel
	Name    string       `gorm:"not null"`
	Type    AccountType  `gorm:"not null"`
	Group   AccountGroup `gorm:"column:account_group;not null"`
	Balance types.Amount
	Note    string
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}
