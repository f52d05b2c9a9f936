package ledger_test

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestAccountCreateDefaults() {
	tests := []struct {
		name     string
		editable ledger.AccountEditable
		typ      models.AccountType
		group    models.AccountGroup
	}{
		{"Default", ledger.AccountEditable{Name: "Wallet"}, models.AccountTypeCash, models.AccountGroupBudget},
		{"Tracking", ledger.AccountEditable{Name: "401k", Type: models.AccountTypeTracking}, models.AccountTypeTracking, models.AccountGroupTracking},
		{"Loan", ledger.AccountEditable{Name: "Car", Type: models.AccountTypeLoan}, models.AccountTypeLoan, models.AccountGroupBudget},
		{"Explicit group", ledger.AccountEditable{Name: "Savings", Group: models.AccountGroupTracking}, models.AccountTypeCash, models.AccountGroupTracking},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			account := suite.createTestAccount(tt.editable)
			suite.Assert().Equal(tt.typ, account.Type)
			suite.Assert().Equal(tt.group, account.Group)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountCreateInvalid() {
	_, err := suite.ledger.Accounts.Create(suite.ctx, ledger.AccountEditable{})
	suite.assertValidation(err, "name", ledger.ErrNameEmpty)

	_, err = suite.ledger.Accounts.Create(suite.ctx, ledger.AccountEditable{Name: "Savings", Type: "savings"})
	suite.assertValidation(err, "type", ledger.ErrAccountTypeInvalid)

	_, err = suite.ledger.Accounts.Create(suite.ctx, ledger.AccountEditable{Name: "Savings", Group: "offbudget"})
	suite.assertValidation(err, "group", ledger.ErrAccountGroupInvalid)

	_, err = suite.ledger.Accounts.Create(suite.ctx, ledger.AccountEditable{Name: "Savings", Balance: types.MaxAmount + 1})
	suite.assertValidation(err, "balance", types.ErrAmountRange)
}

func (suite *TestSuiteStandard) TestAccountDebtBalance() {
	tests := []struct {
		name     string
		typ      models.AccountType
		balance  string
		expected string
	}{
		{"Credit owed", models.AccountTypeCredit, "450.25", "-450.25"},
		{"Credit already negative", models.AccountTypeCredit, "-450.25", "-450.25"},
		{"Loan", models.AccountTypeLoan, "12000", "-12000"},
		{"Cash", models.AccountTypeCash, "450.25", "450.25"},
		{"Cash overdrawn", models.AccountTypeCash, "-20", "-20"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			account := suite.createTestAccount(ledger.AccountEditable{Type: tt.typ, Balance: types.MustParseAmount(tt.balance)})
			suite.Assert().Equal(types.MustParseAmount(tt.expected), account.Balance)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	account := suite.createTestAccount(ledger.AccountEditable{Name: "Checking", Note: "Main account"})

	updated, err := suite.ledger.Accounts.Update(suite.ctx, account.ID, ledger.AccountEditable{Balance: 5000}, []string{"Balance"})
	suite.Require().Nil(err)
	suite.Assert().Equal(types.Amount(5000), updated.Balance)
	suite.Assert().Equal("Checking", updated.Name)
	suite.Assert().Equal("Main account", updated.Note)

	_, err = suite.ledger.Accounts.Update(suite.ctx, account.ID, ledger.AccountEditable{Type: "savings"}, []string{"Type"})
	suite.assertValidation(err, "type", ledger.ErrAccountTypeInvalid)

	_, err = suite.ledger.Accounts.Update(suite.ctx, uuid.New(), ledger.AccountEditable{}, []string{})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAccountDeleteKeepsTransactions() {
	account := suite.createTestAccount(ledger.AccountEditable{})
	transaction := suite.createTestTransaction(ledger.TransactionEditable{AccountID: account.ID})

	deleted, err := suite.ledger.Accounts.Delete(suite.ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().True(deleted)

	_, err = suite.ledger.Transactions.Get(suite.ctx, transaction.ID)
	suite.Assert().Nil(err)

	deleted, err = suite.ledger.Accounts.Delete(suite.ctx, account.ID)
	suite.Assert().Nil(err)
	suite.Assert().False(deleted)
}

func (suite *TestSuiteStandard) TestAccountDeleteSelected() {
	first := suite.createTestAccount(ledger.AccountEditable{Name: "First"})
	second := suite.createTestAccount(ledger.AccountEditable{Name: "Second"})

	_, err := suite.ledger.Accounts.Select(suite.ctx, &second.ID)
	suite.Require().Nil(err)

	_, err = suite.ledger.Accounts.Delete(suite.ctx, second.ID)
	suite.Require().Nil(err)

	// The selection falls back to the first remaining account
	suite.Require().NotNil(suite.ledger.Accounts.Selected())
	suite.Assert().Equal(first.ID, *suite.ledger.Accounts.Selected())

	_, err = suite.ledger.Accounts.Delete(suite.ctx, first.ID)
	suite.Require().Nil(err)
	suite.Assert().Nil(suite.ledger.Accounts.Selected())
}

func (suite *TestSuiteStandard) TestAccountTotalBalance() {
	suite.createTestAccount(ledger.AccountEditable{Balance: types.MustParseAmount("1000")})
	suite.createTestAccount(ledger.AccountEditable{Type: models.AccountTypeCredit, Balance: types.MustParseAmount("250.50")})
	suite.createTestAccount(ledger.AccountEditable{Type: models.AccountTypeTracking, Balance: types.MustParseAmount("50000")})

	total, err := suite.ledger.Accounts.TotalBalance(suite.ctx, models.AccountGroupBudget)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseAmount("749.50"), total)

	total, err = suite.ledger.Accounts.TotalBalance(suite.ctx, models.AccountGroupTracking)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseAmount("50000"), total)

	_, err = suite.ledger.Accounts.TotalBalance(suite.ctx, "offbudget")
	suite.assertValidation(err, "group", ledger.ErrAccountGroupInvalid)
}

func (suite *TestSuiteStandard) TestAccountTotalBalanceEmpty() {
	total, err := suite.ledger.Accounts.TotalBalance(suite.ctx, models.AccountGroupBudget)
	suite.Require().Nil(err)
	suite.Assert().Zero(total)
}
