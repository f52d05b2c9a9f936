package ledger_test

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
)

// TestExpenseLifecycle follows an expense from creation over an amount
// change to its deletion.
func (suite *TestSuiteStandard) TestExpenseLifecycle() {
	groceries := suite.createTestCategory(ledger.CategoryEditable{
		Name:         "Groceries",
		TargetAmount: types.MustParseAmount("400"),
	})
	suite.Assert().Zero(groceries.Assigned)
	suite.Assert().Zero(groceries.Activity)
	suite.Assert().Zero(groceries.Available)

	transaction := suite.createTestTransaction(ledger.TransactionEditable{
		Amount:     types.MustParseAmount("-125.65"),
		CategoryID: &groceries.ID,
		Type:       models.TransactionTypeExpense,
	})

	groceries = suite.reload(groceries.ID)
	suite.Assert().Equal(types.MustParseAmount("-125.65"), groceries.Activity)
	suite.Assert().Equal(types.MustParseAmount("125.65"), groceries.Available)

	_, err := suite.ledger.Transactions.Update(suite.ctx, transaction.ID, ledger.TransactionEditable{
		Amount: types.MustParseAmount("-200"),
	}, []string{"Amount"})
	suite.Require().Nil(err)

	groceries = suite.reload(groceries.ID)
	suite.Assert().Equal(types.MustParseAmount("-200"), groceries.Activity)
	suite.Assert().Equal(types.MustParseAmount("200"), groceries.Available)

	deleted, err := suite.ledger.Transactions.Delete(suite.ctx, transaction.ID)
	suite.Require().Nil(err)
	suite.Assert().True(deleted)

	groceries = suite.reload(groceries.ID)
	suite.Assert().Zero(groceries.Activity)
	suite.Assert().Zero(groceries.Available)

	// The target amount is never touched
	suite.Assert().Equal(types.MustParseAmount("400"), groceries.TargetAmount)
}

func (suite *TestSuiteStandard) TestMoveTransactionToOtherCategory() {
	group := suite.createTestGroup(ledger.CategoryGroupEditable{})
	a := suite.createTestCategory(ledger.CategoryEditable{Name: "A", GroupID: group.ID})
	b := suite.createTestCategory(ledger.CategoryEditable{Name: "B", GroupID: group.ID})

	transaction := suite.createTestTransaction(ledger.TransactionEditable{
		Amount:     types.MustParseAmount("-50"),
		CategoryID: &a.ID,
	})

	_, err := suite.ledger.Transactions.Update(suite.ctx, transaction.ID, ledger.TransactionEditable{
		CategoryID: &b.ID,
	}, []string{"CategoryID"})
	suite.Require().Nil(err)

	a = suite.reload(a.ID)
	b = suite.reload(b.ID)

	suite.Assert().Zero(a.Activity)
	suite.Assert().Zero(a.Available)
	suite.Assert().Equal(types.MustParseAmount("-50"), b.Activity)
	suite.Assert().Equal(types.MustParseAmount("50"), b.Available)
}

func (suite *TestSuiteStandard) TestCreditAccountBalanceStoredNegative() {
	account := suite.createTestAccount(ledger.AccountEditable{
		Name:    "Chase Sapphire",
		Type:    models.AccountTypeCredit,
		Balance: types.MustParseAmount("450.25"),
	})

	suite.Assert().Equal(types.MustParseAmount("-450.25"), account.Balance)

	stored, err := suite.ledger.Accounts.Get(suite.ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseAmount("-450.25"), stored.Balance)
}

func (suite *TestSuiteStandard) TestDeleteTransactionOfDeletedCategory() {
	category := suite.createTestCategory(ledger.CategoryEditable{})
	transaction := suite.createTestTransaction(ledger.TransactionEditable{
		Amount:     types.MustParseAmount("-30"),
		CategoryID: &category.ID,
	})

	deleted, err := suite.ledger.Categories.DeleteCategory(suite.ctx, category.ID)
	suite.Require().Nil(err)
	suite.Require().True(deleted)

	// The transaction still references the category
	stored, err := suite.ledger.Transactions.Get(suite.ctx, transaction.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(category.ID, *stored.CategoryID)

	deleted, err = suite.ledger.Transactions.Delete(suite.ctx, transaction.ID)
	suite.Assert().Nil(err)
	suite.Assert().True(deleted)

	_, err = suite.ledger.Categories.GetCategory(suite.ctx, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

// TestUpdateAmountKeepsDeletedCategory verifies that a transaction can still
// be edited after its category was deleted.
func (suite *TestSuiteStandard) TestUpdateAmountKeepsDeletedCategory() {
	category := suite.createTestCategory(ledger.CategoryEditable{})
	transaction := suite.createTestTransaction(ledger.TransactionEditable{
		Amount:     types.MustParseAmount("-30"),
		CategoryID: &category.ID,
	})

	_, err := suite.ledger.Categories.DeleteCategory(suite.ctx, category.ID)
	suite.Require().Nil(err)

	updated, err := suite.ledger.Transactions.Update(suite.ctx, transaction.ID, ledger.TransactionEditable{
		Amount:     types.MustParseAmount("-45"),
		CategoryID: &category.ID,
	}, []string{"Amount", "CategoryID"})
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseAmount("-45"), updated.Amount)
	suite.Assert().Equal(category.ID, *updated.CategoryID)
}

// TestUpdateTransactionOfDeletedCategory verifies that moving a transaction
// away from a deleted category only posts to the new category.
func (suite *TestSuiteStandard) TestUpdateTransactionOfDeletedCategory() {
	group := suite.createTestGroup(ledger.CategoryGroupEditable{})
	deletedCategory := suite.createTestCategory(ledger.CategoryEditable{GroupID: group.ID})
	other := suite.createTestCategory(ledger.CategoryEditable{GroupID: group.ID})

	transaction := suite.createTestTransaction(ledger.TransactionEditable{
		Amount:     types.MustParseAmount("-30"),
		CategoryID: &deletedCategory.ID,
	})

	_, err := suite.ledger.Categories.DeleteCategory(suite.ctx, deletedCategory.ID)
	suite.Require().Nil(err)

	_, err = suite.ledger.Transactions.Update(suite.ctx, transaction.ID, ledger.TransactionEditable{
		CategoryID: &other.ID,
	}, []string{"CategoryID"})
	suite.Require().Nil(err)

	other = suite.reload(other.ID)
	suite.Assert().Equal(types.MustParseAmount("-30"), other.Activity)
	suite.Assert().Equal(types.MustParseAmount("30"), other.Available)
}

// TestActivityIsSumOfTransactions verifies that after any sequence of
// changes, the activity of a category equals the sum of the transactions
// posted against it.
func (suite *TestSuiteStandard) TestActivityIsSumOfTransactions() {
	group := suite.createTestGroup(ledger.CategoryGroupEditable{})
	a := suite.createTestCategory(ledger.CategoryEditable{Name: "A", GroupID: group.ID})
	b := suite.createTestCategory(ledger.CategoryEditable{Name: "B", GroupID: group.ID})
	account := suite.createTestAccount(ledger.AccountEditable{})

	t1 := suite.createTestTransaction(ledger.TransactionEditable{AccountID: account.ID, Amount: -1000, CategoryID: &a.ID})
	t2 := suite.createTestTransaction(ledger.TransactionEditable{AccountID: account.ID, Amount: -2500, CategoryID: &a.ID})
	suite.createTestTransaction(ledger.TransactionEditable{AccountID: account.ID, Amount: 4000, CategoryID: &b.ID, Type: models.TransactionTypeIncome})
	suite.createTestTransaction(ledger.TransactionEditable{AccountID: account.ID, Amount: -700, CategoryID: &b.ID, Type: models.TransactionTypeTransfer})

	_, err := suite.ledger.Transactions.Update(suite.ctx, t1.ID, ledger.TransactionEditable{CategoryID: &b.ID, Amount: -1200}, []string{"CategoryID", "Amount"})
	suite.Require().Nil(err)

	_, err = suite.ledger.Transactions.Update(suite.ctx, t2.ID, ledger.TransactionEditable{Type: models.TransactionTypeIncome}, []string{"Type"})
	suite.Require().Nil(err)

	for _, c := range []models.Category{a, b} {
		category := suite.reload(c.ID)

		transactions, _, err := suite.ledger.Transactions.List(suite.ctx, ledger.TransactionFilter{CategoryID: &category.ID, Limit: -1})
		suite.Require().Nil(err)

		var sum types.Amount
		for _, t := range transactions {
			if t.Type != models.TransactionTypeTransfer {
				sum += t.Amount
			}
		}

		suite.Assert().Equal(sum, category.Activity, "Activity of %s", category.Name)
		suite.Assert().Equal(-sum, category.Available-category.Assigned, "Available of %s", category.Name)
	}
}
