package ledger_test

import (
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	budget, err := suite.ledger.Budgets.Create(suite.ctx, ledger.BudgetEditable{Name: " Household ", Currency: "EUR"})
	suite.Require().Nil(err)

	suite.Assert().Equal("Household", budget.Name)
	suite.Assert().Equal("EUR", budget.Currency)

	// A new budget is selected
	suite.Require().NotNil(suite.ledger.Budgets.Selected())
	suite.Assert().Equal(budget.ID, *suite.ledger.Budgets.Selected())
}

func (suite *TestSuiteStandard) TestBudgetCreateDefaultCurrency() {
	budget := suite.createTestBudget(ledger.BudgetEditable{})
	suite.Assert().Equal(ledger.DefaultCurrency, budget.Currency)
}

func (suite *TestSuiteStandard) TestBudgetCreateInvalid() {
	_, err := suite.ledger.Budgets.Create(suite.ctx, ledger.BudgetEditable{Name: "  "})
	suite.assertValidation(err, "name", ledger.ErrNameEmpty)

	_, err = suite.ledger.Budgets.Create(suite.ctx, ledger.BudgetEditable{Name: "Euros", Currency: "EURO"})
	suite.assertValidation(err, "currency", ledger.ErrCurrencyInvalid)

	budgets, err := suite.ledger.Budgets.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0)
	suite.Assert().Nil(suite.ledger.Budgets.Selected())
}

func (suite *TestSuiteStandard) TestBudgetList() {
	first := suite.createTestBudget(ledger.BudgetEditable{Name: "First"})
	second := suite.createTestBudget(ledger.BudgetEditable{Name: "Second"})

	budgets, err := suite.ledger.Budgets.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)
	suite.Assert().Equal(first.ID, budgets[0].ID)
	suite.Assert().Equal(second.ID, budgets[1].ID)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	budget := suite.createTestBudget(ledger.BudgetEditable{Name: "Before", Note: "Keep me"})

	updated, err := suite.ledger.Budgets.Update(suite.ctx, budget.ID, ledger.BudgetEditable{Name: "After"}, []string{"Name"})
	suite.Require().Nil(err)
	suite.Assert().Equal("After", updated.Name)
	suite.Assert().Equal("Keep me", updated.Note)

	_, err = suite.ledger.Budgets.Update(suite.ctx, budget.ID, ledger.BudgetEditable{}, []string{"Name"})
	suite.assertValidation(err, "name", ledger.ErrNameEmpty)

	_, err = suite.ledger.Budgets.Update(suite.ctx, uuid.New(), ledger.BudgetEditable{Name: "Nope"}, []string{"Name"})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetDeleteCascades() {
	budget := suite.createTestBudget(ledger.BudgetEditable{})
	group := suite.createTestGroup(ledger.CategoryGroupEditable{BudgetID: budget.ID})
	category := suite.createTestCategory(ledger.CategoryEditable{GroupID: group.ID})

	// Other budgets are not affected
	otherCategory := suite.createTestCategory(ledger.CategoryEditable{})

	ok, err := suite.ledger.Categories.Select(suite.ctx, &category.ID)
	suite.Require().Nil(err)
	suite.Require().True(ok)

	_, err = suite.ledger.Budgets.Select(suite.ctx, &budget.ID)
	suite.Require().Nil(err)

	deleted, err := suite.ledger.Budgets.Delete(suite.ctx, budget.ID)
	suite.Require().Nil(err)
	suite.Assert().True(deleted)

	_, err = suite.ledger.Categories.GetGroup(suite.ctx, group.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.ledger.Categories.GetCategory(suite.ctx, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.ledger.Categories.GetCategory(suite.ctx, otherCategory.ID)
	suite.Assert().Nil(err)

	suite.Assert().Nil(suite.ledger.Budgets.Selected())
	suite.Assert().Nil(suite.ledger.Categories.Selected())
}

func (suite *TestSuiteStandard) TestBudgetDeleteNonExistent() {
	deleted, err := suite.ledger.Budgets.Delete(suite.ctx, uuid.New())
	suite.Assert().Nil(err)
	suite.Assert().False(deleted)
}
