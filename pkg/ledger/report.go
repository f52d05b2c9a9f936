package ledger

import (
	"bytes"
	"context"
	"sort"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
)

// CategoryActivity is the sum of the transactions posted against a category.
type CategoryActivity struct {
	CategoryID uuid.UUID    `json:"categoryId" example:"f8b93ce5-309d-4ef1-b7c5-cac1b0e1b0a5"`
	Activity   types.Amount `json:"activity" example:"-87.45"`
}

// MonthReport summarizes the transactions of a month.
type MonthReport struct {
	Month      types.Month        `json:"month" example:"2024-03"`
	AccountID  *uuid.UUID         `json:"accountId,omitempty" example:"7a8d1c71-5c58-4b19-8e4c-d4d0d4a3e8e0"` // Only set when the report is limited to one account
	Income     types.Amount       `json:"income" example:"2500"`                                             // Sum of all income
	Expenses   types.Amount       `json:"expenses" example:"1340.12"`                                        // Sum of all expenses, as a positive amount
	Net        types.Amount       `json:"net" example:"1159.88"`                                             // Sum of all transactions, including transfers
	Categories []CategoryActivity `json:"categories"`                                                        // Activity per category, transfers and transactions without category are not included
}

// RegisterEntry is a transaction with the balance of the account after it.
type RegisterEntry struct {
	Transaction models.Transaction `json:"transaction"`
	Balance     types.Amount       `json:"balance" example:"312.07"`
}

// Summarize builds the report for a month from transactions.
//
// Transactions dated outside of the month are ignored.
func Summarize(month types.Month, transactions []models.Transaction) MonthReport {
	report := MonthReport{
		Month:      month,
		Categories: []CategoryActivity{},
	}

	activity := make(map[uuid.UUID]types.Amount)
	for _, t := range transactions {
		if !month.Contains(t.Date) {
			continue
		}

		report.Net += t.Amount

		switch t.Type {
		case models.TransactionTypeIncome:
			report.Income += t.Amount.Abs()
		case models.TransactionTypeExpense:
			report.Expenses += t.Amount.Abs()
		}

		if c, ok := linkedCategory(t); ok {
			activity[c] += t.Amount
		}
	}

	for id, a := range activity {
		report.Categories = append(report.Categories, CategoryActivity{CategoryID: id, Activity: a})
	}

	sort.Slice(report.Categories, func(i, j int) bool {
		return bytes.Compare(report.Categories[i].CategoryID[:], report.Categories[j].CategoryID[:]) < 0
	})

	return report
}

// MonthReport returns the report for a month. If accountID is set,
// only transactions of that account are included.
func (s *TransactionStore) MonthReport(ctx context.Context, month types.Month, accountID *uuid.UUID) (MonthReport, error) {
	q := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", month.FirstDay(), month.LastDay())

	if accountID != nil {
		q = q.Where("account_id = ?", *accountID)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return MonthReport{}, err
	}

	report := Summarize(month, transactions)
	report.AccountID = accountID
	return report, nil
}

// Register returns the transactions of an account, oldest first, each
// with the running balance of all transactions up to and including it.
//
// The running balance starts at zero.
func (s *TransactionStore) Register(ctx context.Context, accountID uuid.UUID) ([]RegisterEntry, error) {
	var transactions []models.Transaction
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	// Transactions on the same day are ordered by their ID so that the
	// register is stable
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})

	entries := make([]RegisterEntry, 0, len(transactions))

	var balance types.Amount
	for _, t := range transactions {
		balance += t.Amount
		entries = append(entries, RegisterEntry{Transaction: t, Balance: balance})
	}

	return entries, nil
}
