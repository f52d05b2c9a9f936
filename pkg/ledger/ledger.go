// Package ledger implements the stores for budgets, accounts, categories
// and transactions and keeps the running totals of categories consistent
// with the transactions posted against them.
package ledger

import (
	"errors"
	"sync"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger bundles the stores that share one database.
type Ledger struct {
	db *gorm.DB

	Budgets      *BudgetStore
	Accounts     *AccountStore
	Categories   *CategoryStore
	Transactions *TransactionStore
}

// New creates a Ledger for the database.
func New(db *gorm.DB) *Ledger {
	categories := &CategoryStore{db: db}

	return &Ledger{
		db:           db,
		Budgets:      &BudgetStore{db: db, categories: categories},
		Accounts:     &AccountStore{db: db},
		Categories:   categories,
		Transactions: &TransactionStore{db: db, categories: categories},
	}
}

// DB returns the database of the ledger.
func (l *Ledger) DB() *gorm.DB {
	return l.db
}

// selection is the currently selected resource of a store.
type selection struct {
	mu sync.Mutex
	id *uuid.UUID
}

func (s *selection) get() *uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id == nil {
		return nil
	}
	id := *s.id
	return &id
}

func (s *selection) set(id *uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil {
		s.id = nil
		return
	}
	v := *id
	s.id = &v
}

// clearIf clears the selection if it is one of the ids.
func (s *selection) clearIf(ids ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id == nil {
		return
	}

	for _, id := range ids {
		if *s.id == id {
			s.id = nil
			return
		}
	}
}

// isNotFound reports if err signals that a resource does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, models.ErrResourceNotFound)
}
