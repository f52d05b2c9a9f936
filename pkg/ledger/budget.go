package ledger

import (
	"context"
	"strings"
	"sync"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// DefaultCurrency is used for budgets without a currency.
const DefaultCurrency = "USD"

// BudgetEditable contains the fields of a budget that can be set.
type BudgetEditable struct {
	Name     string
	Note     string
	Currency string
}

// BudgetStore owns the budgets and the selection of the current budget.
type BudgetStore struct {
	db         *gorm.DB
	categories *CategoryStore

	mu       sync.Mutex
	selected selection
}

func (e BudgetEditable) validate() (BudgetEditable, error) {
	if strings.TrimSpace(e.Name) == "" {
		return e, invalid("name", ErrNameEmpty)
	}

	code := strings.TrimSpace(e.Currency)
	if code == "" {
		e.Currency = DefaultCurrency
		return e, nil
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return e, invalid("currency", ErrCurrencyInvalid)
	}
	e.Currency = unit.String()

	return e, nil
}

// List returns all budgets in insertion order.
func (s *BudgetStore) List(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.WithContext(ctx).Order("created_at ASC").Find(&budgets).Error
	return budgets, err
}

// Get returns a budget.
func (s *BudgetStore) Get(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).First(&budget, "id = ?", id).Error
	return budget, err
}

// Create creates a budget and selects it.
func (s *BudgetStore) Create(ctx context.Context, editable BudgetEditable) (models.Budget, error) {
	editable, err := editable.validate()
	if err != nil {
		return models.Budget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget := models.Budget{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}

	err = s.db.WithContext(ctx).Create(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	s.selected.set(&budget.ID)
	return budget, nil
}

// Update updates the fields of the budget that are named in fields.
func (s *BudgetStore) Update(ctx context.Context, id uuid.UUID, editable BudgetEditable, fields []string) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.db.WithContext(ctx)

	var budget models.Budget
	err := db.First(&budget, "id = ?", id).Error
	if err != nil {
		return models.Budget{}, err
	}

	merged := BudgetEditable{Name: budget.Name, Note: budget.Note, Currency: budget.Currency}
	if slices.Contains(fields, "Name") {
		merged.Name = editable.Name
	}
	if slices.Contains(fields, "Note") {
		merged.Note = editable.Note
	}
	if slices.Contains(fields, "Currency") {
		merged.Currency = editable.Currency
	}

	merged, err = merged.validate()
	if err != nil {
		return models.Budget{}, err
	}

	budget.Name = merged.Name
	budget.Note = merged.Note
	budget.Currency = merged.Currency

	err = db.Model(&budget).Select("Name", "Note", "Currency").Updates(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// Delete deletes a budget with its category groups and categories.
//
// If the selected budget is deleted, the selection is cleared.
func (s *BudgetStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted bool
	var groupIDs, categoryIDs []uuid.UUID

	// Category mutations always hold the category store lock
	err := s.categories.lock(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var budget models.Budget
			err := tx.First(&budget, "id = ?", id).Error
			if isNotFound(err) {
				return nil
			} else if err != nil {
				return err
			}

			err = tx.Model(&models.CategoryGroup{}).Where("budget_id = ?", id).Pluck("id", &groupIDs).Error
			if err != nil {
				return err
			}

			if len(groupIDs) > 0 {
				err = tx.Model(&models.Category{}).Where("group_id IN ?", groupIDs).Pluck("id", &categoryIDs).Error
				if err != nil {
					return err
				}

				err = tx.Where("group_id IN ?", groupIDs).Delete(&models.Category{}).Error
				if err != nil {
					return err
				}

				err = tx.Where("budget_id = ?", id).Delete(&models.CategoryGroup{}).Error
				if err != nil {
					return err
				}
			}

			err = tx.Delete(&budget).Error
			if err != nil {
				return err
			}

			deleted = true
			return nil
		})
	})
	if err != nil || !deleted {
		return false, err
	}

	s.selected.clearIf(id)
	s.categories.clearSelection(append(groupIDs, categoryIDs...)...)

	return true, nil
}

// Select selects a budget. A nil id clears the selection.
//
// If no budget with the id exists, the selection is unchanged and
// false is returned.
func (s *BudgetStore) Select(ctx context.Context, id *uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil {
		s.selected.set(nil)
		return true, nil
	}

	_, err := s.Get(ctx, *id)
	if isNotFound(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	s.selected.set(id)
	return true, nil
}

// Selected returns the ID of the selected budget, if any.
func (s *BudgetStore) Selected() *uuid.UUID {
	return s.selected.get()
}
