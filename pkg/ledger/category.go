package ledger

import (
	"context"
	"strings"
	"sync"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CategoryGroupEditable contains the fields of a category group that can be set.
type CategoryGroupEditable struct {
	Name     string
	BudgetID uuid.UUID
	Order    *int // Defaults to the number of groups in the budget
}

// CategoryEditable contains the fields of a category that users can edit.
//
// It deliberately has no way to express assigned, activity or available.
// Those are only changed by reconciliation.
type CategoryEditable struct {
	Name         string
	GroupID      uuid.UUID
	TargetAmount types.Amount
	Note         string
	Order        *int // Defaults to the number of categories in the group
}

// CategorySeed contains the initial values for the running totals
// of a new category.
type CategorySeed struct {
	Assigned  types.Amount
	Activity  types.Amount
	Available types.Amount
}

// CategoryStore owns category groups and categories.
//
// It serializes all changes, including the reconciliation deltas
// applied on behalf of the TransactionStore.
type CategoryStore struct {
	db *gorm.DB

	mu       sync.Mutex
	selected selection
}

// ListGroups returns the category groups of a budget.
func (s *CategoryStore) ListGroups(ctx context.Context, budgetID uuid.UUID) ([]models.CategoryGroup, error) {
	var groups []models.CategoryGroup
	err := s.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&groups).Error
	return groups, err
}

// ListCategories returns the categories in all groups of a budget.
func (s *CategoryStore) ListCategories(ctx context.Context, budgetID uuid.UUID) ([]models.Category, error) {
	db := s.db.WithContext(ctx)

	var categories []models.Category
	err := db.
		Where("group_id IN (?)", db.Model(&models.CategoryGroup{}).Select("id").Where("budget_id = ?", budgetID)).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&categories).Error
	return categories, err
}

// ListGroupCategories returns the categories of a group.
func (s *CategoryStore) ListGroupCategories(ctx context.Context, groupID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&categories).Error
	return categories, err
}

// GetGroup returns a category group.
func (s *CategoryStore) GetGroup(ctx context.Context, id uuid.UUID) (models.CategoryGroup, error) {
	var group models.CategoryGroup
	err := s.db.WithContext(ctx).First(&group, "id = ?", id).Error
	return group, err
}

// GetCategory returns a category.
func (s *CategoryStore) GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error
	return category, err
}

// CreateGroup creates a category group in a budget.
func (s *CategoryStore) CreateGroup(ctx context.Context, editable CategoryGroupEditable) (models.CategoryGroup, error) {
	if strings.TrimSpace(editable.Name) == "" {
		return models.CategoryGroup{}, invalid("name", ErrNameEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	group := models.CategoryGroup{
		Name:     editable.Name,
		BudgetID: editable.BudgetID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&models.Budget{}, "id = ?", editable.BudgetID).Error
		if isNotFound(err) {
			return invalid("budgetId", ErrBudgetMissing)
		} else if err != nil {
			return err
		}

		if editable.Order != nil {
			group.Order = *editable.Order
		} else {
			var siblings int64
			err = tx.Model(&models.CategoryGroup{}).Where("budget_id = ?", editable.BudgetID).Count(&siblings).Error
			if err != nil {
				return err
			}
			group.Order = int(siblings)
		}

		return tx.Create(&group).Error
	})
	if err != nil {
		return models.CategoryGroup{}, err
	}

	return group, nil
}

// UpdateGroup updates the fields of the group that are named in fields.
func (s *CategoryStore) UpdateGroup(ctx context.Context, id uuid.UUID, editable CategoryGroupEditable, fields []string) (models.CategoryGroup, error) {
	if slices.Contains(fields, "Name") && strings.TrimSpace(editable.Name) == "" {
		return models.CategoryGroup{}, invalid("name", ErrNameEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var group models.CategoryGroup
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&group, "id = ?", id).Error
		if err != nil {
			return err
		}

		var columns []string
		if slices.Contains(fields, "Name") {
			group.Name = editable.Name
			columns = append(columns, "Name")
		}

		if slices.Contains(fields, "Order") && editable.Order != nil {
			group.Order = *editable.Order
			columns = append(columns, "Order")
		}

		if slices.Contains(fields, "BudgetID") && editable.BudgetID != group.BudgetID {
			err := tx.First(&models.Budget{}, "id = ?", editable.BudgetID).Error
			if isNotFound(err) {
				return invalid("budgetId", ErrBudgetMissing)
			} else if err != nil {
				return err
			}

			group.BudgetID = editable.BudgetID
			columns = append(columns, "BudgetID")
		}

		if len(columns) == 0 {
			return nil
		}

		return tx.Model(&group).Select(columns).Updates(&group).Error
	})
	if err != nil {
		return models.CategoryGroup{}, err
	}

	return group, nil
}

// CreateCategory creates a category in a group.
//
// Assigned, activity and available are zero unless a seed is passed.
func (s *CategoryStore) CreateCategory(ctx context.Context, editable CategoryEditable, seed *CategorySeed) (models.Category, error) {
	if strings.TrimSpace(editable.Name) == "" {
		return models.Category{}, invalid("name", ErrNameEmpty)
	}

	if editable.TargetAmount < 0 {
		return models.Category{}, invalid("targetAmount", ErrTargetAmountNegative)
	}

	if !editable.TargetAmount.Valid() {
		return models.Category{}, invalid("targetAmount", types.ErrAmountRange)
	}

	if seed != nil {
		seeded := []struct {
			field  string
			amount types.Amount
		}{
			{"assigned", seed.Assigned},
			{"activity", seed.Activity},
			{"available", seed.Available},
		}

		for _, s := range seeded {
			if !s.amount.Valid() {
				return models.Category{}, invalid(s.field, types.ErrAmountRange)
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category := models.Category{
		Name:         editable.Name,
		GroupID:      editable.GroupID,
		TargetAmount: editable.TargetAmount,
		Note:         editable.Note,
	}

	if seed != nil {
		category.Assigned = seed.Assigned
		category.Activity = seed.Activity
		category.Available = seed.Available
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&models.CategoryGroup{}, "id = ?", editable.GroupID).Error
		if isNotFound(err) {
			return invalid("groupId", ErrCategoryGroupMissing)
		} else if err != nil {
			return err
		}

		if editable.Order != nil {
			category.Order = *editable.Order
		} else {
			var siblings int64
			err = tx.Model(&models.Category{}).Where("group_id = ?", editable.GroupID).Count(&siblings).Error
			if err != nil {
				return err
			}
			category.Order = int(siblings)
		}

		return tx.Create(&category).Error
	})
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// UpdateCategory updates the fields of the category that are named in fields.
//
// Only name, note, target amount, order and group can be changed.
// The running totals are never written by this method.
func (s *CategoryStore) UpdateCategory(ctx context.Context, id uuid.UUID, editable CategoryEditable, fields []string) (models.Category, error) {
	if slices.Contains(fields, "Name") && strings.TrimSpace(editable.Name) == "" {
		return models.Category{}, invalid("name", ErrNameEmpty)
	}

	if slices.Contains(fields, "TargetAmount") && editable.TargetAmount < 0 {
		return models.Category{}, invalid("targetAmount", ErrTargetAmountNegative)
	}

	if slices.Contains(fields, "TargetAmount") && !editable.TargetAmount.Valid() {
		return models.Category{}, invalid("targetAmount", types.ErrAmountRange)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var category models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&category, "id = ?", id).Error
		if err != nil {
			return err
		}

		var columns []string
		if slices.Contains(fields, "Name") {
			category.Name = editable.Name
			columns = append(columns, "Name")
		}

		if slices.Contains(fields, "Note") {
			category.Note = editable.Note
			columns = append(columns, "Note")
		}

		if slices.Contains(fields, "TargetAmount") {
			category.TargetAmount = editable.TargetAmount
			columns = append(columns, "TargetAmount")
		}

		if slices.Contains(fields, "Order") && editable.Order != nil {
			category.Order = *editable.Order
			columns = append(columns, "Order")
		}

		if slices.Contains(fields, "GroupID") && editable.GroupID != category.GroupID {
			err := tx.First(&models.CategoryGroup{}, "id = ?", editable.GroupID).Error
			if isNotFound(err) {
				return invalid("groupId", ErrCategoryGroupMissing)
			} else if err != nil {
				return err
			}

			category.GroupID = editable.GroupID
			columns = append(columns, "GroupID")
		}

		if len(columns) == 0 {
			return nil
		}

		return tx.Model(&category).Select(columns).Updates(&category).Error
	})
	if err != nil {
		return models.Category{}, err
	}

	// Read the category again so that running totals changed while
	// the update was in progress are returned
	return s.GetCategory(ctx, id)
}

// DeleteGroup deletes a category group and exactly the categories in it.
//
// If the selected category belonged to the group, the selection is cleared.
func (s *CategoryStore) DeleteGroup(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted bool
	var categoryIDs []uuid.UUID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group models.CategoryGroup
		err := tx.First(&group, "id = ?", id).Error
		if isNotFound(err) {
			return nil
		} else if err != nil {
			return err
		}

		err = tx.Model(&models.Category{}).Where("group_id = ?", id).Pluck("id", &categoryIDs).Error
		if err != nil {
			return err
		}

		err = tx.Where("group_id = ?", id).Delete(&models.Category{}).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&group).Error
		if err != nil {
			return err
		}

		deleted = true
		return nil
	})
	if err != nil || !deleted {
		return false, err
	}

	s.selected.clearIf(append(categoryIDs, id)...)
	return true, nil
}

// DeleteCategory deletes a category.
//
// Transactions referencing the category are not changed.
func (s *CategoryStore) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	s.selected.clearIf(id)
	return true, nil
}

// Select selects a category. A nil id clears the selection.
//
// If no category with the id exists, the selection is unchanged and
// false is returned.
func (s *CategoryStore) Select(ctx context.Context, id *uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil {
		s.selected.set(nil)
		return true, nil
	}

	_, err := s.GetCategory(ctx, *id)
	if isNotFound(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	s.selected.set(id)
	return true, nil
}

// Selected returns the ID of the selected category, if any.
func (s *CategoryStore) Selected() *uuid.UUID {
	return s.selected.get()
}

// clearSelection clears the selection if it is one of the ids.
func (s *CategoryStore) clearSelection(ids ...uuid.UUID) {
	s.selected.clearIf(ids...)
}

// lock runs f while holding the lock of the store.
func (s *CategoryStore) lock(f func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return f()
}

// apply applies reconciliation deltas as atomic increments. It must be
// called with the lock of the store held.
//
// Deltas for categories that do not exist are skipped.
func (s *CategoryStore) apply(tx *gorm.DB, deltas []Delta) error {
	for _, d := range deltas {
		result := tx.Model(&models.Category{}).
			Where("id = ?", d.CategoryID).
			UpdateColumns(map[string]any{
				"activity":   gorm.Expr("activity + ?", int64(d.Activity)),
				"available":  gorm.Expr("available + ?", int64(d.Available)),
				"updated_at": tx.NowFunc(),
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			reconciliations.WithLabelValues(outcomeDangling).Inc()
			log.Warn().Err(ErrDanglingReference).Str("category", d.CategoryID.String()).Msg("Reconciliation")
			continue
		}

		reconciliations.WithLabelValues(outcomeApplied).Inc()
	}

	return nil
}

// Totals are the sums of the running totals of several categories.
type Totals struct {
	Assigned  types.Amount `json:"assigned" example:"1200"`
	Activity  types.Amount `json:"activity" example:"-834.12"`
	Available types.Amount `json:"available" example:"365.88"`
}

// GroupTotals returns the totals of the categories in a group.
func (s *CategoryStore) GroupTotals(ctx context.Context, groupID uuid.UUID) (Totals, error) {
	db := s.db.WithContext(ctx)

	err := db.First(&models.CategoryGroup{}, "id = ?", groupID).Error
	if err != nil {
		return Totals{}, err
	}

	return sumTotals(db.Model(&models.Category{}).Where("group_id = ?", groupID))
}

// BudgetTotals returns the totals of all categories of a budget.
func (s *CategoryStore) BudgetTotals(ctx context.Context, budgetID uuid.UUID) (Totals, error) {
	db := s.db.WithContext(ctx)

	err := db.First(&models.Budget{}, "id = ?", budgetID).Error
	if err != nil {
		return Totals{}, err
	}

	groups := db.Model(&models.CategoryGroup{}).Select("id").Where("budget_id = ?", budgetID)
	return sumTotals(db.Model(&models.Category{}).Where("group_id IN (?)", groups))
}

// sumTotals sums the running totals of the categories selected by q.
func sumTotals(q *gorm.DB) (Totals, error) {
	var sums struct {
		Assigned  int64
		Activity  int64
		Available int64
	}

	err := q.Select("COALESCE(SUM(assigned), 0) AS assigned, COALESCE(SUM(activity), 0) AS activity, COALESCE(SUM(available), 0) AS available").
		Scan(&sums).Error
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		Assigned:  types.Amount(sums.Assigned),
		Activity:  types.Amount(sums.Activity),
		Available: types.Amount(sums.Available),
	}, nil
}
