package ledger

import (
	"context"
	"strings"
	"sync"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// AccountEditable contains the fields of an account that can be set.
type AccountEditable struct {
	Name    string
	Type    models.AccountType
	Balance types.Amount
	Group   models.AccountGroup
	Note    string
}

// AccountStore owns the accounts and the selection of the current account.
type AccountStore struct {
	db *gorm.DB

	mu       sync.Mutex
	selected selection
}

func (e AccountEditable) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return invalid("name", ErrNameEmpty)
	}

	if !e.Type.Valid() {
		return invalid("type", ErrAccountTypeInvalid)
	}

	if !e.Group.Valid() {
		return invalid("group", ErrAccountGroupInvalid)
	}

	if !e.Balance.Valid() {
		return invalid("balance", types.ErrAmountRange)
	}

	return nil
}

// List returns all accounts in insertion order.
func (s *AccountStore) List(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := s.db.WithContext(ctx).Order("created_at ASC").Find(&accounts).Error
	return accounts, err
}

// Get returns an account.
func (s *AccountStore) Get(ctx context.Context, id uuid.UUID) (models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error
	return account, err
}

// Create creates an account.
//
// The type defaults to cash. The group defaults to tracking for tracking
// accounts and to budget for all others.
//
// For credit and loan accounts, the balance is the amount owed. A positive
// balance is therefore stored negated.
func (s *AccountStore) Create(ctx context.Context, editable AccountEditable) (models.Account, error) {
	if editable.Type == "" {
		editable.Type = models.AccountTypeCash
	}

	if editable.Group == "" {
		editable.Group = models.AccountGroupBudget
		if editable.Type == models.AccountTypeTracking {
			editable.Group = models.AccountGroupTracking
		}
	}

	err := editable.validate()
	if err != nil {
		return models.Account{}, err
	}

	if editable.Type.IsDebt() && editable.Balance > 0 {
		editable.Balance = -editable.Balance
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := models.Account{
		Name:    editable.Name,
		Type:    editable.Type,
		Group:   editable.Group,
		Balance: editable.Balance,
		Note:    editable.Note,
	}

	err = s.db.WithContext(ctx).Create(&account).Error
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// Update updates the fields of the account that are named in fields.
func (s *AccountStore) Update(ctx context.Context, id uuid.UUID, editable AccountEditable, fields []string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.db.WithContext(ctx)

	var account models.Account
	err := db.First(&account, "id = ?", id).Error
	if err != nil {
		return models.Account{}, err
	}

	merged := AccountEditable{
		Name:    account.Name,
		Type:    account.Type,
		Balance: account.Balance,
		Group:   account.Group,
		Note:    account.Note,
	}

	var columns []string
	if slices.Contains(fields, "Name") {
		merged.Name = editable.Name
		columns = append(columns, "Name")
	}
	if slices.Contains(fields, "Type") {
		merged.Type = editable.Type
		columns = append(columns, "Type")
	}
	if slices.Contains(fields, "Balance") {
		merged.Balance = editable.Balance
		columns = append(columns, "Balance")
	}
	if slices.Contains(fields, "Group") {
		merged.Group = editable.Group
		columns = append(columns, "Group")
	}
	if slices.Contains(fields, "Note") {
		merged.Note = editable.Note
		columns = append(columns, "Note")
	}

	err = merged.validate()
	if err != nil {
		return models.Account{}, err
	}

	if len(columns) == 0 {
		return account, nil
	}

	account.Name = merged.Name
	account.Type = merged.Type
	account.Balance = merged.Balance
	account.Group = merged.Group
	account.Note = merged.Note

	err = db.Model(&account).Select(columns).Updates(&account).Error
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// Delete deletes an account. Transactions of the account are kept.
//
// When the selected account is deleted, the selection falls back to
// the first remaining account, or to none.
func (s *AccountStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.db.WithContext(ctx)

	result := db.Where("id = ?", id).Delete(&models.Account{})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	selected := s.selected.get()
	if selected == nil || *selected != id {
		return true, nil
	}

	var remaining []models.Account
	err := db.Order("created_at ASC").Limit(1).Find(&remaining).Error
	if err != nil {
		// The account is deleted, the selection must not point to it
		s.selected.set(nil)
		return true, err
	}

	if len(remaining) == 0 {
		s.selected.set(nil)
	} else {
		s.selected.set(&remaining[0].ID)
	}

	return true, nil
}

// TotalBalance returns the sum of the balances of all accounts in the group.
//
// Debt accounts contribute their negative balance and reduce the total.
func (s *AccountStore) TotalBalance(ctx context.Context, group models.AccountGroup) (types.Amount, error) {
	if !group.Valid() {
		return 0, invalid("group", ErrAccountGroupInvalid)
	}

	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("account_group = ?", group).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return types.Amount(total), nil
}

// Select selects an account. A nil id clears the selection.
//
// If no account with the id exists, the selection is unchanged and
// false is returned.
func (s *AccountStore) Select(ctx context.Context, id *uuid.UUID) (bool, error) {
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

// Selected returns the ID of the selected account, if any.
func (s *AccountStore) Selected() *uuid.UUID {
	return s.selected.get()
}
