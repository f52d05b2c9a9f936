package ledger

import (
	"context"
	"strings"
	"sync"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DefaultLimit is the number of transactions returned by List when
// the filter does not set a limit.
const DefaultLimit = 50

// TransactionEditable contains the fields of a transaction that can be set.
type TransactionEditable struct {
	Date       types.Date
	AccountID  uuid.UUID
	Amount     types.Amount
	Payee      string
	CategoryID *uuid.UUID
	Note       string
	Cleared    bool
	Type       models.TransactionType
	ImportHash string // Only set on creation
}

// TransactionFilter selects transactions for List.
type TransactionFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       models.TransactionType
	Cleared    *bool
	Payee      string // Glob pattern, matched case insensitive. "*" matches any text
	FromDate   types.Date
	UntilDate  types.Date
	Offset     int
	Limit      int // 0 uses DefaultLimit, a negative limit returns all transactions
}

// TransactionStore owns the transactions.
//
// It is the only writer that triggers changes to the running totals
// of categories.
type TransactionStore struct {
	db         *gorm.DB
	categories *CategoryStore

	mu sync.Mutex
}

// validate checks a transaction before it is written.
func validateTransaction(t models.Transaction) error {
	if t.AccountID == uuid.Nil {
		return invalid("accountId", ErrAccountIDEmpty)
	}

	if strings.TrimSpace(t.Payee) == "" {
		return invalid("payee", ErrPayeeEmpty)
	}

	if t.Amount.IsZero() {
		return invalid("amount", ErrAmountZero)
	}

	if !t.Amount.Valid() {
		return invalid("amount", types.ErrAmountRange)
	}

	if !t.Type.Valid() {
		return invalid("type", ErrTransactionTypeInvalid)
	}

	return nil
}

// accountExists verifies that the account of a transaction exists.
func accountExists(tx *gorm.DB, id uuid.UUID) error {
	err := tx.First(&models.Account{}, "id = ?", id).Error
	if isNotFound(err) {
		return invalid("accountId", ErrAccountMissing)
	}
	return err
}

// categoryExists verifies that a category set on a transaction exists.
//
// Only used when the category is set or changed. Transactions may keep
// referencing a category that was deleted after they were written.
func categoryExists(tx *gorm.DB, id *uuid.UUID) error {
	if id == nil {
		return nil
	}

	err := tx.First(&models.Category{}, "id = ?", *id).Error
	if isNotFound(err) {
		return invalid("categoryId", ErrCategoryMissing)
	}
	return err
}

// List returns the transactions matching the filter, newest first,
// and the total number of matching transactions.
func (s *TransactionStore) List(ctx context.Context, filter TransactionFilter) ([]models.Transaction, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})

	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}

	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.Cleared != nil {
		q = q.Where("cleared = ?", *filter.Cleared)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("date >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("date <= ?", filter.UntilDate)
	}

	// The conditions are shared between counting and listing
	q = q.Session(&gorm.Session{})

	limit := filter.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	// Payee patterns are matched after loading, pagination is then
	// applied to the matching transactions
	if filter.Payee != "" {
		var all []models.Transaction
		err := q.Order("date DESC").Order("created_at DESC").Find(&all).Error
		if err != nil {
			return nil, 0, err
		}

		pattern := strings.ToLower(filter.Payee)
		matching := make([]models.Transaction, 0, len(all))
		for _, t := range all {
			if glob.Glob(pattern, strings.ToLower(t.Payee)) {
				matching = append(matching, t)
			}
		}

		return paginate(matching, filter.Offset, limit), int64(len(matching)), nil
	}

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	var transactions []models.Transaction
	err = q.Order("date DESC").Order("created_at DESC").Offset(filter.Offset).Limit(limit).Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}

func paginate(transactions []models.Transaction, offset, limit int) []models.Transaction {
	if offset >= len(transactions) {
		return []models.Transaction{}
	}
	transactions = transactions[offset:]

	if limit >= 0 && limit < len(transactions) {
		transactions = transactions[:limit]
	}
	return transactions
}

// Get returns a transaction.
func (s *TransactionStore) Get(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.WithContext(ctx).First(&transaction, "id = ?", id).Error
	return transaction, err
}

// Create creates a transaction and posts it against its category.
//
// The type defaults to expense. The amount of expenses is stored negative,
// the amount of income positive.
func (s *TransactionStore) Create(ctx context.Context, editable TransactionEditable) (models.Transaction, error) {
	transaction := models.Transaction{
		Date:       editable.Date,
		AccountID:  editable.AccountID,
		Amount:     editable.Amount,
		Payee:      editable.Payee,
		CategoryID: editable.CategoryID,
		Note:       editable.Note,
		Cleared:    editable.Cleared,
		Type:       editable.Type,
		ImportHash: editable.ImportHash,
	}

	if transaction.Type == "" {
		transaction.Type = models.TransactionTypeExpense
	}

	if transaction.CategoryID != nil && *transaction.CategoryID == uuid.Nil {
		transaction.CategoryID = nil
	}

	err := validateTransaction(transaction)
	if err != nil {
		return models.Transaction{}, err
	}
	transaction.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.categories.lock(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := accountExists(tx, transaction.AccountID)
			if err != nil {
				return err
			}

			err = categoryExists(tx, transaction.CategoryID)
			if err != nil {
				return err
			}

			err = tx.Create(&transaction).Error
			if err != nil {
				return err
			}

			return s.categories.apply(tx, ApplyNew(transaction))
		})
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// Duplicates returns the IDs of the transactions of the account that
// were imported from a line with the same hash.
func (s *TransactionStore) Duplicates(ctx context.Context, accountID uuid.UUID, importHash string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	if importHash == "" {
		return ids, nil
	}

	err := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("account_id = ? AND import_hash = ?", accountID, importHash).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func sameCategory(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// merge returns the transaction with the fields named in fields
// set to their value in editable.
func merge(t models.Transaction, editable TransactionEditable, fields []string) models.Transaction {
	if slices.Contains(fields, "Date") {
		t.Date = editable.Date
	}
	if slices.Contains(fields, "AccountID") {
		t.AccountID = editable.AccountID
	}
	if slices.Contains(fields, "Amount") {
		t.Amount = editable.Amount
	}
	if slices.Contains(fields, "Payee") {
		t.Payee = editable.Payee
	}
	if slices.Contains(fields, "CategoryID") {
		t.CategoryID = editable.CategoryID
	}
	if slices.Contains(fields, "Note") {
		t.Note = editable.Note
	}
	if slices.Contains(fields, "Cleared") {
		t.Cleared = editable.Cleared
	}
	if slices.Contains(fields, "Type") {
		t.Type = editable.Type
	}

	return t
}

// Update updates the fields of the transaction that are named in fields.
//
// The running totals of the old and new category are adjusted before
// the updated transaction is returned.
func (s *TransactionStore) Update(ctx context.Context, id uuid.UUID, editable TransactionEditable, fields []string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated models.Transaction
	err := s.categories.lock(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var old models.Transaction
			err := tx.First(&old, "id = ?", id).Error
			if err != nil {
				return err
			}

			updated = merge(old, editable, fields)
			if updated.CategoryID != nil && *updated.CategoryID == uuid.Nil {
				updated.CategoryID = nil
			}

			err = validateTransaction(updated)
			if err != nil {
				return err
			}
			updated.Normalize()

			if updated.AccountID != old.AccountID {
				err = accountExists(tx, updated.AccountID)
				if err != nil {
					return err
				}
			}

			if !sameCategory(old.CategoryID, updated.CategoryID) {
				err = categoryExists(tx, updated.CategoryID)
				if err != nil {
					return err
				}
			}

			err = tx.Model(&updated).
				Select("Date", "AccountID", "Amount", "Payee", "CategoryID", "Note", "Cleared", "Type").
				Updates(&updated).Error
			if err != nil {
				return err
			}

			return s.categories.apply(tx, ApplyUpdate(old, updated))
		})
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return updated, nil
}

// Delete deletes a transaction and reverses its effect on its category.
//
// If the category does not exist anymore, only the transaction is deleted.
func (s *TransactionStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted bool
	err := s.categories.lock(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var transaction models.Transaction
			err := tx.First(&transaction, "id = ?", id).Error
			if isNotFound(err) {
				return nil
			} else if err != nil {
				return err
			}

			err = tx.Delete(&transaction).Error
			if err != nil {
				return err
			}

			deleted = true
			return s.categories.apply(tx, ApplyRemoval(transaction))
		})
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}
