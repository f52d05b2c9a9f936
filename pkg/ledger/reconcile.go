package ledger

import (
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
)

// Delta is a change to the running totals of a category.
type Delta struct {
	CategoryID uuid.UUID
	Activity   types.Amount
	Available  types.Amount
}

// linkedCategory returns the category a transaction is posted against.
//
// Transactions without a category and transfers are not linked to any
// category.
func linkedCategory(t models.Transaction) (uuid.UUID, bool) {
	if t.CategoryID == nil || *t.CategoryID == uuid.Nil || t.Type == models.TransactionTypeTransfer {
		return uuid.Nil, false
	}

	return *t.CategoryID, true
}

// post returns the delta for posting amount against the category.
// Activity moves with the amount, available moves against it.
func post(id uuid.UUID, amount types.Amount) Delta {
	return Delta{
		CategoryID: id,
		Activity:   amount,
		Available:  -amount,
	}
}

// ApplyNew returns the deltas for a newly created transaction.
func ApplyNew(t models.Transaction) []Delta {
	c, ok := linkedCategory(t)
	if !ok {
		return nil
	}

	return []Delta{post(c, t.Amount)}
}

// ApplyRemoval returns the deltas that exactly reverse the effect
// of a transaction that is deleted.
func ApplyRemoval(t models.Transaction) []Delta {
	c, ok := linkedCategory(t)
	if !ok {
		return nil
	}

	return []Delta{post(c, -t.Amount)}
}

// ApplyUpdate returns the deltas for a transaction changing from old to updated.
//
// When the category stays the same, a single delta for the difference in
// amounts is returned. Otherwise, the old amount is reversed on the old
// category and the new amount is posted on the new category.
func ApplyUpdate(old, updated models.Transaction) []Delta {
	oldCategory, oldLinked := linkedCategory(old)
	newCategory, newLinked := linkedCategory(updated)

	if oldLinked && newLinked && oldCategory == newCategory {
		diff := updated.Amount - old.Amount
		if diff == 0 {
			return nil
		}

		return []Delta{post(newCategory, diff)}
	}

	var deltas []Delta
	if oldLinked {
		deltas = append(deltas, post(oldCategory, -old.Amount))
	}

	if newLinked {
		deltas = append(deltas, post(newCategory, updated.Amount))
	}

	return deltas
}
