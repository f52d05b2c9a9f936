package importer

import (
	"context"
	"fmt"

	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
)

// FindDuplicates sets the DuplicateTransactionIDs of all previews.
func FindDuplicates(ctx context.Context, transactions *ledger.TransactionStore, previews []TransactionPreview) error {
	for i := range previews {
		t := previews[i].Transaction

		ids, err := transactions.Duplicates(ctx, t.AccountID, t.ImportHash)
		if err != nil {
			return err
		}
		previews[i].DuplicateTransactionIDs = ids
	}

	return nil
}

// Create creates the transactions of all previews that do not duplicate
// an existing transaction. Each transaction is reconciled like a
// transaction created by the user.
//
// When creating a transaction fails, the transactions created until then
// are returned with the error.
func Create(ctx context.Context, transactions *ledger.TransactionStore, previews []TransactionPreview) ([]models.Transaction, error) {
	err := FindDuplicates(ctx, transactions, previews)
	if err != nil {
		return nil, err
	}

	created := make([]models.Transaction, 0, len(previews))
	for i, preview := range previews {
		if len(preview.DuplicateTransactionIDs) > 0 {
			continue
		}

		t, err := transactions.Create(ctx, preview.Transaction)
		if err != nil {
			return created, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		created = append(created, t)
	}

	return created, nil
}
