// Package importer creates transactions from the files of other
// budgeting tools and bank exports.
package importer

import (
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/google/uuid"
)

// TransactionPreview is a transaction parsed from an import file
// that has not been created yet.
type TransactionPreview struct {
	Transaction             ledger.TransactionEditable
	DuplicateTransactionIDs []uuid.UUID // IDs of existing transactions of the account with the same import hash
}
