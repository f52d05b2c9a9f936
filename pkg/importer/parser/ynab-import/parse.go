// Package ynabimport parses the CSV format of YNAB import tools
// like https://github.com/bank2ynab/bank2ynab.
package ynabimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/envelope-zero/ledger/pkg/importer"
	"github.com/envelope-zero/ledger/pkg/importer/helpers"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Column indices of the CSV format.
const (
	Date int = iota
	Payee
	Memo
	Outflow
	Inflow
)

var columnNames = map[int]string{
	Outflow: "outflow",
	Inflow:  "inflow",
}

// Parse parses a YNAB import CSV file into transactions for the account.
//
// Outflows are parsed as expenses, inflows as income. The first line
// is the header and is skipped.
func Parse(f io.Reader, accountID uuid.UUID) ([]importer.TransactionPreview, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	transactions := []importer.TransactionPreview{}

	// Skip the first line
	_, err := reader.Read()
	if err == io.EOF {
		return transactions, nil
	} else if err != nil {
		return transactions, fmt.Errorf("could not read the header of the CSV: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		if len(record) <= Inflow {
			return csvReadError(reader, fmt.Errorf("expected %d columns, got %d", Inflow+1, len(record)))
		}

		date, err := time.Parse("01/02/2006", record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse time: %w", err))
		}

		t := importer.TransactionPreview{
			Transaction: ledger.TransactionEditable{
				Date:       types.DateOf(date),
				AccountID:  accountID,
				Payee:      record[Payee],
				Note:       record[Memo],
				ImportHash: helpers.Sha256String(strings.Join(record, ",")),
			},
		}

		column := Outflow
		if record[Outflow] != "" && record[Inflow] != "" {
			return csvReadError(reader, errors.New("both outflow and inflow are set for the transaction"))
		} else if record[Outflow] == "" && record[Inflow] == "" {
			return csvReadError(reader, errors.New("no amount is set for the transaction"))
		} else if record[Outflow] != "" {
			t.Transaction.Type = models.TransactionTypeExpense
		} else {
			t.Transaction.Type = models.TransactionTypeIncome
			column = Inflow
		}

		d, err := decimal.NewFromString(record[column])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("%s could not be parsed to a decimal", columnNames[column]))
		}

		amount, err := types.NewAmount(d)
		if err != nil {
			return csvReadError(reader, err)
		}

		if amount.IsZero() {
			return csvReadError(reader, errors.New("the amount for a transaction must not be 0"))
		}
		t.Transaction.Amount = amount

		if strings.TrimSpace(t.Transaction.Payee) == "" {
			return csvReadError(reader, errors.New("the payee must not be empty"))
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// csvReadError returns the an error with the format string, including the line of the input
// the error occurred in in the message.
func csvReadError(r *csv.Reader, err error) ([]importer.TransactionPreview, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return []importer.TransactionPreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
