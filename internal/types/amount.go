// Package types implements special types for the ledger.
package types

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountPrecision = errors.New("amounts must not have more than two decimal places")
	ErrAmountRange     = errors.New("the amount is out of range")
)

// MaxAmount is the largest absolute value of an Amount, 100 billion in
// major units. Running totals of categories and accounts are sums of
// amounts and must not overflow int64.
const MaxAmount Amount = 10_000_000_000_000

var maxAmount = decimal.NewFromInt(int64(MaxAmount))

// Amount is a signed amount of money in minor units (cents).
//
// It is stored as an integer so that sums and increments
// in the database stay exact. In JSON, it is represented as a
// decimal string in major units, e.g. "-125.65".
type Amount int64

// NewAmount converts a decimal in major units to an Amount.
func NewAmount(d decimal.Decimal) (Amount, error) {
	cents := d.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, ErrAmountPrecision
	}

	if cents.Abs().GreaterThan(maxAmount) {
		return 0, ErrAmountRange
	}

	return Amount(cents.IntPart()), nil
}

// ParseAmount parses a decimal string in major units.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return NewAmount(d)
}

// MustParseAmount is like ParseAmount but panics on errors.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// String returns the amount in major units with two decimal places.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Valid reports if a is within the range of allowed amounts.
func (a Amount) Valid() bool {
	return a >= -MaxAmount && a <= MaxAmount
}

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// IsZero reports if the amount is zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// MarshalJSON implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Both JSON numbers and strings are accepted.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	parsed, err := NewAmount(d)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}
