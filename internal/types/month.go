package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a string in the "YYYY-MM" format.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// UnmarshalParam parses query and URI parameters.
func (m *Month) UnmarshalParam(p string) error {
	parsed, err := ParseMonth(p)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// FirstDay returns the first day of the month.
func (m Month) FirstDay() Date {
	return Date(time.Time(m))
}

// LastDay returns the last day of the month.
func (m Month) LastDay() Date {
	return Date(time.Time(m).AddDate(0, 1, -1))
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	t := time.Time(d)
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}
