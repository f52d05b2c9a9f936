package models

import (
	"strings"

	"gorm.io/gorm"
)

// Budget represents a budget
//
// A budget is the highest level of organization, category groups
// reference it directly and categories transitively.
type Budget struct {
	DefaultModel
	Name     string `gorm:"not null"`
	Note     string
	Currency string // ISO 4217 currency code
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	return nil
}
