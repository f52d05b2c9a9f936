package models

import (
	"strings"

	"github.com/envelope-zero/ledger/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryGroup groups categories of a budget.
type CategoryGroup struct {
	DefaultModel
	Budget   Budget    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BudgetID uuid.UUID `gorm:"index"`
	Name     string    `gorm:"not null"`
	Order    int       `gorm:"column:display_order"`
}

func (g *CategoryGroup) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	return nil
}

// Category is an envelope money is assigned to and spent from.
//
// Assigned, Activity and Available are running totals. Activity and
// Available are only changed when transactions linked to the category
// are created, updated or deleted.
type Category struct {
	DefaultModel
	Group        CategoryGroup `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	GroupID      uuid.UUID     `gorm:"index"`
	Name         string        `gorm:"not null"`
	TargetAmount types.Amount  `gorm:"check:target_amount_non_negative,target_amount >= 0"`
	Assigned     types.Amount
	Activity     types.Amount
	Available    types.Amount
	Note         string
	Order        int `gorm:"column:display_order"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)
	return nil
}
