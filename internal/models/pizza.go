package models

import (
	"github.com/shopspring/decimal"
)

// Pizza represents a catalog entry that can be ordered
type Pizza struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:30;not null" json:"name"`
	Description string          `gorm:"size:150;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"price"`
	Vegetarian  bool            `gorm:"not null" json:"vegetarian"`
	Vegan       bool            `gorm:"not null" json:"vegan"`
	Available   bool            `gorm:"not null" json:"available"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Clone returns an independent copy of the pizza. The price gets its own
// backing value so the copy never aliases the original.
func (p Pizza) Clone() Pizza {
	clone := p
	clone.Price = p.Price.Copy()
	return clone
}

// PizzaPriceUpdate is the payload of the bulk price update
type PizzaPriceUpdate struct {
	PizzaID  int             `json:"pizza_id" binding:"required"`
	NewPrice decimal.Decimal `json:"new_price"`
}
