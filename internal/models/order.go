package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderMethod is the fulfillment method of an order, stored as a single character
type OrderMethod string

const (
	MethodDelivery OrderMethod = "D"
	MethodCarryout OrderMethod = "C"
	MethodOnSite   OrderMethod = "S"
)

// Valid reports whether m is one of the known fulfillment methods
func (m OrderMethod) Valid() bool {
	switch m {
	case MethodDelivery, MethodCarryout, MethodOnSite:
		return true
	default:
		return false
	}
}

// OutsideMethods are the methods where the pizza leaves the restaurant
var OutsideMethods = []OrderMethod{MethodDelivery, MethodCarryout}

type Order struct {
	ID              int             `gorm:"primaryKey" json:"id"`
	CustomerID      int             `gorm:"not null;index" json:"customer_id"`
	Customer        *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	Total           decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"total"`
	Method          OrderMethod     `gorm:"type:char(1);not null" json:"method"`
	AdditionalNotes string          `gorm:"size:200" json:"additional_notes,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line of an order. Items are owned by their order and are
// numbered 1..n inside it.
type OrderItem struct {
	OrderID  int             `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ItemID   int             `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	PizzaID  int             `gorm:"not null;index" json:"pizza_id"`
	Pizza    *Pizza          `gorm:"foreignKey:PizzaID" json:"-"`
	Quantity decimal.Decimal `gorm:"type:decimal(2,1);not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderSummary is a read-only view of one order joined with its customer and pizzas
type OrderSummary struct {
	OrderID      int             `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	OrderDate    time.Time       `json:"order_date"`
	OrderTotal   decimal.Decimal `json:"order_total"`
	PizzaNames   string          `json:"pizza_names"`
}
