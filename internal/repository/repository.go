// Package repository holds the persistence layer: the catalog, customer and
// order stores, the catalog query contract and the pizza lifecycle hooks.
package repository

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// PizzaRepository is the catalog store.
//
// Every operation that materializes rows (Find, FindFirst, FindByID and the
// implicit loads of Save and DeleteByID) fires the after-load hooks once per
// row. Save fires after-write, DeleteByID fires before-delete. UpdatePrice
// writes the column directly and fires nothing.
type PizzaRepository interface {
	Find(ctx context.Context, q PizzaQuery) ([]models.Pizza, error)
	// FindFirst returns the first row of q, or ErrNotFound.
	FindFirst(ctx context.Context, q PizzaQuery) (models.Pizza, error)
	Count(ctx context.Context, where ...PizzaPredicate) (int64, error)
	FindByID(ctx context.Context, id int) (models.Pizza, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	// Save inserts the pizza when its id is zero and updates it otherwise.
	// The generated id is written back into pizza.
	Save(ctx context.Context, pizza *models.Pizza) error
	// DeleteByID removes the row. A missing id is a no-op.
	DeleteByID(ctx context.Context, id int) error
	// UpdatePrice sets the price of one row without loading it. It does not
	// check that the row exists.
	UpdatePrice(ctx context.Context, id int, price decimal.Decimal) error
	Hooks() *PizzaHooks
}

// CustomerRepository is the customer store.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]models.Customer, error)
	FindByID(ctx context.Context, id int) (models.Customer, error)
	FindByPhone(ctx context.Context, phone string) (models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
}

// OrderRepository is the order store. Orders are returned with their items.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id int) (models.Order, error)
	// FindByDateAfter returns orders placed strictly after t.
	FindByDateAfter(ctx context.Context, t time.Time) ([]models.Order, error)
	FindByMethodIn(ctx context.Context, methods []models.OrderMethod) ([]models.Order, error)
	FindByCustomer(ctx context.Context, customerID int) ([]models.Order, error)
	// Save inserts or updates the order and replaces its items.
	Save(ctx context.Context, order *models.Order) error
	// Summary returns the joined view of one order. Orders without items
	// have no summary and yield ErrNotFound.
	Summary(ctx context.Context, orderID int) (models.OrderSummary, error)
}

// Transactor runs fn inside one transaction. Stores called with the context
// handed to fn take part in that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTransactor runs fn directly. It serves engines without transactions.
type NopTransactor struct{}

func (NopTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
