package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

type orderFixture struct {
	db        *gorm.DB
	pizzas    *GormPizzaRepository
	customers *GormCustomerRepository
	orders    *GormOrderRepository
	alice     models.Customer
	bob       models.Customer
	menu      []models.Pizza
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := newTestDB(t)
	f := &orderFixture{
		db:        db,
		pizzas:    NewGormPizzaRepository(db, nil),
		customers: NewGormCustomerRepository(db),
		orders:    NewGormOrderRepository(db),
	}
	ctx := context.Background()

	f.alice = models.Customer{Name: "Alice", Address: "1 Main St", Email: "alice@example.com", PhoneNumber: "555-0100"}
	f.bob = models.Customer{Name: "Bob", Address: "2 Side St", Email: "bob@example.com", PhoneNumber: "555-0200"}
	require.NoError(t, f.customers.Save(ctx, &f.alice))
	require.NoError(t, f.customers.Save(ctx, &f.bob))

	f.menu = seedPizzas(t, f.pizzas,
		pizza("Pepperoni", "Spicy", "10.00", true),
		pizza("Margherita", "Classic", "8.00", true),
	)
	return f
}

func (f *orderFixture) order(customer models.Customer, method models.OrderMethod, date time.Time, pizzas ...models.Pizza) models.Order {
	o := models.Order{CustomerID: customer.ID, Date: date, Method: method, Total: dec("0")}
	for _, p := range pizzas {
		o.Items = append(o.Items, models.OrderItem{PizzaID: p.ID, Quantity: dec("1"), Price: p.Price})
		o.Total = o.Total.Add(p.Price)
	}
	return o
}

func TestGormOrderRepositorySaveNumbersItems(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	o := f.order(f.alice, models.MethodDelivery, time.Now(), f.menu[0], f.menu[1])
	require.NoError(t, f.orders.Save(ctx, &o))
	require.NotZero(t, o.ID)

	got, err := f.orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 1, got.Items[0].ItemID)
	assert.Equal(t, 2, got.Items[1].ItemID)
	assert.Equal(t, o.ID, got.Items[0].OrderID)
	assert.True(t, got.Total.Equal(dec("18")))
}

func TestGormOrderRepositorySaveReplacesItems(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	o := f.order(f.alice, models.MethodCarryout, time.Now(), f.menu[0], f.menu[1])
	require.NoError(t, f.orders.Save(ctx, &o))

	o.Items = []models.OrderItem{{PizzaID: f.menu[1].ID, Quantity: dec("2"), Price: dec("16")}}
	o.AdditionalNotes = "extra napkins"
	require.NoError(t, f.orders.Save(ctx, &o))

	got, err := f.orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, f.menu[1].ID, got.Items[0].PizzaID)
	assert.Equal(t, "extra napkins", got.AdditionalNotes)

	all, err := f.orders.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGormOrderRepositoryFindByDateAfterIsStrict(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	cutoff := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	before := f.order(f.alice, models.MethodOnSite, cutoff.Add(-time.Hour), f.menu[0])
	at := f.order(f.alice, models.MethodOnSite, cutoff, f.menu[0])
	after := f.order(f.bob, models.MethodOnSite, cutoff.Add(time.Minute), f.menu[1])
	for _, o := range []*models.Order{&before, &at, &after} {
		require.NoError(t, f.orders.Save(ctx, o))
	}

	got, err := f.orders.FindByDateAfter(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, after.ID, got[0].ID)
}

func TestGormOrderRepositoryFindByMethodIn(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	now := time.Now()

	delivery := f.order(f.alice, models.MethodDelivery, now, f.menu[0])
	onSite := f.order(f.alice, models.MethodOnSite, now, f.menu[0])
	carryout := f.order(f.bob, models.MethodCarryout, now, f.menu[1])
	for _, o := range []*models.Order{&delivery, &onSite, &carryout} {
		require.NoError(t, f.orders.Save(ctx, o))
	}

	got, err := f.orders.FindByMethodIn(ctx, models.OutsideMethods)
	require.NoError(t, err)
	ids := []int{}
	for _, o := range got {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int{delivery.ID, carryout.ID}, ids)

	none, err := f.orders.FindByMethodIn(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGormOrderRepositoryFindByCustomer(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	mine := f.order(f.alice, models.MethodDelivery, time.Now(), f.menu[0])
	theirs := f.order(f.bob, models.MethodDelivery, time.Now(), f.menu[1])
	require.NoError(t, f.orders.Save(ctx, &mine))
	require.NoError(t, f.orders.Save(ctx, &theirs))

	got, err := f.orders.FindByCustomer(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, theirs.ID, got[0].ID)
}

func TestGormOrderRepositorySummary(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	date := time.Date(2026, 5, 4, 19, 30, 0, 0, time.UTC)

	o := f.order(f.alice, models.MethodDelivery, date, f.menu[0], f.menu[1], f.menu[0])
	require.NoError(t, f.orders.Save(ctx, &o))

	got, err := f.orders.Summary(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.OrderID)
	assert.Equal(t, "Alice", got.CustomerName)
	assert.True(t, got.OrderDate.Equal(date))
	assert.True(t, got.OrderTotal.Equal(dec("28")))
	assert.Equal(t, "Margherita,Pepperoni", got.PizzaNames)
}

func TestGormOrderRepositorySummaryWithoutItems(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	empty := f.order(f.alice, models.MethodOnSite, time.Now())
	require.NoError(t, f.orders.Save(ctx, &empty))

	_, err := f.orders.Summary(ctx, empty.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.orders.Summary(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormTransactorRollsBack(t *testing.T) {
	f := newOrderFixture(t)
	tr := NewGormTransactor(f.db)
	errAbort := errors.New("abort")

	err := tr.WithinTransaction(context.Background(), func(ctx context.Context) error {
		require.NotNil(t, TxFromContext(ctx))
		if err := f.pizzas.UpdatePrice(ctx, f.menu[0].ID, dec("99")); err != nil {
			return err
		}
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	got, err := f.pizzas.FindByID(context.Background(), f.menu[0].ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(dec("10")))
}

func TestGormCustomerRepository(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	got, err := f.customers.FindByPhone(ctx, "555-0200")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)

	_, err = f.customers.FindByPhone(ctx, "555-02")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.customers.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := f.customers.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice", all[0].Name)
}

func TestNopTransactor(t *testing.T) {
	called := false
	err := NopTransactor{}.WithinTransaction(context.Background(), func(ctx context.Context) error {
		called = true
		assert.Nil(t, TxFromContext(ctx))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
