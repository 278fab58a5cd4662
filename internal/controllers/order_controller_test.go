package controllers

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

type orderFixture struct {
	anne, carlos models.Customer
	pizzas       []models.Pizza
	orders       []models.Order
}

func (e *testEnv) seedOrders(t *testing.T) orderFixture {
	t.Helper()
	f := orderFixture{pizzas: e.seedCatalog(t)}
	f.anne = models.Customer{Name: "Anne", Address: "1 Main St", Email: "anne@example.com", PhoneNumber: "555-0001"}
	f.carlos = models.Customer{Name: "Carlos", Address: "2 Main St", Email: "carlos@example.com", PhoneNumber: "555-0002"}
	require.NoError(t, e.db.Create(&f.anne).Error)
	require.NoError(t, e.db.Create(&f.carlos).Error)

	midnight := time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, fixedNow.Location())
	f.orders = []models.Order{
		{CustomerID: f.anne.ID, Date: midnight.Add(-2 * time.Hour).UTC(), Total: dec("18"), Method: models.MethodDelivery,
			Items: []models.OrderItem{
				{ItemID: 1, PizzaID: f.pizzas[1].ID, Quantity: dec("1"), Price: dec("10")},
				{ItemID: 2, PizzaID: f.pizzas[0].ID, Quantity: dec("1"), Price: dec("8")},
			}},
		{CustomerID: f.carlos.ID, Date: midnight.Add(2 * time.Hour).UTC(), Total: dec("9"), Method: models.MethodOnSite,
			Items: []models.OrderItem{{ItemID: 1, PizzaID: f.pizzas[3].ID, Quantity: dec("1"), Price: dec("9")}}},
		{CustomerID: f.anne.ID, Date: midnight.Add(3 * time.Hour).UTC(), Total: dec("8"), Method: models.MethodCarryout},
	}
	for i := range f.orders {
		require.NoError(t, e.db.Create(&f.orders[i]).Error)
	}
	return f
}

func orderIDs(orders []models.Order) []int {
	ids := make([]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

func TestOrderController_Lists(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedOrders(t)
	o := f.orders

	testCases := []struct {
		name     string
		path     string
		expected []int
	}{
		{name: "all", path: "/api/v1/protected/orders", expected: []int{o[0].ID, o[1].ID, o[2].ID}},
		{name: "today", path: "/api/v1/protected/orders/today", expected: []int{o[1].ID, o[2].ID}},
		{name: "outside", path: "/api/v1/protected/orders/outside", expected: []int{o[0].ID, o[2].ID}},
		{name: "by customer", path: "/api/v1/protected/orders/customer/" + strconv.Itoa(f.anne.ID), expected: []int{o[0].ID, o[2].ID}},
		{name: "unknown customer", path: "/api/v1/protected/orders/customer/999", expected: []int{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expected, orderIDs(decode[[]models.Order](t, w)))
		})
	}

	t.Run("items are included", func(t *testing.T) {
		orders := decode[[]models.Order](t, env.do(t, http.MethodGet, "/api/v1/protected/orders", nil))
		require.Len(t, orders[0].Items, 2)
		assert.Equal(t, 1, orders[0].Items[0].ItemID)
	})

	t.Run("invalid customer id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/protected/orders/customer/x", nil).Code)
	})
}

func TestOrderController_GetSummary(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedOrders(t)

	w := env.do(t, http.MethodGet, "/api/v1/protected/orders/"+strconv.Itoa(f.orders[0].ID)+"/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.OrderSummary](t, w)
	assert.Equal(t, f.orders[0].ID, summary.OrderID)
	assert.Equal(t, "Anne", summary.CustomerName)
	assert.Equal(t, "Margherita,Pepperoni", summary.PizzaNames)
	assert.True(t, summary.OrderTotal.Equal(dec("18")))

	w = env.do(t, http.MethodGet, "/api/v1/protected/orders/999/summary", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrOrderNotFound, decode[models.APIError](t, w).Code)
}

func TestOrderController_Create(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedOrders(t)

	t.Run("created", func(t *testing.T) {
		body := `{"customer_id":` + strconv.Itoa(f.carlos.ID) + `,"total":"18.00","method":"D",` +
			`"items":[{"pizza_id":` + strconv.Itoa(f.pizzas[0].ID) + `,"quantity":"2","price":"16.00"},` +
			`{"pizza_id":` + strconv.Itoa(f.pizzas[3].ID) + `,"quantity":"1","price":"9.00"}]}`
		w := env.do(t, http.MethodPost, "/api/v1/protected/orders", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		order := decode[models.Order](t, w)
		assert.NotZero(t, order.ID)
		assert.True(t, order.Date.Equal(fixedNow))
		require.Len(t, order.Items, 2)
		assert.Equal(t, []int{1, 2}, []int{order.Items[0].ItemID, order.Items[1].ItemID})
	})

	testCases := []struct {
		name string
		body string
	}{
		{name: "unknown method", body: `{"customer_id":` + strconv.Itoa(f.anne.ID) + `,"total":"1","method":"X"}`},
		{name: "unknown customer", body: `{"customer_id":999,"total":"1","method":"S"}`},
		{name: "unknown pizza", body: `{"customer_id":` + strconv.Itoa(f.anne.ID) + `,"total":"1","method":"S","items":[{"pizza_id":999,"quantity":"1","price":"1"}]}`},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/protected/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, models.ErrOrderInvalidData, decode[models.APIError](t, w).Code)
		})
	}
}
