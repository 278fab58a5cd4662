package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/franciscosanchezn/pizzeria-api/internal/audit"
	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-api/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fixedNow is the clock of the order service in tests
var fixedNow = time.Date(2024, 5, 20, 15, 0, 0, 0, time.Local)

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	journal *audit.Journal
	logs    *test.Hook
	staffID uint
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(database.SQLiteDialector(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	log, hook := test.NewNullLogger()
	hooks := repository.NewPizzaHooks(log)
	pizzas := repository.NewGormPizzaRepository(db, hooks)
	customers := repository.NewGormCustomerRepository(db)
	orders := repository.NewGormOrderRepository(db)
	tx := repository.NewGormTransactor(db)

	journal := audit.NewJournal(0)
	audit.NewRecorder(journal, audit.WithLogger(log)).Attach(hooks)

	staff := models.Staff{Email: "admin@pizza.test", Name: "Admin", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&staff).Error)

	pizzaController := NewPizzaController(services.NewPizzaService(pizzas, tx), log)
	orderController := NewOrderController(services.NewOrderService(orders, customers, pizzas, tx,
		services.WithOrderClock(func() time.Time { return fixedNow })), log)
	customerController := NewCustomerController(services.NewCustomerService(customers), log)
	clientController := NewClientController(services.NewClientService(db), log)
	auditController := NewAuditController(journal)

	router := gin.New()
	api := router.Group("/api/v1")
	pizzaController.RegisterPublicRoutes(api.Group("/public"))

	protected := api.Group("/protected")
	protected.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, staff.ID)
		c.Set(middleware.ContextUserRole, staff.Role)
	})
	customerController.RegisterRoutes(protected)
	orderController.RegisterRoutes(protected)
	clientController.RegisterRoutes(protected)

	admin := protected.Group("/admin")
	pizzaController.RegisterAdminRoutes(admin)
	auditController.RegisterRoutes(admin)

	return &testEnv{router: router, db: db, journal: journal, logs: hook, staffID: staff.ID}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedCatalog inserts the pizzas used across the catalog tests
func (e *testEnv) seedCatalog(t *testing.T) []models.Pizza {
	t.Helper()
	pizzas := []models.Pizza{
		{Name: "Margherita", Description: "Tomato, mozzarella and basil", Price: dec("8.00"), Vegetarian: true, Available: true},
		{Name: "Pepperoni", Description: "Tomato, mozzarella and pepperoni", Price: dec("10.00"), Available: true},
		{Name: "Hawaiian", Description: "Tomato, ham and pineapple", Price: dec("6.00"), Available: false},
		{Name: "Garden", Description: "Tomato, peppers and olives", Price: dec("9.00"), Vegetarian: true, Vegan: true, Available: true},
		{Name: "Green", Description: "Pesto and spinach", Price: dec("8.50"), Vegetarian: true, Vegan: true, Available: false},
	}
	require.NoError(t, e.db.Create(&pizzas).Error)
	return pizzas
}

func pizzaNames(pizzas []models.Pizza) []string {
	names := make([]string, len(pizzas))
	for i, p := range pizzas {
		names[i] = p.Name
	}
	return names
}
