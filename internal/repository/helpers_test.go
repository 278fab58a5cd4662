package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(database.SQLiteDialector(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(&models.Pizza{}, &models.Customer{}, &models.Order{}, &models.OrderItem{})
	require.NoError(t, err)
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pizza(name, description, price string, available bool) models.Pizza {
	return models.Pizza{Name: name, Description: description, Price: dec(price), Available: available}
}

// eventLog records hook invocations as "event:id" strings.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) attach(h *PizzaHooks) {
	h.OnAfterLoad(func(_ context.Context, p models.Pizza) { l.add("load", p.ID) })
	h.OnAfterWrite(func(_ context.Context, p models.Pizza) { l.add("write", p.ID) })
	h.OnBeforeDelete(func(_ context.Context, p models.Pizza) { l.add("delete", p.ID) })
}

func (l *eventLog) add(event string, id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, fmt.Sprintf("%s:%d", event, id))
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

func (l *eventLog) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = nil
}

func names(pizzas []models.Pizza) []string {
	out := make([]string, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, p.Name)
	}
	return out
}
