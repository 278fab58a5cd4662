package services

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(database.SQLiteDialector(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&models.Pizza{}, &models.Customer{}, &models.Order{}, &models.OrderItem{},
		&models.Staff{}, &models.OAuthClient{},
	)
	require.NoError(t, err)
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// spyPizzaRepository counts the mutating calls that reach the store.
type spyPizzaRepository struct {
	repository.PizzaRepository

	mu           sync.Mutex
	saves        int
	deletes      int
	priceUpdates int
}

func newSpyPizzaRepository(seed ...models.Pizza) *spyPizzaRepository {
	return &spyPizzaRepository{PizzaRepository: repository.NewMemoryPizzaRepository(nil, seed...)}
}

func (s *spyPizzaRepository) Save(ctx context.Context, p *models.Pizza) error {
	s.mu.Lock()
	s.saves++
	s.mu.Unlock()
	return s.PizzaRepository.Save(ctx, p)
}

func (s *spyPizzaRepository) DeleteByID(ctx context.Context, id int) error {
	s.mu.Lock()
	s.deletes++
	s.mu.Unlock()
	return s.PizzaRepository.DeleteByID(ctx, id)
}

func (s *spyPizzaRepository) UpdatePrice(ctx context.Context, id int, price decimal.Decimal) error {
	s.mu.Lock()
	s.priceUpdates++
	s.mu.Unlock()
	return s.PizzaRepository.UpdatePrice(ctx, id, price)
}

func (s *spyPizzaRepository) mutations() (saves, deletes, priceUpdates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves, s.deletes, s.priceUpdates
}

type countingTransactor struct {
	calls int
}

func (c *countingTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	c.calls++
	return fn(ctx)
}
