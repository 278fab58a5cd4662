package services

import (
	"context"
	"slices"
	"time"

	"github.com/go-faster/errors"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
)

type OrderService interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	// GetOrdersAfter returns the orders placed strictly after t
	GetOrdersAfter(ctx context.Context, t time.Time) ([]models.Order, error)
	// GetTodayOrders returns the orders placed since local midnight
	GetTodayOrders(ctx context.Context) ([]models.Order, error)
	// GetOutsideOrders returns delivery and carryout orders
	GetOutsideOrders(ctx context.Context) ([]models.Order, error)
	GetCustomerOrders(ctx context.Context, customerID int) ([]models.Order, error)
	GetSummary(ctx context.Context, orderID int) (models.OrderSummary, error)
	// Save inserts the order when it has no id and updates it otherwise
	Save(ctx context.Context, order models.Order) (models.Order, error)
}

type OrderServiceOption func(*orderService)

// WithOrderClock replaces the clock used for "today" and default order dates
func WithOrderClock(now func() time.Time) OrderServiceOption {
	return func(s *orderService) { s.now = now }
}

type orderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	pizzas    repository.PizzaRepository
	tx        repository.Transactor
	now       func() time.Time
}

func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	pizzas repository.PizzaRepository,
	tx repository.Transactor,
	opts ...OrderServiceOption,
) OrderService {
	s := &orderService{orders: orders, customers: customers, pizzas: pizzas, tx: tx, now: time.Now}
	if s.tx == nil {
		s.tx = repository.NopTransactor{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *orderService) GetAll(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *orderService) GetOrdersAfter(ctx context.Context, t time.Time) ([]models.Order, error) {
	return s.orders.FindByDateAfter(ctx, t)
}

func (s *orderService) GetTodayOrders(ctx context.Context) ([]models.Order, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.orders.FindByDateAfter(ctx, midnight)
}

func (s *orderService) GetOutsideOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindByMethodIn(ctx, models.OutsideMethods)
}

func (s *orderService) GetCustomerOrders(ctx context.Context, customerID int) ([]models.Order, error) {
	return s.orders.FindByCustomer(ctx, customerID)
}

func (s *orderService) GetSummary(ctx context.Context, orderID int) (models.OrderSummary, error) {
	summary, err := s.orders.Summary(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.OrderSummary{}, ErrOrderNotFound
	}
	return summary, err
}

func (s *orderService) Save(ctx context.Context, order models.Order) (models.Order, error) {
	if err := validateOrder(order); err != nil {
		return models.Order{}, err
	}
	if order.Date.IsZero() {
		order.Date = s.now()
	}
	order.Items = slices.Clone(order.Items)
	for i := range order.Items {
		order.Items[i].ItemID = i + 1
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.customers.FindByID(ctx, order.CustomerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return errors.Wrapf(ErrInvalidOrder, "customer %d does not exist", order.CustomerID)
			}
			return err
		}
		for _, item := range order.Items {
			exists, err := s.pizzas.ExistsByID(ctx, item.PizzaID)
			if err != nil {
				return err
			}
			if !exists {
				return errors.Wrapf(ErrInvalidOrder, "pizza %d does not exist", item.PizzaID)
			}
		}
		return s.orders.Save(ctx, &order)
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func validateOrder(o models.Order) error {
	if !o.Method.Valid() {
		return errors.Wrapf(ErrInvalidOrder, "unknown method %q", o.Method)
	}
	if o.Total.IsNegative() {
		return errors.Wrap(ErrInvalidOrder, "total must not be negative")
	}
	for i, item := range o.Items {
		if !item.Quantity.IsPositive() {
			return errors.Wrapf(ErrInvalidOrder, "item %d: quantity must be positive", i+1)
		}
		if item.Price.IsNegative() {
			return errors.Wrapf(ErrInvalidOrder, "item %d: price must not be negative", i+1)
		}
	}
	return nil
}
