package repository

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

var _ OrderRepository = (*GormOrderRepository)(nil)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("item_id") }).
		Order("id")
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withItems(ctx).Find(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "find orders")
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id int) (models.Order, error) {
	var o models.Order
	if err := r.withItems(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, errors.Wrapf(err, "find order %d", id)
	}
	return o, nil
}

func (r *GormOrderRepository) FindByDateAfter(ctx context.Context, t time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withItems(ctx).Where("date > ?", t.UTC()).Find(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "find orders by date")
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByMethodIn(ctx context.Context, methods []models.OrderMethod) ([]models.Order, error) {
	if len(methods) == 0 {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := r.withItems(ctx).Where("method IN ?", methods).Find(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "find orders by method")
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withItems(ctx).Where("customer_id = ?", customerID).Find(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "find orders by customer")
	}
	return orders, nil
}

// Save writes the order row, then replaces its items. Dates are stored in
// UTC so that sqlite's text timestamps compare in chronological order.
func (r *GormOrderRepository) Save(ctx context.Context, order *models.Order) error {
	order.Date = order.Date.UTC()
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		items := order.Items
		if err := tx.Omit("Customer", "Items").Save(order).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if items[i].ItemID == 0 {
				items[i].ItemID = i + 1
			}
		}
		if len(items) > 0 {
			if err := tx.Omit("Pizza").Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "save order")
	}
	return nil
}

type summaryRow struct {
	OrderID      int
	CustomerName string
	OrderDate    time.Time
	OrderTotal   decimal.Decimal
	PizzaName    string
}

func (r *GormOrderRepository) Summary(ctx context.Context, orderID int) (models.OrderSummary, error) {
	var rows []summaryRow
	err := dbFrom(ctx, r.db).
		Table("orders AS o").
		Select("o.id AS order_id, c.name AS customer_name, o.date AS order_date, o.total AS order_total, p.name AS pizza_name").
		Joins("JOIN customers c ON c.id = o.customer_id").
		Joins("JOIN order_items oi ON oi.order_id = o.id").
		Joins("JOIN pizzas p ON p.id = oi.pizza_id").
		Where("o.id = ?", orderID).
		Order("p.name").
		Scan(&rows).Error
	if err != nil {
		return models.OrderSummary{}, errors.Wrapf(err, "summarize order %d", orderID)
	}
	if len(rows) == 0 {
		return models.OrderSummary{}, ErrNotFound
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.PizzaName)
	}
	slices.Sort(names)
	names = slices.Compact(names)

	first := rows[0]
	return models.OrderSummary{
		OrderID:      first.OrderID,
		CustomerName: first.CustomerName,
		OrderDate:    first.OrderDate,
		OrderTotal:   first.OrderTotal,
		PizzaNames:   strings.Join(names, ","),
	}, nil
}
