package database

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedPizzas() []models.Pizza {
	return []models.Pizza{
		{Name: "Pepperoni", Description: "Tomato sauce, mozzarella, double pepperoni", Price: price("23.00"), Available: true},
		{Name: "Margherita", Description: "Tomato sauce, fresh mozzarella and basil", Price: price("18.50"), Vegetarian: true, Available: true},
		{Name: "Hawaiian", Description: "Tomato sauce, mozzarella, ham and pineapple", Price: price("20.50"), Available: true},
		{Name: "Four Cheese", Description: "Mozzarella, gorgonzola, parmesan and goat cheese", Price: price("24.00"), Vegetarian: true, Available: true},
		{Name: "Vegan Garden", Description: "Tomato sauce, peppers, mushrooms, olives and spinach", Price: price("19.00"), Vegetarian: true, Vegan: true, Available: true},
		{Name: "BBQ Chicken", Description: "BBQ sauce, mozzarella, grilled chicken and red onion", Price: price("25.50"), Available: true},
		{Name: "Mexican", Description: "Tomato sauce, beef, jalapeños, onion and corn", Price: price("22.00"), Available: false},
		{Name: "Mediterranean", Description: "Tomato sauce, eggplant, zucchini, olives and capers", Price: price("21.00"), Vegetarian: true, Vegan: true, Available: false},
	}
}

func seedCustomers() []models.Customer {
	return []models.Customer{
		{Name: "Anne Smith", Address: "12 Baker Street", Email: "anne.smith@example.com", PhoneNumber: "555-0101"},
		{Name: "Carlos Ruiz", Address: "48 Elm Avenue", Email: "carlos.ruiz@example.com", PhoneNumber: "555-0102"},
		{Name: "Mei Chen", Address: "7 Harbor Road", Email: "mei.chen@example.com", PhoneNumber: "555-0103"},
	}
}

// Seed fills an empty database with a small catalog, customers and a few
// orders. A database that already has pizzas is left untouched.
func Seed(db *gorm.DB, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Pizza{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, "count pizzas")
		}
		if count > 0 {
			log.WithField("pizzas", count).Info("Database already seeded")
			return nil
		}

		pizzas := seedPizzas()
		if err := tx.Create(&pizzas).Error; err != nil {
			return errors.Wrap(err, "seed pizzas")
		}
		customers := seedCustomers()
		if err := tx.Create(&customers).Error; err != nil {
			return errors.Wrap(err, "seed customers")
		}

		line := func(p models.Pizza, qty string) models.OrderItem {
			q := price(qty)
			return models.OrderItem{PizzaID: p.ID, Quantity: q, Price: p.Price.Mul(q)}
		}
		orders := []models.Order{
			{CustomerID: customers[0].ID, Date: now.Add(-48 * time.Hour), Method: models.MethodDelivery,
				AdditionalNotes: "Ring twice", Items: []models.OrderItem{line(pizzas[0], "1"), line(pizzas[1], "2")}},
			{CustomerID: customers[1].ID, Date: now.Add(-26 * time.Hour), Method: models.MethodOnSite,
				Items: []models.OrderItem{line(pizzas[4], "1")}},
			{CustomerID: customers[2].ID, Date: now.Add(-time.Hour), Method: models.MethodCarryout,
				Items: []models.OrderItem{line(pizzas[3], "1"), line(pizzas[5], "0.5")}},
		}
		for i := range orders {
			order := &orders[i]
			order.Date = order.Date.UTC()
			total := decimal.Zero
			for j := range order.Items {
				order.Items[j].ItemID = j + 1
				total = total.Add(order.Items[j].Price)
			}
			order.Total = total
			if err := tx.Create(order).Error; err != nil {
				return errors.Wrapf(err, "seed order %d", i+1)
			}
		}

		log.WithFields(logrus.Fields{
			"pizzas":    len(pizzas),
			"customers": len(customers),
			"orders":    len(orders),
		}).Info("Database seeded")
		return nil
	})
}
