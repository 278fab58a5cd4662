package database

import (
	"github.com/go-faster/errors"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// Models lists every entity owned by the schema, in dependency order
func Models() []any {
	return []any{
		&models.Pizza{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Staff{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	}
}

// Migrate creates or updates the tables of every entity
func Migrate(db *gorm.DB) error {
	log.Info("Running database migrations")
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	log.Info("Database migrations completed")
	return nil
}
