package repository

import (
	"context"

	"github.com/go-faster/errors"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

var _ CustomerRepository = (*GormCustomerRepository)(nil)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := dbFrom(ctx, r.db).Order("id").Find(&customers).Error; err != nil {
		return nil, errors.Wrap(err, "find customers")
	}
	return customers, nil
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id int) (models.Customer, error) {
	var c models.Customer
	if err := dbFrom(ctx, r.db).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, errors.Wrapf(err, "find customer %d", id)
	}
	return c, nil
}

func (r *GormCustomerRepository) FindByPhone(ctx context.Context, phone string) (models.Customer, error) {
	var c models.Customer
	err := dbFrom(ctx, r.db).Where("phone_number = ?", phone).Order("id").First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, errors.Wrap(err, "find customer by phone")
	}
	return c, nil
}

func (r *GormCustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	if err := dbFrom(ctx, r.db).Save(customer).Error; err != nil {
		return errors.Wrap(err, "save customer")
	}
	return nil
}
