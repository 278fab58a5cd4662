package services

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
)

type CustomerService interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	// GetByPhone matches the phone number exactly
	GetByPhone(ctx context.Context, phone string) (models.Customer, error)
}

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	return s.customers.FindAll(ctx)
}

func (s *customerService) GetByPhone(ctx context.Context, phone string) (models.Customer, error) {
	c, err := s.customers.FindByPhone(ctx, phone)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, err
}
