package services

import (
	"github.com/go-faster/errors"

	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
)

var (
	ErrPizzaNotFound      = errors.New("pizza not found")
	ErrPizzaAlreadyExists = errors.New("pizza already exists")
	ErrInvalidPizza       = errors.New("invalid pizza")
	ErrInvalidPage        = errors.New("invalid page request")
	ErrInvalidSort        = repository.ErrInvalidSort
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrClientNotFound     = errors.New("client not found")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrStaffAlreadyExists = errors.New("staff member already exists")
	ErrInvalidStaff       = errors.New("invalid staff member")
)
