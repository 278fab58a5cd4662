package services

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
)

// DefaultCheapestLimit is the number of pizzas GetCheapest returns
const DefaultCheapestLimit = 3

var maxPizzaPrice = decimal.RequireFromString("999.99")

// PizzaService provides the catalog operations
type PizzaService interface {
	// GetAll returns one page of the whole catalog in id order
	GetAll(ctx context.Context, page, size int) (models.Page[models.Pizza], error)
	// GetAvailable returns one page of the pizzas on sale
	GetAvailable(ctx context.Context, page, size int, sortBy, sortDirection string) (models.Page[models.Pizza], error)
	// GetAvailableByPrice lists the pizzas on sale from cheapest to most expensive
	GetAvailableByPrice(ctx context.Context) ([]models.Pizza, error)
	// GetByName finds an available pizza by name, ignoring case
	GetByName(ctx context.Context, name string) (models.Pizza, error)
	GetWithDescription(ctx context.Context, description string) ([]models.Pizza, error)
	GetWithoutIngredient(ctx context.Context, ingredient string) ([]models.Pizza, error)
	// CountVegan counts vegan pizzas, available or not
	CountVegan(ctx context.Context) (int64, error)
	GetCheapest(ctx context.Context, maxPrice decimal.Decimal) ([]models.Pizza, error)
	GetTopCheapest(ctx context.Context, maxPrice decimal.Decimal, limit int) ([]models.Pizza, error)
	// GetByID returns a pizza regardless of its availability
	GetByID(ctx context.Context, id int) (models.Pizza, error)
	Exists(ctx context.Context, id int) (bool, error)
	// Create adds a pizza. A supplied id that already exists is rejected.
	Create(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// Update replaces an existing pizza
	Update(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// UpdatePrice changes only the price of an existing pizza
	UpdatePrice(ctx context.Context, update models.PizzaPriceUpdate) error
	// Delete removes an existing pizza
	Delete(ctx context.Context, id int) error
}

type pizzaService struct {
	repo repository.PizzaRepository
	tx   repository.Transactor
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(repo repository.PizzaRepository, tx repository.Transactor) PizzaService {
	if tx == nil {
		tx = repository.NopTransactor{}
	}
	return &pizzaService{repo: repo, tx: tx}
}

func (s *pizzaService) GetAll(ctx context.Context, page, size int) (models.Page[models.Pizza], error) {
	return s.page(ctx, nil, repository.PizzaSort{}, page, size)
}

func (s *pizzaService) GetAvailable(ctx context.Context, page, size int, sortBy, sortDirection string) (models.Page[models.Pizza], error) {
	sort, err := repository.ParseSort(sortBy, sortDirection)
	if err != nil {
		return models.Page[models.Pizza]{}, err
	}
	return s.page(ctx, []repository.PizzaPredicate{repository.Available()}, sort, page, size)
}

func (s *pizzaService) page(ctx context.Context, where []repository.PizzaPredicate, sort repository.PizzaSort, page, size int) (models.Page[models.Pizza], error) {
	// page*size must fit in an int offset
	if page < 0 || size <= 0 || page > math.MaxInt/size {
		return models.Page[models.Pizza]{}, errors.Wrapf(ErrInvalidPage, "page %d size %d", page, size)
	}

	total, err := s.repo.Count(ctx, where...)
	if err != nil {
		return models.Page[models.Pizza]{}, err
	}
	content, err := s.repo.Find(ctx, repository.PizzaQuery{
		Where:  where,
		Sort:   sort,
		Offset: page * size,
		Limit:  size,
	})
	if err != nil {
		return models.Page[models.Pizza]{}, err
	}
	return models.NewPage(content, page, size, total), nil
}

func (s *pizzaService) GetAvailableByPrice(ctx context.Context) ([]models.Pizza, error) {
	return s.repo.Find(ctx, repository.PizzaQuery{
		Where: []repository.PizzaPredicate{repository.Available()},
		Sort:  repository.PizzaSort{Field: repository.SortByPrice},
	})
}

func (s *pizzaService) GetByName(ctx context.Context, name string) (models.Pizza, error) {
	p, err := s.repo.FindFirst(ctx, repository.PizzaQuery{
		Where: []repository.PizzaPredicate{repository.Available(), repository.NameEqualFold(name)},
	})
	if errors.Is(err, repository.ErrNotFound) {
		return models.Pizza{}, ErrPizzaNotFound
	}
	return p, err
}

func (s *pizzaService) GetWithDescription(ctx context.Context, description string) ([]models.Pizza, error) {
	return s.repo.Find(ctx, repository.PizzaQuery{
		Where: []repository.PizzaPredicate{repository.Available(), repository.DescriptionContains(description)},
	})
}

func (s *pizzaService) GetWithoutIngredient(ctx context.Context, ingredient string) ([]models.Pizza, error) {
	return s.repo.Find(ctx, repository.PizzaQuery{
		Where: []repository.PizzaPredicate{repository.Available(), repository.DescriptionLacks(ingredient)},
	})
}

func (s *pizzaService) CountVegan(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, repository.Vegan())
}

func (s *pizzaService) GetCheapest(ctx context.Context, maxPrice decimal.Decimal) ([]models.Pizza, error) {
	return s.GetTopCheapest(ctx, maxPrice, DefaultCheapestLimit)
}

func (s *pizzaService) GetTopCheapest(ctx context.Context, maxPrice decimal.Decimal, limit int) ([]models.Pizza, error) {
	if limit <= 0 {
		return nil, errors.Wrapf(ErrInvalidPage, "limit %d", limit)
	}
	return s.repo.Find(ctx, repository.PizzaQuery{
		Where: []repository.PizzaPredicate{repository.Available(), repository.PriceAtMost(maxPrice)},
		Sort:  repository.PizzaSort{Field: repository.SortByPrice},
		Limit: limit,
	})
}

func (s *pizzaService) GetByID(ctx context.Context, id int) (models.Pizza, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Pizza{}, ErrPizzaNotFound
	}
	return p, err
}

func (s *pizzaService) Exists(ctx context.Context, id int) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *pizzaService) Create(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	if err := validatePizza(pizza); err != nil {
		return models.Pizza{}, err
	}
	if pizza.ID != 0 {
		exists, err := s.repo.ExistsByID(ctx, pizza.ID)
		if err != nil {
			return models.Pizza{}, err
		}
		if exists {
			return models.Pizza{}, errors.Wrapf(ErrPizzaAlreadyExists, "id %d", pizza.ID)
		}
	}
	if err := s.repo.Save(ctx, &pizza); err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) Update(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	if err := validatePizza(pizza); err != nil {
		return models.Pizza{}, err
	}
	if err := s.requireExisting(ctx, pizza.ID); err != nil {
		return models.Pizza{}, err
	}
	if err := s.repo.Save(ctx, &pizza); err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) UpdatePrice(ctx context.Context, update models.PizzaPriceUpdate) error {
	if err := validatePrice(update.NewPrice); err != nil {
		return err
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireExisting(ctx, update.PizzaID); err != nil {
			return err
		}
		return s.repo.UpdatePrice(ctx, update.PizzaID, update.NewPrice)
	})
}

func (s *pizzaService) Delete(ctx context.Context, id int) error {
	if err := s.requireExisting(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *pizzaService) requireExisting(ctx context.Context, id int) error {
	if id == 0 {
		return errors.Wrap(ErrPizzaNotFound, "id is required")
	}
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(ErrPizzaNotFound, "id %d", id)
	}
	return nil
}

func validatePizza(p models.Pizza) error {
	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		return errors.Wrap(ErrInvalidPizza, "name is required")
	case utf8.RuneCountInString(p.Name) > 30:
		return errors.Wrap(ErrInvalidPizza, "name is longer than 30 characters")
	case utf8.RuneCountInString(p.Description) > 150:
		return errors.Wrap(ErrInvalidPizza, "description is longer than 150 characters")
	}
	return validatePrice(p.Price)
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errors.Wrap(ErrInvalidPizza, "price must not be negative")
	}
	if price.GreaterThan(maxPizzaPrice) {
		return errors.Wrapf(ErrInvalidPizza, "price must not exceed %s", maxPizzaPrice)
	}
	return nil
}
