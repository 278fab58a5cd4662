package repository

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

var _ PizzaRepository = (*GormPizzaRepository)(nil)

// GormPizzaRepository stores the catalog in a relational database.
type GormPizzaRepository struct {
	db    *gorm.DB
	hooks *PizzaHooks
}

func NewGormPizzaRepository(db *gorm.DB, hooks *PizzaHooks) *GormPizzaRepository {
	if hooks == nil {
		hooks = NewPizzaHooks(nil)
	}
	return &GormPizzaRepository{db: db, hooks: hooks}
}

func (r *GormPizzaRepository) Hooks() *PizzaHooks { return r.hooks }

func (r *GormPizzaRepository) Find(ctx context.Context, q PizzaQuery) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := q.scope(dbFrom(ctx, r.db).Model(&models.Pizza{})).Find(&pizzas).Error; err != nil {
		return nil, errors.Wrap(err, "find pizzas")
	}
	r.hooks.fire(ctx, eventAfterLoad, pizzas...)
	return pizzas, nil
}

func (r *GormPizzaRepository) FindFirst(ctx context.Context, q PizzaQuery) (models.Pizza, error) {
	q.Limit = 1
	pizzas, err := r.Find(ctx, q)
	if err != nil {
		return models.Pizza{}, err
	}
	if len(pizzas) == 0 {
		return models.Pizza{}, ErrNotFound
	}
	return pizzas[0], nil
}

func (r *GormPizzaRepository) Count(ctx context.Context, preds ...PizzaPredicate) (int64, error) {
	var n int64
	if err := where(dbFrom(ctx, r.db).Model(&models.Pizza{}), preds).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count pizzas")
	}
	return n, nil
}

func (r *GormPizzaRepository) FindByID(ctx context.Context, id int) (models.Pizza, error) {
	var p models.Pizza
	if err := dbFrom(ctx, r.db).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, ErrNotFound
		}
		return models.Pizza{}, errors.Wrapf(err, "find pizza %d", id)
	}
	r.hooks.fire(ctx, eventAfterLoad, p)
	return p, nil
}

func (r *GormPizzaRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var n int64
	if err := dbFrom(ctx, r.db).Model(&models.Pizza{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, errors.Wrapf(err, "check pizza %d", id)
	}
	return n > 0, nil
}

func (r *GormPizzaRepository) Save(ctx context.Context, pizza *models.Pizza) error {
	if pizza.ID == 0 {
		if err := dbFrom(ctx, r.db).Create(pizza).Error; err != nil {
			return errors.Wrap(err, "insert pizza")
		}
		r.hooks.fire(ctx, eventAfterWrite, *pizza)
		return nil
	}

	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current models.Pizza
		switch err := tx.First(&current, pizza.ID).Error; {
		case err == nil:
			r.hooks.fire(ctx, eventAfterLoad, current)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Save(pizza).Error
	})
	if err != nil {
		return errors.Wrapf(err, "save pizza %d", pizza.ID)
	}
	r.hooks.fire(ctx, eventAfterWrite, *pizza)
	return nil
}

func (r *GormPizzaRepository) DeleteByID(ctx context.Context, id int) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var current models.Pizza
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		r.hooks.fire(ctx, eventAfterLoad, current)
		r.hooks.fire(ctx, eventBeforeDelete, current)
		return tx.Delete(&models.Pizza{}, id).Error
	})
	if err != nil {
		return errors.Wrapf(err, "delete pizza %d", id)
	}
	return nil
}

func (r *GormPizzaRepository) UpdatePrice(ctx context.Context, id int, price decimal.Decimal) error {
	err := dbFrom(ctx, r.db).Exec("UPDATE pizzas SET price = ? WHERE id = ?", price, id).Error
	if err != nil {
		return errors.Wrapf(err, "update price of pizza %d", id)
	}
	return nil
}
