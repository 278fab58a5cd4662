package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

var _ PizzaRepository = (*MemoryPizzaRepository)(nil)

// MemoryPizzaRepository keeps the catalog in a map. It evaluates queries
// with PizzaQuery.Apply and follows the same hook rules as the gorm store.
type MemoryPizzaRepository struct {
	mu     sync.RWMutex
	rows   map[int]models.Pizza
	lastID int
	hooks  *PizzaHooks
}

func NewMemoryPizzaRepository(hooks *PizzaHooks, seed ...models.Pizza) *MemoryPizzaRepository {
	if hooks == nil {
		hooks = NewPizzaHooks(nil)
	}
	r := &MemoryPizzaRepository{rows: make(map[int]models.Pizza), hooks: hooks}
	for _, p := range seed {
		r.store(p)
	}
	return r
}

func (r *MemoryPizzaRepository) Hooks() *PizzaHooks { return r.hooks }

// store writes p and returns the row as stored. Callers hold no lock.
func (r *MemoryPizzaRepository) store(p models.Pizza) models.Pizza {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		r.lastID++
		p.ID = r.lastID
	} else if p.ID > r.lastID {
		r.lastID = p.ID
	}
	p = p.Clone()
	r.rows[p.ID] = p
	return p
}

func (r *MemoryPizzaRepository) snapshot() []models.Pizza {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Pizza, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p.Clone())
	}
	slices.SortFunc(out, func(a, b models.Pizza) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func (r *MemoryPizzaRepository) lookup(id int) (models.Pizza, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.rows[id]
	return p.Clone(), ok
}

func (r *MemoryPizzaRepository) Find(ctx context.Context, q PizzaQuery) ([]models.Pizza, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pizzas := q.Apply(r.snapshot())
	r.hooks.fire(ctx, eventAfterLoad, pizzas...)
	return pizzas, nil
}

func (r *MemoryPizzaRepository) FindFirst(ctx context.Context, q PizzaQuery) (models.Pizza, error) {
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

func (r *MemoryPizzaRepository) Count(_ context.Context, preds ...PizzaPredicate) (int64, error) {
	q := PizzaQuery{Where: preds}
	var n int64
	for _, p := range r.snapshot() {
		if q.Match(p) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryPizzaRepository) FindByID(ctx context.Context, id int) (models.Pizza, error) {
	p, ok := r.lookup(id)
	if !ok {
		return models.Pizza{}, ErrNotFound
	}
	r.hooks.fire(ctx, eventAfterLoad, p)
	return p, nil
}

func (r *MemoryPizzaRepository) ExistsByID(_ context.Context, id int) (bool, error) {
	_, ok := r.lookup(id)
	return ok, nil
}

func (r *MemoryPizzaRepository) Save(ctx context.Context, pizza *models.Pizza) error {
	if pizza.ID != 0 {
		if current, ok := r.lookup(pizza.ID); ok {
			r.hooks.fire(ctx, eventAfterLoad, current)
		}
	}
	stored := r.store(*pizza)
	pizza.ID = stored.ID
	r.hooks.fire(ctx, eventAfterWrite, stored)
	return nil
}

func (r *MemoryPizzaRepository) DeleteByID(ctx context.Context, id int) error {
	current, ok := r.lookup(id)
	if !ok {
		return nil
	}
	r.hooks.fire(ctx, eventAfterLoad, current)
	r.hooks.fire(ctx, eventBeforeDelete, current)

	r.mu.Lock()
	delete(r.rows, id)
	r.mu.Unlock()
	return nil
}

func (r *MemoryPizzaRepository) UpdatePrice(_ context.Context, id int, price decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.rows[id]; ok {
		p.Price = price.Copy()
		r.rows[id] = p
	}
	return nil
}
