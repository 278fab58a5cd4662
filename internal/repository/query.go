package repository

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// ErrInvalidSort is returned by ParseSort for unknown fields or directions.
var ErrInvalidSort = errors.New("invalid sort")

// PizzaPredicate is one condition of a catalog query. Match evaluates it
// against a pizza held in memory, SQL renders the same condition as a WHERE
// fragment. Both must agree on every row.
type PizzaPredicate interface {
	Match(p models.Pizza) bool
	SQL() (string, []any)
}

type availablePredicate struct{}

// Available keeps pizzas currently on sale.
func Available() PizzaPredicate { return availablePredicate{} }

func (availablePredicate) Match(p models.Pizza) bool { return p.Available }
func (availablePredicate) SQL() (string, []any)      { return "available = ?", []any{true} }

type veganPredicate struct{}

// Vegan keeps vegan pizzas.
func Vegan() PizzaPredicate { return veganPredicate{} }

func (veganPredicate) Match(p models.Pizza) bool { return p.Vegan }
func (veganPredicate) SQL() (string, []any)      { return "vegan = ?", []any{true} }

type nameEqualFold struct {
	name string
}

// NameEqualFold keeps pizzas whose name equals name, ignoring case.
func NameEqualFold(name string) PizzaPredicate { return nameEqualFold{name: name} }

// Match folds with strings.ToLower rather than strings.EqualFold so it
// agrees with SQL LOWER on every engine.
func (n nameEqualFold) Match(p models.Pizza) bool {
	return strings.ToLower(p.Name) == strings.ToLower(n.name)
}
func (n nameEqualFold) SQL() (string, []any) {
	return "LOWER(name) = ?", []any{strings.ToLower(n.name)}
}

type descriptionPredicate struct {
	fragment string
	negate   bool
}

// DescriptionContains keeps pizzas whose description contains fragment,
// ignoring case.
func DescriptionContains(fragment string) PizzaPredicate {
	return descriptionPredicate{fragment: fragment}
}

// DescriptionLacks keeps pizzas whose description does not contain fragment,
// ignoring case.
func DescriptionLacks(fragment string) PizzaPredicate {
	return descriptionPredicate{fragment: fragment, negate: true}
}

func (d descriptionPredicate) Match(p models.Pizza) bool {
	found := strings.Contains(strings.ToLower(p.Description), strings.ToLower(d.fragment))
	return found != d.negate
}

func (d descriptionPredicate) SQL() (string, []any) {
	pattern := "%" + escapeLike(strings.ToLower(d.fragment)) + "%"
	if d.negate {
		return "LOWER(description) NOT LIKE ? ESCAPE '!'", []any{pattern}
	}
	return "LOWER(description) LIKE ? ESCAPE '!'", []any{pattern}
}

// escapeLike neutralizes LIKE wildcards. '!' is used as escape character
// because backslash handling differs between sqlite, postgres and mysql.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

type priceAtMost struct {
	max decimal.Decimal
}

// PriceAtMost keeps pizzas priced at or below max.
func PriceAtMost(max decimal.Decimal) PizzaPredicate { return priceAtMost{max: max} }

func (m priceAtMost) Match(p models.Pizza) bool { return p.Price.LessThanOrEqual(m.max) }
func (m priceAtMost) SQL() (string, []any)      { return "price <= ?", []any{m.max} }

// SortField names a sortable pizza column.
type SortField string

const (
	SortByID          SortField = "id"
	SortByName        SortField = "name"
	SortByDescription SortField = "description"
	SortByPrice       SortField = "price"
)

// PizzaSort orders query results. Rows that compare equal on Field are
// always ordered by ascending id. The zero value sorts by ascending id.
type PizzaSort struct {
	Field      SortField
	Descending bool
}

// ParseSort validates a user supplied sort field and direction. An empty
// direction means ascending.
func ParseSort(field, direction string) (PizzaSort, error) {
	var s PizzaSort
	switch f := SortField(strings.ToLower(strings.TrimSpace(field))); f {
	case "", SortByID:
		s.Field = SortByID
	case SortByName, SortByDescription, SortByPrice:
		s.Field = f
	default:
		return PizzaSort{}, errors.Wrapf(ErrInvalidSort, "unknown field %q", field)
	}

	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case "", "ASC":
	case "DESC":
		s.Descending = true
	default:
		return PizzaSort{}, errors.Wrapf(ErrInvalidSort, "unknown direction %q", direction)
	}
	return s, nil
}

// Compare orders a before b with the same rules the SQL rendering uses.
func (s PizzaSort) Compare(a, b models.Pizza) int {
	var c int
	switch s.Field {
	case SortByName:
		c = strings.Compare(a.Name, b.Name)
	case SortByDescription:
		c = strings.Compare(a.Description, b.Description)
	case SortByPrice:
		c = a.Price.Cmp(b.Price)
	default:
		c = cmp.Compare(a.ID, b.ID)
	}
	if s.Descending {
		c = -c
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SQL renders the ORDER BY clause.
func (s PizzaSort) SQL() string {
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	switch s.Field {
	case SortByName, SortByDescription, SortByPrice:
		return fmt.Sprintf("%s %s, id ASC", s.Field, dir)
	default:
		return "id " + dir
	}
}

// PizzaQuery is a conjunction of predicates plus ordering and an optional
// window. Limit 0 means no limit.
type PizzaQuery struct {
	Where  []PizzaPredicate
	Sort   PizzaSort
	Offset int
	Limit  int
}

// Match reports whether p satisfies every predicate of q.
func (q PizzaQuery) Match(p models.Pizza) bool {
	for _, pred := range q.Where {
		if !pred.Match(p) {
			return false
		}
	}
	return true
}

// Apply runs q over an in-memory set of pizzas.
func (q PizzaQuery) Apply(pizzas []models.Pizza) []models.Pizza {
	out := make([]models.Pizza, 0, len(pizzas))
	for _, p := range pizzas {
		if q.Match(p) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, q.Sort.Compare)

	if q.Offset > 0 {
		if q.Offset >= len(out) {
			return []models.Pizza{}
		}
		out = out[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out
}

// scope renders q onto a gorm statement.
func (q PizzaQuery) scope(db *gorm.DB) *gorm.DB {
	db = where(db, q.Where)
	db = db.Order(q.Sort.SQL())
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	return db
}

func where(db *gorm.DB, preds []PizzaPredicate) *gorm.DB {
	for _, pred := range preds {
		clause, args := pred.SQL()
		db = db.Where(clause, args...)
	}
	return db
}
