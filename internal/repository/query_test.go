package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		direction string
		want      PizzaSort
		wantErr   bool
	}{
		{name: "defaults", want: PizzaSort{Field: SortByID}},
		{name: "price asc", field: "price", direction: "ASC", want: PizzaSort{Field: SortByPrice}},
		{name: "mixed case", field: "Name", direction: "desc", want: PizzaSort{Field: SortByName, Descending: true}},
		{name: "description", field: "description", want: PizzaSort{Field: SortByDescription}},
		{name: "unknown field", field: "price; DROP TABLE pizzas", wantErr: true},
		{name: "unknown direction", field: "price", direction: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.field, tt.direction)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPizzaSortSQL(t *testing.T) {
	assert.Equal(t, "id ASC", PizzaSort{}.SQL())
	assert.Equal(t, "id DESC", PizzaSort{Field: SortByID, Descending: true}.SQL())
	assert.Equal(t, "price ASC, id ASC", PizzaSort{Field: SortByPrice}.SQL())
	assert.Equal(t, "name DESC, id ASC", PizzaSort{Field: SortByName, Descending: true}.SQL())
}

func TestPizzaSortCompareBreaksTiesByID(t *testing.T) {
	a := models.Pizza{ID: 1, Price: dec("9.00")}
	b := models.Pizza{ID: 2, Price: dec("9")}

	asc := PizzaSort{Field: SortByPrice}
	desc := PizzaSort{Field: SortByPrice, Descending: true}

	assert.Negative(t, asc.Compare(a, b))
	assert.Negative(t, desc.Compare(a, b), "ties stay in ascending id order when descending")
	assert.Positive(t, asc.Compare(b, a))
}

func TestPredicates(t *testing.T) {
	p := models.Pizza{
		Name:        "Hawaiian",
		Description: "Ham, PINEAPPLE and cheese",
		Price:       dec("10.50"),
		Vegan:       false,
		Available:   true,
	}

	assert.True(t, Available().Match(p))
	assert.False(t, Vegan().Match(p))
	assert.True(t, NameEqualFold("hawaiian").Match(p))
	assert.False(t, NameEqualFold("hawai").Match(p))
	assert.True(t, DescriptionContains("pineapple").Match(p))
	assert.False(t, DescriptionLacks("Pineapple").Match(p))
	assert.True(t, DescriptionLacks("anchovies").Match(p))
	assert.True(t, PriceAtMost(dec("10.5")).Match(p))
	assert.False(t, PriceAtMost(dec("10.49")).Match(p))
}

func TestDescriptionPredicateEscapesWildcards(t *testing.T) {
	clause, args := DescriptionContains("50%_off!").SQL()
	assert.Equal(t, "LOWER(description) LIKE ? ESCAPE '!'", clause)
	assert.Equal(t, []any{"%50!%!_off!!%"}, args)

	clause, _ = DescriptionLacks("x").SQL()
	assert.Equal(t, "LOWER(description) NOT LIKE ? ESCAPE '!'", clause)
}

func TestPizzaQueryApply(t *testing.T) {
	pizzas := []models.Pizza{
		{ID: 1, Name: "a", Price: dec("8"), Available: true},
		{ID: 2, Name: "b", Price: dec("6"), Available: true},
		{ID: 3, Name: "c", Price: dec("6"), Available: false},
		{ID: 4, Name: "d", Price: dec("7"), Available: true},
		{ID: 5, Name: "e", Price: dec("6"), Available: true},
	}

	t.Run("filter and sort", func(t *testing.T) {
		q := PizzaQuery{Where: []PizzaPredicate{Available()}, Sort: PizzaSort{Field: SortByPrice}}
		assert.Equal(t, []string{"b", "e", "d", "a"}, names(q.Apply(pizzas)))
	})

	t.Run("window", func(t *testing.T) {
		q := PizzaQuery{Sort: PizzaSort{Field: SortByID}, Offset: 1, Limit: 2}
		assert.Equal(t, []string{"b", "c"}, names(q.Apply(pizzas)))
	})

	t.Run("offset past the end", func(t *testing.T) {
		q := PizzaQuery{Offset: 10}
		got := q.Apply(pizzas)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("input is not reordered", func(t *testing.T) {
		PizzaQuery{Sort: PizzaSort{Field: SortByName, Descending: true}}.Apply(pizzas)
		assert.Equal(t, 1, pizzas[0].ID)
	})
}
