package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

func TestCustomerController(t *testing.T) {
	env := newTestEnv(t)
	f := env.seedOrders(t)

	w := env.do(t, http.MethodGet, "/api/v1/protected/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Customer](t, w), 2)

	w = env.do(t, http.MethodGet, "/api/v1/protected/customers/phone/555-0002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, f.carlos.ID, decode[models.Customer](t, w).ID)

	w = env.do(t, http.MethodGet, "/api/v1/protected/customers/phone/555-9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrCustomerNotFound, decode[models.APIError](t, w).Code)
}
