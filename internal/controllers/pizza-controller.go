package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
)

// Paging defaults of the catalog listings
const (
	DefaultPageSize          = 5
	DefaultAvailablePageSize = 2
	DefaultSortBy            = "price"
	DefaultSortDirection     = "ASC"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController struct {
	service services.PizzaService
	log     logrus.FieldLogger
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService, log logrus.FieldLogger) *PizzaController {
	return &PizzaController{service: service, log: loggerOrDefault(log)}
}

// GetAll godoc
// @Summary List pizzas
// @Description Get one page of the whole catalog in id order
// @Tags pizzas
// @Produce json
// @Param page query int false "Page number, starting at 0" default(0)
// @Param elements query int false "Page size" default(5)
// @Success 200 {object} models.Page[models.Pizza]
// @Failure 400 {object} models.APIError
// @Router /api/v1/public/pizzas [get]
func (pc *PizzaController) GetAll(ctx *gin.Context) {
	page, ok := intQuery(ctx, "page", 0)
	if !ok {
		return
	}
	size, ok := intQuery(ctx, "elements", DefaultPageSize)
	if !ok {
		return
	}

	result, err := pc.service.GetAll(ctx.Request.Context(), page, size)
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAvailable godoc
// @Summary List available pizzas
// @Description Get one page of the pizzas on sale
// @Tags pizzas
// @Produce json
// @Param page query int false "Page number, starting at 0" default(0)
// @Param elements query int false "Page size" default(2)
// @Param sortBy query string false "Sort field: id, name, description or price" default(price)
// @Param sortDirection query string false "ASC or DESC" default(ASC)
// @Success 200 {object} models.Page[models.Pizza]
// @Failure 400 {object} models.APIError
// @Router /api/v1/public/pizzas/available [get]
func (pc *PizzaController) GetAvailable(ctx *gin.Context) {
	page, ok := intQuery(ctx, "page", 0)
	if !ok {
		return
	}
	size, ok := intQuery(ctx, "elements", DefaultAvailablePageSize)
	if !ok {
		return
	}
	sortBy := ctx.DefaultQuery("sortBy", DefaultSortBy)
	direction := ctx.DefaultQuery("sortDirection", DefaultSortDirection)

	result, err := pc.service.GetAvailable(ctx.Request.Context(), page, size, sortBy, direction)
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAvailableByPrice godoc
// @Summary List available pizzas by price
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Router /api/v1/public/pizzas/available/by-price [get]
func (pc *PizzaController) GetAvailableByPrice(ctx *gin.Context) {
	pizzas, err := pc.service.GetAvailableByPrice(ctx.Request.Context())
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetWithDescription godoc
// @Summary Find available pizzas by description
// @Description Case-insensitive substring match on the description
// @Tags pizzas
// @Produce json
// @Param description path string true "Text the description must contain"
// @Success 200 {array} models.Pizza
// @Router /api/v1/public/pizzas/with/{description} [get]
func (pc *PizzaController) GetWithDescription(ctx *gin.Context) {
	pizzas, err := pc.service.GetWithDescription(ctx.Request.Context(), ctx.Param("description"))
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetWithoutIngredient godoc
// @Summary Find available pizzas without an ingredient
// @Tags pizzas
// @Produce json
// @Param ingredient path string true "Ingredient the description must not mention"
// @Success 200 {array} models.Pizza
// @Router /api/v1/public/pizzas/without/{ingredient} [get]
func (pc *PizzaController) GetWithoutIngredient(ctx *gin.Context) {
	pizzas, err := pc.service.GetWithoutIngredient(ctx.Request.Context(), ctx.Param("ingredient"))
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetByName godoc
// @Summary Get an available pizza by name
// @Tags pizzas
// @Produce json
// @Param name path string true "Pizza name, case insensitive"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/name/{name} [get]
func (pc *PizzaController) GetByName(ctx *gin.Context) {
	pizza, err := pc.service.GetByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// GetCheapest godoc
// @Summary Cheapest available pizzas
// @Description The cheapest available pizzas priced at most the given amount
// @Tags pizzas
// @Produce json
// @Param price path string true "Maximum price"
// @Param limit query int false "Maximum number of results" default(3)
// @Success 200 {array} models.Pizza
// @Failure 400 {object} models.APIError
// @Router /api/v1/public/pizzas/cheapest/{price} [get]
func (pc *PizzaController) GetCheapest(ctx *gin.Context) {
	maxPrice, err := decimal.NewFromString(ctx.Param("price"))
	if err != nil {
		badRequest(ctx, "Invalid price format")
		return
	}
	limit, ok := intQuery(ctx, "limit", services.DefaultCheapestLimit)
	if !ok {
		return
	}

	pizzas, err := pc.service.GetTopCheapest(ctx.Request.Context(), maxPrice, limit)
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// CountVegan godoc
// @Summary Count vegan pizzas
// @Description Vegan pizzas are counted whether they are available or not
// @Tags pizzas
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /api/v1/public/pizzas/vegan/count [get]
func (pc *PizzaController) CountVegan(ctx *gin.Context) {
	count, err := pc.service.CountVegan(ctx.Request.Context())
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// GetByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID, available or not
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{id} [get]
func (pc *PizzaController) GetByID(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}

	pizza, err := pc.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// Create godoc
// @Summary Create a new pizza
// @Description Create a pizza. Supplying the id of an existing pizza is a conflict.
// @Tags admin
// @Accept json
// @Produce json
// @Param pizza body models.Pizza true "Pizza object"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas [post]
func (pc *PizzaController) Create(ctx *gin.Context) {
	var pizza models.Pizza
	if err := ctx.ShouldBindJSON(&pizza); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	created, err := pc.service.Create(ctx.Request.Context(), pizza)
	if err != nil {
		respondError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a pizza
// @Description Replace an existing pizza, identified by the id in the body
// @Tags admin
// @Accept json
// @Produce json
// @Param pizza body models.Pizza true "Pizza object"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas [put]
func (pc *PizzaController) Update(ctx *gin.Context) {
	var pizza models.Pizza
	if err := ctx.ShouldBindJSON(&pizza); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	updated, err := pc.service.Update(ctx.Request.Context(), pizza)
	if err != nil {
		respondMutationError(ctx, pc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// UpdatePrice godoc
// @Summary Update the price of a pizza
// @Description Bulk price change. Lifecycle handlers are not notified.
// @Tags admin
// @Accept json
// @Param update body models.PizzaPriceUpdate true "New price"
// @Success 204
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/price [put]
func (pc *PizzaController) UpdatePrice(ctx *gin.Context) {
	var update models.PizzaPriceUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	if err := pc.service.UpdatePrice(ctx.Request.Context(), update); err != nil {
		respondMutationError(ctx, pc.log, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a pizza
// @Tags admin
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{id} [delete]
func (pc *PizzaController) Delete(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}

	if err := pc.service.Delete(ctx.Request.Context(), id); err != nil {
		respondMutationError(ctx, pc.log, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RegisterPublicRoutes mounts the read-only catalog under rg
func (pc *PizzaController) RegisterPublicRoutes(rg *gin.RouterGroup) {
	pizzas := rg.Group("/pizzas")
	pizzas.GET("", pc.GetAll)
	pizzas.GET("/available", pc.GetAvailable)
	pizzas.GET("/available/by-price", pc.GetAvailableByPrice)
	pizzas.GET("/with/:description", pc.GetWithDescription)
	pizzas.GET("/without/:ingredient", pc.GetWithoutIngredient)
	pizzas.GET("/name/:name", pc.GetByName)
	pizzas.GET("/cheapest/:price", pc.GetCheapest)
	pizzas.GET("/vegan/count", pc.CountVegan)
	pizzas.GET("/:id", pc.GetByID)
}

// RegisterAdminRoutes mounts the catalog mutations under rg
func (pc *PizzaController) RegisterAdminRoutes(rg *gin.RouterGroup) {
	pizzas := rg.Group("/pizzas")
	pizzas.POST("", pc.Create)
	pizzas.PUT("", pc.Update)
	pizzas.PUT("/price", pc.UpdatePrice)
	pizzas.DELETE("/:id", pc.Delete)
}
