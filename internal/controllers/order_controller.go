package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
)

type OrderController struct {
	service services.OrderService
	log     logrus.FieldLogger
}

func NewOrderController(service services.OrderService, log logrus.FieldLogger) *OrderController {
	return &OrderController{service: service, log: loggerOrDefault(log)}
}

// GetAll godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Security BearerAuth
// @Router /api/v1/protected/orders [get]
func (oc *OrderController) GetAll(ctx *gin.Context) {
	oc.list(ctx, oc.service.GetAll)
}

// GetToday godoc
// @Summary List today's orders
// @Description Orders placed since midnight, server local time
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Security BearerAuth
// @Router /api/v1/protected/orders/today [get]
func (oc *OrderController) GetToday(ctx *gin.Context) {
	oc.list(ctx, oc.service.GetTodayOrders)
}

// GetOutside godoc
// @Summary List delivery and carryout orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Security BearerAuth
// @Router /api/v1/protected/orders/outside [get]
func (oc *OrderController) GetOutside(ctx *gin.Context) {
	oc.list(ctx, oc.service.GetOutsideOrders)
}

func (oc *OrderController) list(ctx *gin.Context, find func(context.Context) ([]models.Order, error)) {
	orders, err := find(ctx.Request.Context())
	if err != nil {
		respondError(ctx, oc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetByCustomer godoc
// @Summary List the orders of a customer
// @Tags orders
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {array} models.Order
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/customer/{customerId} [get]
func (oc *OrderController) GetByCustomer(ctx *gin.Context) {
	customerID, ok := intParam(ctx, "customerId")
	if !ok {
		return
	}
	orders, err := oc.service.GetCustomerOrders(ctx.Request.Context(), customerID)
	if err != nil {
		respondError(ctx, oc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetSummary godoc
// @Summary Order summary
// @Description Order with its customer name and the names of its pizzas
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.OrderSummary
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id}/summary [get]
func (oc *OrderController) GetSummary(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	summary, err := oc.service.GetSummary(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, oc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// Create godoc
// @Summary Place an order
// @Description Items are numbered in the given order. A missing date means now.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.Order true "Order with its items"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders [post]
func (oc *OrderController) Create(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	saved, err := oc.service.Save(ctx.Request.Context(), order)
	if err != nil {
		respondError(ctx, oc.log, err)
		return
	}
	ctx.JSON(http.StatusCreated, saved)
}

func (oc *OrderController) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.GET("", oc.GetAll)
	orders.GET("/today", oc.GetToday)
	orders.GET("/outside", oc.GetOutside)
	orders.GET("/customer/:customerId", oc.GetByCustomer)
	orders.GET("/:id/summary", oc.GetSummary)
	orders.POST("", oc.Create)
}
