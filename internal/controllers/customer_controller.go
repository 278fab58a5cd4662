package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/services"
)

type CustomerController struct {
	service services.CustomerService
	log     logrus.FieldLogger
}

func NewCustomerController(service services.CustomerService, log logrus.FieldLogger) *CustomerController {
	return &CustomerController{service: service, log: loggerOrDefault(log)}
}

// GetAll godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer
// @Security BearerAuth
// @Router /api/v1/protected/customers [get]
func (cc *CustomerController) GetAll(ctx *gin.Context) {
	customers, err := cc.service.GetAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, cc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// GetByPhone godoc
// @Summary Find a customer by phone number
// @Tags customers
// @Produce json
// @Param phone path string true "Exact phone number"
// @Success 200 {object} models.Customer
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/customers/phone/{phone} [get]
func (cc *CustomerController) GetByPhone(ctx *gin.Context) {
	customer, err := cc.service.GetByPhone(ctx.Request.Context(), ctx.Param("phone"))
	if err != nil {
		respondError(ctx, cc.log, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.GET("", cc.GetAll)
	customers.GET("/phone/:phone", cc.GetByPhone)
}
