package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
)

type ClientController struct {
	clientService services.ClientService
	log           logrus.FieldLogger
}

func NewClientController(clientService services.ClientService, log logrus.FieldLogger) *ClientController {
	return &ClientController{clientService: clientService, log: loggerOrDefault(log)}
}

type createClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Domain     string `json:"domain"`
	Scopes     string `json:"scopes"`
	GrantTypes string `json:"grant_types"`
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a new OAuth2 client owned by the authenticated staff member
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body object{name=string,domain=string,scopes=string,grant_types=string} true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.APIError "Invalid request"
// @Failure 500 {object} models.APIError "Client creation failed"
// @Security BearerAuth
// @Router /api/v1/protected/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	client, secret, err := cc.clientService.CreateClient(c.Request.Context(), c.GetUint(middleware.ContextUserID), services.ClientRegistration{
		Name:       req.Name,
		Domain:     req.Domain,
		Scopes:     req.Scopes,
		GrantTypes: req.GrantTypes,
	})
	if err != nil {
		respondError(c, cc.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // Return plain secret only once
		"name":          client.Name,
		"scopes":        client.Scopes,
		"grant_types":   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated staff member
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} models.OAuthClient "List of clients"
// @Failure 500 {object} models.APIError "Failed to retrieve clients"
// @Security BearerAuth
// @Router /api/v1/protected/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByStaffID(c.Request.Context(), c.GetUint(middleware.ContextUserID))
	if err != nil {
		respondError(c, cc.log, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated staff member
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.APIError "Client not found"
// @Security BearerAuth
// @Router /api/v1/protected/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	if err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), c.GetUint(middleware.ContextUserID)); err != nil {
		respondError(c, cc.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (cc *ClientController) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	clients.POST("", cc.CreateClient)
	clients.GET("", cc.ListClients)
	clients.DELETE("/:id", cc.DeleteClient)
}
