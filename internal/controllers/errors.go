package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/middleware"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
)

var errorResponses = []struct {
	target error
	status int
	code   string
}{
	{services.ErrPizzaNotFound, http.StatusNotFound, models.ErrPizzaNotFound},
	{services.ErrPizzaAlreadyExists, http.StatusConflict, models.ErrPizzaAlreadyExists},
	{services.ErrInvalidPizza, http.StatusBadRequest, models.ErrPizzaInvalidData},
	{services.ErrInvalidPage, http.StatusBadRequest, models.ErrBadRequest},
	{services.ErrInvalidSort, http.StatusBadRequest, models.ErrBadRequest},
	{services.ErrCustomerNotFound, http.StatusNotFound, models.ErrCustomerNotFound},
	{services.ErrOrderNotFound, http.StatusNotFound, models.ErrOrderNotFound},
	{services.ErrInvalidOrder, http.StatusBadRequest, models.ErrOrderInvalidData},
	{services.ErrClientNotFound, http.StatusNotFound, models.ErrNotFound},
}

// respondError writes the API error matching err. Unknown errors are logged
// and answered with a generic 500.
func respondError(ctx *gin.Context, log logrus.FieldLogger, err error) {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			ctx.JSON(r.status, models.NewAPIError(r.code, err.Error()))
			return
		}
	}

	log.WithFields(logrus.Fields{
		"request_id": ctx.GetString(middleware.RequestIDKey),
		"method":     ctx.Request.Method,
		"path":       ctx.FullPath(),
	}).WithError(err).Error("Request failed")
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "An unexpected error occurred"))
}

// respondMutationError treats a missing pizza as a bad reference rather
// than a missing resource.
func respondMutationError(ctx *gin.Context, log logrus.FieldLogger, err error) {
	if errors.Is(err, services.ErrPizzaNotFound) {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrPizzaUnknownID, err.Error()))
		return
	}
	respondError(ctx, log, err)
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}

// intParam parses a path parameter, answering 400 when it is not an integer
func intParam(ctx *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+name+" format")
		return 0, false
	}
	return value, true
}

// intQuery parses an optional query parameter
func intQuery(ctx *gin.Context, name string, defaultValue int) (int, bool) {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(ctx, "Invalid "+name+" query parameter")
		return 0, false
	}
	return value, true
}

func loggerOrDefault(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return logrus.StandardLogger()
	}
	return log
}
