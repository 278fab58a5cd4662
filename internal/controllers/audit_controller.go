package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizzeria-api/internal/audit"
)

// DefaultAuditLimit is the number of records returned when no limit is given
const DefaultAuditLimit = 20

// AuditJournal is the read side of the audit trail
type AuditJournal interface {
	Recent(n int) []audit.Record
}

type AuditController struct {
	journal AuditJournal
}

func NewAuditController(journal AuditJournal) *AuditController {
	return &AuditController{journal: journal}
}

// GetRecent godoc
// @Summary Recent pizza audit records
// @Description Most recent first. A limit of 0 returns everything retained.
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum number of records" default(20)
// @Success 200 {array} audit.Record
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/audit [get]
func (ac *AuditController) GetRecent(ctx *gin.Context) {
	limit, ok := intQuery(ctx, "limit", DefaultAuditLimit)
	if !ok {
		return
	}
	if limit < 0 {
		badRequest(ctx, "limit must not be negative")
		return
	}
	records := ac.journal.Recent(limit)
	if records == nil {
		records = []audit.Record{}
	}
	ctx.JSON(http.StatusOK, records)
}

func (ac *AuditController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit", ac.GetRecent)
}
