package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// AuditController exposes the audit trail read side
type AuditController struct {
	Service *Services.AuditService
}

// NewAuditController creates a new AuditController
func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{Service: Services.NewAuditService(db)}
}

// GetLogs retrieves audit entries with conjunctive filters, newest first
func (c *AuditController) GetLogs(ctx *fiber.Ctx) error {
	filter := Services.AuditFilter{
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
		Action:    ctx.Query("action"),
		Entity:    ctx.Query("entity"),
	}
	if userID, err := strconv.Atoi(ctx.Query("userId")); err == nil && userID > 0 {
		id := uint(userID)
		filter.UserID = &id
	}
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	logs, err := c.Service.Query(filter)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(logs)
}

// GetEntityLogs retrieves the history of one record
func (c *AuditController) GetEntityLogs(ctx *fiber.Ctx) error {
	logs, err := c.Service.ByEntity(ctx.Params("entity"), ctx.Params("entityId"))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(logs)
}

// GetRecent retrieves the most recent audit entries
func (c *AuditController) GetRecent(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	logs, err := c.Service.Recent(limit)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(logs)
}

// GetStatistics aggregates the audit trail over an optional date range
func (c *AuditController) GetStatistics(ctx *fiber.Ctx) error {
	stats, err := c.Service.Statistics(ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(stats)
}
