package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// InventoryController handles inventory API endpoints
type InventoryController struct {
	Service *Services.InventoryService
}

// NewInventoryController creates a new InventoryController
func NewInventoryController(db *gorm.DB, audit *Services.AuditService) *InventoryController {
	return &InventoryController{Service: Services.NewInventoryService(db, audit)}
}

// GetItems retrieves inventory items, optionally filtered by last-updated
// date range and item type
func (c *InventoryController) GetItems(ctx *fiber.Ctx) error {
	filter := Services.InventoryFilter{
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
		ItemType:  ctx.Query("itemType"),
	}

	items, err := c.Service.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(items)
}

// GetItem retrieves a single inventory item by ID
func (c *InventoryController) GetItem(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	item, err := c.Service.Get(id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(item)
}

// GetLowStock returns every item at or below its minimum stock level
func (c *InventoryController) GetLowStock(ctx *fiber.Ctx) error {
	items, err := c.Service.LowStock()
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(items)
}

// GetStats returns the stock-quantity total and the per-type breakdown
func (c *InventoryController) GetStats(ctx *fiber.Ctx) error {
	total, err := c.Service.TotalValue()
	if err != nil {
		return serviceError(ctx, err)
	}
	byType, err := c.Service.ByType()
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"total_stock": total,
		"by_type":     byType,
	})
}

// CreateItem creates a new inventory item
func (c *InventoryController) CreateItem(ctx *fiber.Ctx) error {
	var input Services.CreateInventoryItemInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	item, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem updates an existing inventory item
func (c *InventoryController) UpdateItem(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input Services.UpdateInventoryItemInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	item, err := c.Service.Update(id, input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(item)
}

// DeleteItem deletes an inventory item
func (c *InventoryController) DeleteItem(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	if err := c.Service.Delete(id, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Inventory item deleted successfully"})
}
