package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// RetailerController handles retailer-related API endpoints
type RetailerController struct {
	Service *Services.RetailerService
}

// NewRetailerController creates a new RetailerController
func NewRetailerController(db *gorm.DB, audit *Services.AuditService) *RetailerController {
	return &RetailerController{Service: Services.NewRetailerService(db, audit)}
}

// GetRetailers retrieves all retailers, optionally filtered by name and status
func (c *RetailerController) GetRetailers(ctx *fiber.Ctx) error {
	filter := Services.RetailerFilter{
		Name:   ctx.Query("name"),
		Status: ctx.Query("status"),
	}

	retailers, err := c.Service.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(retailers)
}

// GetRetailer retrieves a single retailer by ID
func (c *RetailerController) GetRetailer(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	retailer, err := c.Service.Get(id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(retailer)
}

// CreateRetailer creates a new retailer
func (c *RetailerController) CreateRetailer(ctx *fiber.Ctx) error {
	var input Services.CreateRetailerInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	retailer, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(retailer)
}

// UpdateRetailer updates an existing retailer
func (c *RetailerController) UpdateRetailer(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input Services.UpdateRetailerInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	retailer, err := c.Service.Update(id, input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(retailer)
}

// DeleteRetailer deletes a retailer; sales referencing it are left alone
func (c *RetailerController) DeleteRetailer(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	if err := c.Service.Delete(id, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Retailer deleted successfully"})
}
