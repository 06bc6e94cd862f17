package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// FarmerController handles farmer-related API endpoints
type FarmerController struct {
	Service *Services.FarmerService
}

// NewFarmerController creates a new FarmerController
func NewFarmerController(db *gorm.DB, audit *Services.AuditService) *FarmerController {
	return &FarmerController{Service: Services.NewFarmerService(db, audit)}
}

// GetFarmers retrieves all farmers, optionally filtered by name and status
func (c *FarmerController) GetFarmers(ctx *fiber.Ctx) error {
	filter := Services.FarmerFilter{
		Name:   ctx.Query("name"),
		Status: ctx.Query("status"),
	}

	farmers, err := c.Service.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(farmers)
}

// GetFarmer retrieves a single farmer by ID
func (c *FarmerController) GetFarmer(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	farmer, err := c.Service.Get(id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(farmer)
}

// CreateFarmer creates a new farmer
func (c *FarmerController) CreateFarmer(ctx *fiber.Ctx) error {
	var input Services.CreateFarmerInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	farmer, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(farmer)
}

// UpdateFarmer updates an existing farmer
func (c *FarmerController) UpdateFarmer(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input Services.UpdateFarmerInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	farmer, err := c.Service.Update(id, input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(farmer)
}

// DeleteFarmer deletes a farmer
func (c *FarmerController) DeleteFarmer(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	if err := c.Service.Delete(id, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Farmer deleted successfully"})
}
