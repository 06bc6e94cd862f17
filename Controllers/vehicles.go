package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// VehicleController handles vehicle-related API endpoints
type VehicleController struct {
	Service *Services.VehicleService
}

// NewVehicleController creates a new VehicleController
func NewVehicleController(db *gorm.DB, audit *Services.AuditService) *VehicleController {
	return &VehicleController{Service: Services.NewVehicleService(db, audit)}
}

// GetVehicles retrieves all vehicles, optionally filtered
func (c *VehicleController) GetVehicles(ctx *fiber.Ctx) error {
	filter := Services.VehicleFilter{
		DriverName: ctx.Query("driver"),
		Status:     ctx.Query("status"),
	}

	vehicles, err := c.Service.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(vehicles)
}

// GetVehicle retrieves a single vehicle by ID
func (c *VehicleController) GetVehicle(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	vehicle, err := c.Service.Get(id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(vehicle)
}

// CreateVehicle creates a new vehicle
func (c *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {
	var input Services.CreateVehicleInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	vehicle, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(vehicle)
}

// UpdateVehicle updates an existing vehicle
func (c *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input Services.UpdateVehicleInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	vehicle, err := c.Service.Update(id, input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(vehicle)
}

// DeleteVehicle deletes a vehicle
func (c *VehicleController) DeleteVehicle(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	if err := c.Service.Delete(id, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}
