package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// PurchaseController handles purchase-order API endpoints
type PurchaseController struct {
	Service *Services.PurchaseService
}

// NewPurchaseController creates a new PurchaseController
func NewPurchaseController(db *gorm.DB, audit *Services.AuditService) *PurchaseController {
	return &PurchaseController{Service: Services.NewPurchaseService(db, audit)}
}

// GetPurchaseOrders retrieves purchase orders filtered by date range,
// supplier and status
func (c *PurchaseController) GetPurchaseOrders(ctx *fiber.Ctx) error {
	filter := Services.PurchaseOrderFilter{
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
		Supplier:  ctx.Query("supplier"),
		Status:    ctx.Query("status"),
	}

	orders, err := c.Service.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(orders)
}

// GetPurchaseOrder retrieves a single order with its items
func (c *PurchaseController) GetPurchaseOrder(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	order, err := c.Service.Get(id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(order)
}

// CreatePurchaseOrder creates an order together with its items
func (c *PurchaseController) CreatePurchaseOrder(ctx *fiber.Ctx) error {
	var input Services.CreatePurchaseOrderInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	order, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(order)
}

// UpdatePurchaseOrder updates an order; supplying items replaces the
// whole item set
func (c *PurchaseController) UpdatePurchaseOrder(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input Services.UpdatePurchaseOrderInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	order, err := c.Service.Update(id, input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(order)
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending received cancelled"`
}

// UpdateOrderStatus overwrites the order status
func (c *PurchaseController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input UpdateOrderStatusInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	order, err := c.Service.UpdateStatus(id, input.Status, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(order)
}

// DeletePurchaseOrder deletes an order and all its items
func (c *PurchaseController) DeletePurchaseOrder(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	if err := c.Service.Delete(id, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Purchase order deleted successfully"})
}
