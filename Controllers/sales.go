package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// SaleController handles sales-related API endpoints
type SaleController struct {
	Service *Services.SaleService
}

// NewSaleController creates a new SaleController
func NewSaleController(db *gorm.DB, audit *Services.AuditService) *SaleController {
	return &SaleController{Service: Services.NewSaleService(db, audit)}
}

// GetSales retrieves sales filtered by date range, customer, product type
// and payment status
func (c *SaleController) GetSales(ctx *fiber.Ctx) error {
	filter := Services.SaleFilter{
		StartDate:     ctx.Query("startDate"),
		EndDate:       ctx.Query("endDate"),
		Customer:      ctx.Query("customer"),
		ProductType:   ctx.Query("productType"),
		PaymentStatus: ctx.Query("paymentStatus"),
	}

	sales, err := c.Service.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(sales)
}

// GetSale retrieves a single sale by ID, retailer included
func (c *SaleController) GetSale(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	sale, err := c.Service.Get(id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(sale)
}

// CreateSale creates a new sale; the total is computed server-side
func (c *SaleController) CreateSale(ctx *fiber.Ctx) error {
	var input Services.CreateSaleInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	sale, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(sale)
}

// UpdateSale updates an existing sale
func (c *SaleController) UpdateSale(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input Services.UpdateSaleInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	sale, err := c.Service.Update(id, input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(sale)
}

type UpdatePaymentStatusInput struct {
	PaymentStatus  string           `json:"payment_status" validate:"required,oneof=paid pending partial"`
	AmountReceived *decimal.Decimal `json:"amount_received"`
}

// UpdatePaymentStatus overwrites the payment status and optionally the
// amount received
func (c *SaleController) UpdatePaymentStatus(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input UpdatePaymentStatusInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	sale, err := c.Service.UpdatePaymentStatus(id, input.PaymentStatus, input.AmountReceived, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(sale)
}

// DeleteSale deletes a sale
func (c *SaleController) DeleteSale(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	if err := c.Service.Delete(id, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Sale deleted successfully"})
}
