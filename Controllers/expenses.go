package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// ExpenseController handles expense-related API endpoints
type ExpenseController struct {
	Service *Services.ExpenseService
}

// NewExpenseController creates a new ExpenseController
func NewExpenseController(db *gorm.DB, audit *Services.AuditService) *ExpenseController {
	return &ExpenseController{Service: Services.NewExpenseService(db, audit)}
}

// GetExpenses retrieves expenses filtered by date range, category and
// description
func (c *ExpenseController) GetExpenses(ctx *fiber.Ctx) error {
	filter := Services.ExpenseFilter{
		StartDate:   ctx.Query("startDate"),
		EndDate:     ctx.Query("endDate"),
		Category:    ctx.Query("category"),
		Description: ctx.Query("description"),
	}

	expenses, err := c.Service.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(expenses)
}

// GetExpense retrieves a single expense by ID
func (c *ExpenseController) GetExpense(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	expense, err := c.Service.Get(id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(expense)
}

// CreateExpense creates a new expense
func (c *ExpenseController) CreateExpense(ctx *fiber.Ctx) error {
	var input Services.CreateExpenseInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	expense, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(expense)
}

// UpdateExpense updates an existing expense
func (c *ExpenseController) UpdateExpense(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input Services.UpdateExpenseInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	expense, err := c.Service.Update(id, input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(expense)
}

// DeleteExpense deletes an expense
func (c *ExpenseController) DeleteExpense(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	if err := c.Service.Delete(id, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
