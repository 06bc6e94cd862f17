package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// DashboardController serves the dashboard aggregates
type DashboardController struct {
	Service *Services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: Services.NewDashboardService(db)}
}

// GetKPIs returns the headline numbers for the requested period
// (defaults to the current month)
func (c *DashboardController) GetKPIs(ctx *fiber.Ctx) error {
	kpis, err := c.Service.KPIs(ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(kpis)
}

// GetRevenueByProductType breaks revenue down per product type
func (c *DashboardController) GetRevenueByProductType(ctx *fiber.Ctx) error {
	results, err := c.Service.RevenueByProductType(ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(results)
}

// GetExpensesByCategory breaks expenses down per category
func (c *DashboardController) GetExpensesByCategory(ctx *fiber.Ctx) error {
	results, err := c.Service.ExpensesByCategory(ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(results)
}

// GetRecentSales returns the latest sales
func (c *DashboardController) GetRecentSales(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	sales, err := c.Service.RecentSales(limit)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(sales)
}

// GetRecentExpenses returns the latest expenses
func (c *DashboardController) GetRecentExpenses(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	expenses, err := c.Service.RecentExpenses(limit)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(expenses)
}

// GetMonthlyTrends returns revenue vs expenses per month
func (c *DashboardController) GetMonthlyTrends(ctx *fiber.Ctx) error {
	months, _ := strconv.Atoi(ctx.Query("months", "6"))
	summaries, err := c.Service.MonthlyRevenueVsExpenses(months)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(summaries)
}
