package Controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// ReportController exports ledger data as spreadsheets
type ReportController struct {
	Sales    *Services.SaleService
	Expenses *Services.ExpenseService
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		Sales:    Services.NewSaleService(db, nil),
		Expenses: Services.NewExpenseService(db, nil),
	}
}

// ExportSales writes the filtered sales ledger into an xlsx workbook and
// streams it back as an attachment
func (c *ReportController) ExportSales(ctx *fiber.Ctx) error {
	filter := Services.SaleFilter{
		StartDate:     ctx.Query("startDate"),
		EndDate:       ctx.Query("endDate"),
		Customer:      ctx.Query("customer"),
		ProductType:   ctx.Query("productType"),
		PaymentStatus: ctx.Query("paymentStatus"),
	}
	sales, err := c.Sales.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}

	file := excelize.NewFile()
	defer file.Close()
	sheet := "Sales"
	file.SetSheetName("Sheet1", sheet)

	headers := []string{"Invoice", "Date", "Customer", "Retailer", "Product", "Quantity", "Unit", "Unit Price", "Total", "Received", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	totalAmount := decimal.Zero
	totalReceived := decimal.Zero
	for i, sale := range sales {
		row := i + 2
		retailerName := ""
		if sale.Retailer != nil {
			retailerName = sale.Retailer.Name
		}
		values := []interface{}{
			sale.InvoiceNumber,
			sale.SaleDate,
			sale.CustomerName,
			retailerName,
			sale.ProductType,
			sale.Quantity.InexactFloat64(),
			sale.Unit,
			sale.UnitPrice.InexactFloat64(),
			sale.TotalAmount.InexactFloat64(),
			sale.AmountReceived.InexactFloat64(),
			sale.PaymentStatus,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			file.SetCellValue(sheet, cell, value)
		}
		totalAmount = totalAmount.Add(sale.TotalAmount)
		totalReceived = totalReceived.Add(sale.AmountReceived)
	}

	summaryRow := len(sales) + 3
	file.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Totals")
	file.SetCellValue(sheet, fmt.Sprintf("I%d", summaryRow), totalAmount.InexactFloat64())
	file.SetCellValue(sheet, fmt.Sprintf("J%d", summaryRow), totalReceived.InexactFloat64())

	fileName := fmt.Sprintf("sales_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return file.Write(ctx.Response().BodyWriter())
}

// ExportExpenses writes the filtered expense ledger into an xlsx workbook
func (c *ReportController) ExportExpenses(ctx *fiber.Ctx) error {
	filter := Services.ExpenseFilter{
		StartDate:   ctx.Query("startDate"),
		EndDate:     ctx.Query("endDate"),
		Category:    ctx.Query("category"),
		Description: ctx.Query("description"),
	}
	expenses, err := c.Expenses.List(filter)
	if err != nil {
		return serviceError(ctx, err)
	}

	file := excelize.NewFile()
	defer file.Close()
	sheet := "Expenses"
	file.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Category", "Description", "Amount", "Payment Method", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	total := decimal.Zero
	for i, expense := range expenses {
		row := i + 2
		values := []interface{}{
			expense.ExpenseDate,
			expense.Category,
			expense.Description,
			expense.Amount.InexactFloat64(),
			expense.PaymentMethod,
			expense.Notes,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			file.SetCellValue(sheet, cell, value)
		}
		total = total.Add(expense.Amount)
	}

	summaryRow := len(expenses) + 3
	file.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	file.SetCellValue(sheet, fmt.Sprintf("D%d", summaryRow), total.InexactFloat64())

	fileName := fmt.Sprintf("expense_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return file.Write(ctx.Response().BodyWriter())
}
