package Services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"AzizPoultry/Models"
)

// DashboardService computes the read-side aggregates the dashboard
// renders. Everything here is a scan over the live tables; nothing is
// pre-maintained.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DashboardKPIs struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`
	TotalVehicles int64           `json:"total_vehicles"`
	TotalSales    int64           `json:"total_sales"`
	Period        Period          `json:"period"`
}

// currentMonthRange fills missing bounds with the running month.
func currentMonthRange(startDate, endDate string) (string, string) {
	now := time.Now()
	if startDate == "" {
		startDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	}
	if endDate == "" {
		endDate = now.Format("2006-01-02")
	}
	return startDate, endDate
}

func (s *DashboardService) sumColumn(model interface{}, column, dateColumn, startDate, endDate string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := s.DB.Model(model).
		Select("COALESCE(SUM("+column+"), 0)").
		Where(dateColumn+" BETWEEN ? AND ?", startDate, endDate).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (s *DashboardService) KPIs(startDate, endDate string) (DashboardKPIs, error) {
	startDate, endDate = currentMonthRange(startDate, endDate)

	revenue, err := s.sumColumn(&Models.Sale{}, "total_amount", "sale_date", startDate, endDate)
	if err != nil {
		return DashboardKPIs{}, err
	}
	expenses, err := s.sumColumn(&Models.Expense{}, "amount", "expense_date", startDate, endDate)
	if err != nil {
		return DashboardKPIs{}, err
	}

	kpis := DashboardKPIs{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		Period:        Period{StartDate: startDate, EndDate: endDate},
	}
	kpis.Profit = kpis.TotalRevenue.Sub(kpis.TotalExpenses)

	if err := s.DB.Model(&Models.Vehicle{}).
		Where("status = ?", Models.StatusActive).
		Count(&kpis.TotalVehicles).Error; err != nil {
		return kpis, err
	}
	if err := s.DB.Model(&Models.Sale{}).
		Where("sale_date BETWEEN ? AND ?", startDate, endDate).
		Count(&kpis.TotalSales).Error; err != nil {
		return kpis, err
	}

	return kpis, nil
}

type ProductTypeRevenue struct {
	ProductType string          `json:"product_type"`
	Revenue     decimal.Decimal `json:"revenue"`
	Count       int64           `json:"count"`
}

func (s *DashboardService) RevenueByProductType(startDate, endDate string) ([]ProductTypeRevenue, error) {
	startDate, endDate = currentMonthRange(startDate, endDate)

	var results []ProductTypeRevenue
	err := s.DB.Model(&Models.Sale{}).
		Select("product_type, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS count").
		Where("sale_date BETWEEN ? AND ?", startDate, endDate).
		Group("product_type").
		Scan(&results).Error
	return results, err
}

type CategoryExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int64           `json:"count"`
}

func (s *DashboardService) ExpensesByCategory(startDate, endDate string) ([]CategoryExpense, error) {
	startDate, endDate = currentMonthRange(startDate, endDate)

	var results []CategoryExpense
	err := s.DB.Model(&Models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS count").
		Where("expense_date BETWEEN ? AND ?", startDate, endDate).
		Group("category").
		Scan(&results).Error
	return results, err
}

func (s *DashboardService) RecentSales(limit int) ([]Models.Sale, error) {
	if limit <= 0 {
		limit = 10
	}
	var sales []Models.Sale
	err := s.DB.Preload("Retailer").
		Order("sale_date DESC, created_at DESC").
		Limit(limit).Find(&sales).Error
	return sales, err
}

func (s *DashboardService) RecentExpenses(limit int) ([]Models.Expense, error) {
	if limit <= 0 {
		limit = 10
	}
	var expenses []Models.Expense
	err := s.DB.Order("expense_date DESC, created_at DESC").
		Limit(limit).Find(&expenses).Error
	return expenses, err
}

type MonthlySummary struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// MonthlyRevenueVsExpenses walks back over the last n calendar months and
// sums revenue and expenses per month, oldest first.
func (s *DashboardService) MonthlyRevenueVsExpenses(months int) ([]MonthlySummary, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	summaries := make([]MonthlySummary, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, -1)
		startDate := monthStart.Format("2006-01-02")
		endDate := monthEnd.Format("2006-01-02")

		revenue, err := s.sumColumn(&Models.Sale{}, "total_amount", "sale_date", startDate, endDate)
		if err != nil {
			return nil, err
		}
		expenses, err := s.sumColumn(&Models.Expense{}, "amount", "expense_date", startDate, endDate)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, MonthlySummary{
			Month:    monthStart.Format("Jan 2006"),
			Revenue:  revenue,
			Expenses: expenses,
			Profit:   revenue.Sub(expenses),
		})
	}

	return summaries, nil
}
