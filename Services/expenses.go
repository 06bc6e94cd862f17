package Services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type ExpenseService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewExpenseService(db *gorm.DB, audit *AuditService) *ExpenseService {
	return &ExpenseService{DB: db, Audit: audit}
}

type CreateExpenseInput struct {
	ExpenseDate   string          `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Category      string          `json:"category" validate:"required,oneof=feed labor medicine utilities equipment maintenance transportation other"`
	Description   string          `json:"description" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash bank_transfer check credit_card"`
	Notes         string          `json:"notes"`
}

type UpdateExpenseInput struct {
	ExpenseDate   *string          `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
	Category      *string          `json:"category" validate:"omitempty,oneof=feed labor medicine utilities equipment maintenance transportation other"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer check credit_card"`
	Notes         *string          `json:"notes"`
}

type ExpenseFilter struct {
	StartDate   string
	EndDate     string
	Category    string
	Description string // case-insensitive substring
}

func (s *ExpenseService) Create(input CreateExpenseInput, actor *Actor) (Models.Expense, error) {
	expense := Models.Expense{
		ExpenseDate:   input.ExpenseDate,
		Category:      input.Category,
		Description:   input.Description,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}

	if err := s.DB.Create(&expense).Error; err != nil {
		return Models.Expense{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "expenses", expense.ID, nil, expense)
	return expense, nil
}

func (s *ExpenseService) Get(id uint) (Models.Expense, error) {
	var expense Models.Expense
	if err := s.DB.First(&expense, id).Error; err != nil {
		return Models.Expense{}, notFound("expense", id)
	}
	return expense, nil
}

func (s *ExpenseService) List(filter ExpenseFilter) ([]Models.Expense, error) {
	query := s.DB.Model(&Models.Expense{})

	if filter.StartDate != "" && filter.EndDate != "" {
		query = query.Where("expense_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Description != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Description)+"%")
	}

	var expenses []Models.Expense
	err := query.Order("expense_date DESC").Find(&expenses).Error
	return expenses, err
}

func (s *ExpenseService) Update(id uint, input UpdateExpenseInput, actor *Actor) (Models.Expense, error) {
	expense, err := s.Get(id)
	if err != nil {
		return Models.Expense{}, err
	}
	before := expense

	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.PaymentMethod != nil {
		expense.PaymentMethod = *input.PaymentMethod
	}
	if input.Notes != nil {
		expense.Notes = *input.Notes
	}
	expense.UpdatedAt = time.Now()

	if err := s.DB.Save(&expense).Error; err != nil {
		return Models.Expense{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "expenses", expense.ID, before, expense)
	return expense, nil
}

func (s *ExpenseService) Delete(id uint, actor *Actor) error {
	expense, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&expense).Error; err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "expenses", expense.ID, expense, nil)
	return nil
}
