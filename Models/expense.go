package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ExpenseFeed           = "feed"
	ExpenseLabor          = "labor"
	ExpenseMedicine       = "medicine"
	ExpenseUtilities      = "utilities"
	ExpenseEquipment      = "equipment"
	ExpenseMaintenance    = "maintenance"
	ExpenseTransportation = "transportation"
	ExpenseOther          = "other"

	PayCash         = "cash"
	PayBankTransfer = "bank_transfer"
	PayCheck        = "check"
	PayCreditCard   = "credit_card"
)

type Expense struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	ExpenseDate   string          `json:"expense_date" gorm:"type:date;index"`
	Category      string          `json:"category" gorm:"type:varchar(20);not null"`
	Description   string          `json:"description" gorm:"type:text;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(14,2)"`
	PaymentMethod string          `json:"payment_method" gorm:"type:varchar(20);not null"`
	Notes         string          `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
