package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProductEggs   = "eggs"
	ProductMeat   = "meat"
	ProductChicks = "chicks"
	ProductOther  = "other"

	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentPartial = "partial"
)

type Sale struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	InvoiceNumber string          `json:"invoice_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	CustomerName  string          `json:"customer_name" gorm:"type:varchar(150);not null"`
	SaleDate      string          `json:"sale_date" gorm:"type:date;index"`
	ProductType   string          `json:"product_type" gorm:"type:varchar(20);not null"`
	Quantity      decimal.Decimal `json:"quantity" gorm:"type:numeric(14,2)"`
	Unit          string          `json:"unit" gorm:"type:varchar(20)"`
	UnitPrice     decimal.Decimal `json:"unit_price" gorm:"type:numeric(14,2)"`
	// TotalAmount is always recomputed from Quantity and UnitPrice,
	// never taken from the client.
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:numeric(14,2)"`
	PaymentStatus  string          `json:"payment_status" gorm:"type:varchar(20);default:'pending'"`
	AmountReceived decimal.Decimal `json:"amount_received" gorm:"type:numeric(14,2);default:0"`
	Notes          string          `json:"notes" gorm:"type:text"`

	// Weak reference, no DB-level foreign key: the id is stored as given,
	// even when no such retailer exists, and the lookup on read simply
	// resolves to null. A retailer may also be deleted out from under a
	// sale with the same effect.
	RetailerID *uint     `json:"retailer_id" gorm:"index"`
	Retailer   *Retailer `json:"retailer,omitempty" gorm:"foreignKey:RetailerID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
