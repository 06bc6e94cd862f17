package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderPending   = "pending"
	OrderReceived  = "received"
	OrderCancelled = "cancelled"
)

type PurchaseOrder struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	OrderNumber  string `json:"order_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	SupplierName string `json:"supplier_name" gorm:"type:varchar(150);not null"`
	OrderDate    string `json:"order_date" gorm:"type:date;index"`
	DueDate      string `json:"due_date" gorm:"type:date"`
	Status       string `json:"status" gorm:"type:varchar(20);default:'pending'"`
	// TotalAmount is the sum of the line totals of the current items.
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:numeric(14,2);default:0"`
	Notes       string          `json:"notes" gorm:"type:text"`

	// Owned set: items are created, replaced and deleted together with
	// the order, inside the same transaction.
	Items []PurchaseOrderItem `json:"items" gorm:"foreignKey:PurchaseOrderID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PurchaseOrderItem struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	PurchaseOrderID uint            `json:"purchase_order_id" gorm:"index;not null"`
	Description     string          `json:"description" gorm:"type:text;not null"`
	Quantity        decimal.Decimal `json:"quantity" gorm:"type:numeric(14,2)"`
	Unit            string          `json:"unit" gorm:"type:varchar(20)"`
	UnitCost        decimal.Decimal `json:"unit_cost" gorm:"type:numeric(14,2)"`
	// LineTotal is Quantity * UnitCost, recomputed on every write.
	LineTotal decimal.Decimal `json:"line_total" gorm:"type:numeric(14,2)"`
}
