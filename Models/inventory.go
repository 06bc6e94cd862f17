package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	ItemType          string          `json:"item_type" gorm:"type:varchar(50);index"`
	ItemName          string          `json:"item_name" gorm:"type:varchar(150);not null"`
	Quantity          decimal.Decimal `json:"quantity" gorm:"type:numeric(14,2);default:0"`
	Unit              string          `json:"unit" gorm:"type:varchar(20)"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level" gorm:"type:numeric(14,2);default:0"`
	CurrentStockLevel decimal.Decimal `json:"current_stock_level" gorm:"type:numeric(14,2);default:0"`
	Notes             string          `json:"notes" gorm:"type:text"`
	// LastUpdated is refreshed on every mutation, independently of UpdatedAt.
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LowStock reports whether the item sits at or below its minimum threshold.
func (i *InventoryItem) LowStock() bool {
	return i.CurrentStockLevel.LessThanOrEqual(i.MinimumStockLevel)
}
