package Services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type InventoryService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewInventoryService(db *gorm.DB, audit *AuditService) *InventoryService {
	return &InventoryService{DB: db, Audit: audit}
}

type CreateInventoryItemInput struct {
	ItemType          string          `json:"item_type" validate:"required,max=50"`
	ItemName          string          `json:"item_name" validate:"required,max=150"`
	Quantity          decimal.Decimal `json:"quantity"`
	Unit              string          `json:"unit" validate:"max=20"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level"`
	CurrentStockLevel decimal.Decimal `json:"current_stock_level"`
	Notes             string          `json:"notes"`
}

type UpdateInventoryItemInput struct {
	ItemType          *string          `json:"item_type" validate:"omitempty,max=50"`
	ItemName          *string          `json:"item_name" validate:"omitempty,max=150"`
	Quantity          *decimal.Decimal `json:"quantity"`
	Unit              *string          `json:"unit" validate:"omitempty,max=20"`
	MinimumStockLevel *decimal.Decimal `json:"minimum_stock_level"`
	CurrentStockLevel *decimal.Decimal `json:"current_stock_level"`
	Notes             *string          `json:"notes"`
}

type InventoryFilter struct {
	// Inclusive date range over LastUpdated.
	StartDate string
	EndDate   string
	ItemType  string
}

func (s *InventoryService) Create(input CreateInventoryItemInput, actor *Actor) (Models.InventoryItem, error) {
	item := Models.InventoryItem{
		ItemType:          input.ItemType,
		ItemName:          input.ItemName,
		Quantity:          input.Quantity,
		Unit:              input.Unit,
		MinimumStockLevel: input.MinimumStockLevel,
		CurrentStockLevel: input.CurrentStockLevel,
		Notes:             input.Notes,
		LastUpdated:       time.Now(),
	}

	if err := s.DB.Create(&item).Error; err != nil {
		return Models.InventoryItem{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "inventory_items", item.ID, nil, item)
	return item, nil
}

func (s *InventoryService) Get(id uint) (Models.InventoryItem, error) {
	var item Models.InventoryItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return Models.InventoryItem{}, notFound("inventory item", id)
	}
	return item, nil
}

func (s *InventoryService) List(filter InventoryFilter) ([]Models.InventoryItem, error) {
	query := s.DB.Model(&Models.InventoryItem{})

	if filter.StartDate != "" && filter.EndDate != "" {
		if start, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			query = query.Where("last_updated >= ?", start)
		}
		if end, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			query = query.Where("last_updated < ?", end.AddDate(0, 0, 1))
		}
	}
	if filter.ItemType != "" {
		query = query.Where("item_type = ?", filter.ItemType)
	}

	var items []Models.InventoryItem
	err := query.Order("item_name ASC").Find(&items).Error
	return items, err
}

func (s *InventoryService) Update(id uint, input UpdateInventoryItemInput, actor *Actor) (Models.InventoryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return Models.InventoryItem{}, err
	}
	before := item

	if input.ItemType != nil {
		item.ItemType = *input.ItemType
	}
	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.MinimumStockLevel != nil {
		item.MinimumStockLevel = *input.MinimumStockLevel
	}
	if input.CurrentStockLevel != nil {
		item.CurrentStockLevel = *input.CurrentStockLevel
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}
	item.LastUpdated = time.Now()
	item.UpdatedAt = time.Now()

	if err := s.DB.Save(&item).Error; err != nil {
		return Models.InventoryItem{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "inventory_items", item.ID, before, item)
	return item, nil
}

func (s *InventoryService) Delete(id uint, actor *Actor) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&item).Error; err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "inventory_items", item.ID, item, nil)
	return nil
}

// LowStock returns every item at or below its minimum threshold. The
// boundary is inclusive: an item exactly at the minimum is low.
func (s *InventoryService) LowStock() ([]Models.InventoryItem, error) {
	var items []Models.InventoryItem
	err := s.DB.Where("current_stock_level <= minimum_stock_level").
		Order("item_name ASC").Find(&items).Error
	return items, err
}

// TotalValue sums current stock levels across all items. Inventory items
// carry no unit cost, so this is a quantity aggregate, not a monetary one.
func (s *InventoryService) TotalValue() (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := s.DB.Model(&Models.InventoryItem{}).
		Select("COALESCE(SUM(current_stock_level), 0)").Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

type InventoryTypeSummary struct {
	ItemType      string          `json:"item_type"`
	Count         int64           `json:"count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// ByType groups items by type with a count and a stock sum per group.
func (s *InventoryService) ByType() ([]InventoryTypeSummary, error) {
	var summaries []InventoryTypeSummary
	err := s.DB.Model(&Models.InventoryItem{}).
		Select("item_type, COUNT(id) AS count, COALESCE(SUM(current_stock_level), 0) AS total_quantity").
		Group("item_type").
		Order("item_type ASC").
		Scan(&summaries).Error
	return summaries, err
}
