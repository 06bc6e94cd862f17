package Services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type PurchaseService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewPurchaseService(db *gorm.DB, audit *AuditService) *PurchaseService {
	return &PurchaseService{DB: db, Audit: audit}
}

type PurchaseOrderItemInput struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" validate:"max=20"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

type CreatePurchaseOrderInput struct {
	OrderNumber  string                   `json:"order_number" validate:"required,max=50"`
	SupplierName string                   `json:"supplier_name" validate:"required,max=150"`
	OrderDate    string                   `json:"order_date" validate:"required,datetime=2006-01-02"`
	DueDate      string                   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status       string                   `json:"status" validate:"omitempty,oneof=pending received cancelled"`
	Notes        string                   `json:"notes"`
	Items        []PurchaseOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type UpdatePurchaseOrderInput struct {
	OrderNumber  *string `json:"order_number" validate:"omitempty,max=50"`
	SupplierName *string `json:"supplier_name" validate:"omitempty,max=150"`
	OrderDate    *string `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate      *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending received cancelled"`
	Notes        *string `json:"notes"`
	// Items, when present, fully replace the existing set. Partial item
	// edits are not supported at this layer.
	Items *[]PurchaseOrderItemInput `json:"items" validate:"omitempty,min=1,dive"`
}

type PurchaseOrderFilter struct {
	StartDate string
	EndDate   string
	Supplier  string
	Status    string
}

func buildItems(orderID uint, inputs []PurchaseOrderItemInput) ([]Models.PurchaseOrderItem, decimal.Decimal) {
	items := make([]Models.PurchaseOrderItem, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		lineTotal := in.Quantity.Mul(in.UnitCost).Round(2)
		items = append(items, Models.PurchaseOrderItem{
			PurchaseOrderID: orderID,
			Description:     in.Description,
			Quantity:        in.Quantity,
			Unit:            in.Unit,
			UnitCost:        in.UnitCost,
			LineTotal:       lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return items, total
}

// Create persists the order and all its items in one transaction: either
// everything is visible afterwards or nothing is.
func (s *PurchaseService) Create(input CreatePurchaseOrderInput, actor *Actor) (Models.PurchaseOrder, error) {
	var existing Models.PurchaseOrder
	if err := s.DB.Where("order_number = ?", input.OrderNumber).First(&existing).Error; err == nil {
		return Models.PurchaseOrder{}, conflict("purchase order", "number", input.OrderNumber)
	}

	order := Models.PurchaseOrder{
		OrderNumber:  input.OrderNumber,
		SupplierName: input.SupplierName,
		OrderDate:    input.OrderDate,
		DueDate:      input.DueDate,
		Status:       input.Status,
		Notes:        input.Notes,
	}
	if order.Status == "" {
		order.Status = Models.OrderPending
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		_, total := buildItems(0, input.Items)
		order.TotalAmount = total

		if err := tx.Omit("Items").Create(&order).Error; err != nil {
			return err
		}

		items, _ := buildItems(order.ID, input.Items)
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return Models.PurchaseOrder{}, conflict("purchase order", "number", input.OrderNumber)
		}
		return Models.PurchaseOrder{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "purchase_orders", order.ID, nil, order)
	return s.Get(order.ID)
}

func (s *PurchaseService) Get(id uint) (Models.PurchaseOrder, error) {
	var order Models.PurchaseOrder
	if err := s.DB.Preload("Items").First(&order, id).Error; err != nil {
		return Models.PurchaseOrder{}, notFound("purchase order", id)
	}
	return order, nil
}

func (s *PurchaseService) List(filter PurchaseOrderFilter) ([]Models.PurchaseOrder, error) {
	query := s.DB.Model(&Models.PurchaseOrder{}).Preload("Items")

	if filter.StartDate != "" && filter.EndDate != "" {
		query = query.Where("order_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	if filter.Supplier != "" {
		query = query.Where("LOWER(supplier_name) LIKE ?", "%"+strings.ToLower(filter.Supplier)+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var orders []Models.PurchaseOrder
	err := query.Order("order_date DESC").Find(&orders).Error
	return orders, err
}

// Update patches the order fields; when items are supplied the existing
// set is deleted, the new set inserted and the total recomputed, all in
// one transaction with the order row itself.
func (s *PurchaseService) Update(id uint, input UpdatePurchaseOrderInput, actor *Actor) (Models.PurchaseOrder, error) {
	order, err := s.Get(id)
	if err != nil {
		return Models.PurchaseOrder{}, err
	}
	before := order

	if input.OrderNumber != nil && *input.OrderNumber != order.OrderNumber {
		var existing Models.PurchaseOrder
		if err := s.DB.Where("order_number = ? AND id <> ?", *input.OrderNumber, id).First(&existing).Error; err == nil {
			return Models.PurchaseOrder{}, conflict("purchase order", "number", *input.OrderNumber)
		}
		order.OrderNumber = *input.OrderNumber
	}
	if input.SupplierName != nil {
		order.SupplierName = *input.SupplierName
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.DueDate != nil {
		order.DueDate = *input.DueDate
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}
	order.UpdatedAt = time.Now()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if input.Items != nil {
			if err := tx.Where("purchase_order_id = ?", id).Delete(&Models.PurchaseOrderItem{}).Error; err != nil {
				return err
			}
			items, total := buildItems(id, *input.Items)
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
			order.TotalAmount = total
		}

		order.Items = nil
		return tx.Omit("Items").Save(&order).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return Models.PurchaseOrder{}, conflict("purchase order", "number", order.OrderNumber)
		}
		return Models.PurchaseOrder{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "purchase_orders", order.ID, before, order)
	return s.Get(id)
}

// UpdateStatus overwrites the status with no transition check; the
// original surface allowed any jump, including back to pending, and that
// looseness is kept.
func (s *PurchaseService) UpdateStatus(id uint, status string, actor *Actor) (Models.PurchaseOrder, error) {
	order, err := s.Get(id)
	if err != nil {
		return Models.PurchaseOrder{}, err
	}
	before := order

	order.Status = status
	order.UpdatedAt = time.Now()
	order.Items = nil
	if err := s.DB.Omit("Items").Save(&order).Error; err != nil {
		return Models.PurchaseOrder{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "purchase_orders", order.ID, before, order)
	return s.Get(id)
}

// Delete removes the order and all its items; no orphaned items survive.
func (s *PurchaseService) Delete(id uint, actor *Actor) error {
	order, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", id).Delete(&Models.PurchaseOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Models.PurchaseOrder{}, id).Error
	})
	if err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "purchase_orders", order.ID, order, nil)
	return nil
}
