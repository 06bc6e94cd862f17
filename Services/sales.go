package Services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type SaleService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewSaleService(db *gorm.DB, audit *AuditService) *SaleService {
	return &SaleService{DB: db, Audit: audit}
}

type CreateSaleInput struct {
	InvoiceNumber  string           `json:"invoice_number" validate:"required,max=50"`
	CustomerName   string           `json:"customer_name" validate:"required,max=150"`
	SaleDate       string           `json:"sale_date" validate:"required,datetime=2006-01-02"`
	ProductType    string           `json:"product_type" validate:"required,oneof=eggs meat chicks other"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Unit           string           `json:"unit" validate:"max=20"`
	UnitPrice      decimal.Decimal  `json:"unit_price"`
	PaymentStatus  string           `json:"payment_status" validate:"omitempty,oneof=paid pending partial"`
	AmountReceived *decimal.Decimal `json:"amount_received"`
	Notes          string           `json:"notes"`
	RetailerID     *uint            `json:"retailer_id"`
}

type UpdateSaleInput struct {
	InvoiceNumber  *string          `json:"invoice_number" validate:"omitempty,max=50"`
	CustomerName   *string          `json:"customer_name" validate:"omitempty,max=150"`
	SaleDate       *string          `json:"sale_date" validate:"omitempty,datetime=2006-01-02"`
	ProductType    *string          `json:"product_type" validate:"omitempty,oneof=eggs meat chicks other"`
	Quantity       *decimal.Decimal `json:"quantity"`
	Unit           *string          `json:"unit" validate:"omitempty,max=20"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	PaymentStatus  *string          `json:"payment_status" validate:"omitempty,oneof=paid pending partial"`
	AmountReceived *decimal.Decimal `json:"amount_received"`
	Notes          *string          `json:"notes"`
	RetailerID     *uint            `json:"retailer_id"`
}

type SaleFilter struct {
	StartDate     string // YYYY-MM-DD, inclusive
	EndDate       string // YYYY-MM-DD, inclusive
	Customer      string // case-insensitive substring
	ProductType   string
	PaymentStatus string
}

// Create persists a new sale. The total is always quantity * unit price,
// whatever the client may have sent.
func (s *SaleService) Create(input CreateSaleInput, actor *Actor) (Models.Sale, error) {
	var existing Models.Sale
	if err := s.DB.Where("invoice_number = ?", input.InvoiceNumber).First(&existing).Error; err == nil {
		return Models.Sale{}, conflict("sale", "invoice number", input.InvoiceNumber)
	}

	sale := Models.Sale{
		InvoiceNumber: input.InvoiceNumber,
		CustomerName:  input.CustomerName,
		SaleDate:      input.SaleDate,
		ProductType:   input.ProductType,
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		UnitPrice:     input.UnitPrice,
		TotalAmount:   input.Quantity.Mul(input.UnitPrice).Round(2),
		PaymentStatus: input.PaymentStatus,
		Notes:         input.Notes,
		RetailerID:    input.RetailerID,
	}
	if sale.PaymentStatus == "" {
		sale.PaymentStatus = Models.PaymentPending
	}
	if input.AmountReceived != nil {
		sale.AmountReceived = *input.AmountReceived
	}

	if err := s.DB.Create(&sale).Error; err != nil {
		if isUniqueViolation(err) {
			return Models.Sale{}, conflict("sale", "invoice number", input.InvoiceNumber)
		}
		return Models.Sale{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "sales", sale.ID, nil, sale)

	// A missing retailer is not an error; the reference is kept and the
	// lookup simply comes back empty.
	return s.Get(sale.ID)
}

func (s *SaleService) Get(id uint) (Models.Sale, error) {
	var sale Models.Sale
	if err := s.DB.Preload("Retailer").First(&sale, id).Error; err != nil {
		return Models.Sale{}, notFound("sale", id)
	}
	return sale, nil
}

func (s *SaleService) List(filter SaleFilter) ([]Models.Sale, error) {
	query := s.DB.Model(&Models.Sale{}).Preload("Retailer")

	if filter.StartDate != "" && filter.EndDate != "" {
		query = query.Where("sale_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	if filter.Customer != "" {
		query = query.Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(filter.Customer)+"%")
	}
	if filter.ProductType != "" {
		query = query.Where("product_type = ?", filter.ProductType)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}

	var sales []Models.Sale
	err := query.Order("sale_date DESC").Find(&sales).Error
	return sales, err
}

func (s *SaleService) Update(id uint, input UpdateSaleInput, actor *Actor) (Models.Sale, error) {
	sale, err := s.Get(id)
	if err != nil {
		return Models.Sale{}, err
	}
	before := sale

	if input.InvoiceNumber != nil && *input.InvoiceNumber != sale.InvoiceNumber {
		var existing Models.Sale
		if err := s.DB.Where("invoice_number = ? AND id <> ?", *input.InvoiceNumber, id).First(&existing).Error; err == nil {
			return Models.Sale{}, conflict("sale", "invoice number", *input.InvoiceNumber)
		}
		sale.InvoiceNumber = *input.InvoiceNumber
	}
	if input.CustomerName != nil {
		sale.CustomerName = *input.CustomerName
	}
	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}
	if input.ProductType != nil {
		sale.ProductType = *input.ProductType
	}
	if input.Unit != nil {
		sale.Unit = *input.Unit
	}
	if input.PaymentStatus != nil {
		sale.PaymentStatus = *input.PaymentStatus
	}
	if input.AmountReceived != nil {
		sale.AmountReceived = *input.AmountReceived
	}
	if input.Notes != nil {
		sale.Notes = *input.Notes
	}
	if input.RetailerID != nil {
		sale.RetailerID = input.RetailerID
	}

	// The total only moves when one of its factors does.
	if input.Quantity != nil || input.UnitPrice != nil {
		if input.Quantity != nil {
			sale.Quantity = *input.Quantity
		}
		if input.UnitPrice != nil {
			sale.UnitPrice = *input.UnitPrice
		}
		sale.TotalAmount = sale.Quantity.Mul(sale.UnitPrice).Round(2)
	}
	sale.UpdatedAt = time.Now()

	sale.Retailer = nil // do not write the association back
	if err := s.DB.Save(&sale).Error; err != nil {
		if isUniqueViolation(err) {
			return Models.Sale{}, conflict("sale", "invoice number", sale.InvoiceNumber)
		}
		return Models.Sale{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "sales", sale.ID, before, sale)
	return s.Get(sale.ID)
}

// UpdatePaymentStatus overwrites the payment status and, when supplied,
// the amount received. No check against the total: partial overpayment is
// the bookkeeper's problem, not ours.
func (s *SaleService) UpdatePaymentStatus(id uint, status string, amountReceived *decimal.Decimal, actor *Actor) (Models.Sale, error) {
	sale, err := s.Get(id)
	if err != nil {
		return Models.Sale{}, err
	}
	before := sale

	sale.PaymentStatus = status
	if amountReceived != nil {
		sale.AmountReceived = *amountReceived
	}
	sale.UpdatedAt = time.Now()

	sale.Retailer = nil
	if err := s.DB.Save(&sale).Error; err != nil {
		return Models.Sale{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "sales", sale.ID, before, sale)
	return s.Get(sale.ID)
}

func (s *SaleService) Delete(id uint, actor *Actor) error {
	sale, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&Models.Sale{}, id).Error; err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "sales", sale.ID, sale, nil)
	return nil
}
