package Services

import (
	"testing"

	"github.com/shopspring/decimal"

	"AzizPoultry/Models"
)

func newSaleInput(invoice string) CreateSaleInput {
	return CreateSaleInput{
		InvoiceNumber: invoice,
		CustomerName:  "Kumar Traders",
		SaleDate:      "2026-08-15",
		ProductType:   Models.ProductEggs,
		Quantity:      decimal.NewFromInt(10),
		Unit:          "trays",
		UnitPrice:     decimal.RequireFromString("5.00"),
	}
}

func TestCreateSaleComputesTotal(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	sale, err := service.Create(newSaleInput("INV-001"), testActor())
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	if !sale.TotalAmount.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("total = %s, want 50.00", sale.TotalAmount)
	}
	if sale.PaymentStatus != Models.PaymentPending {
		t.Errorf("payment status = %q, want pending", sale.PaymentStatus)
	}
}

func TestCreateSaleDuplicateInvoice(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	if _, err := service.Create(newSaleInput("INV-001"), testActor()); err != nil {
		t.Fatalf("create sale: %v", err)
	}

	_, err := service.Create(newSaleInput("INV-001"), testActor())
	if !IsConflict(err) {
		t.Fatalf("duplicate invoice: got %v, want conflict", err)
	}
}

func TestUpdateSaleRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	sale, err := service.Create(newSaleInput("INV-002"), testActor())
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	quantity := decimal.NewFromInt(20)
	updated, err := service.Update(sale.ID, UpdateSaleInput{Quantity: &quantity}, testActor())
	if err != nil {
		t.Fatalf("update sale: %v", err)
	}

	if !updated.TotalAmount.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("total = %s, want 100.00", updated.TotalAmount)
	}
	// Untouched fields survive the partial update
	if updated.CustomerName != "Kumar Traders" {
		t.Errorf("customer = %q, want Kumar Traders", updated.CustomerName)
	}
	if updated.InvoiceNumber != "INV-002" {
		t.Errorf("invoice = %q, want INV-002", updated.InvoiceNumber)
	}
}

func TestUpdateSaleWithoutPriceFieldsKeepsTotal(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	sale, err := service.Create(newSaleInput("INV-003"), testActor())
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	notes := "delivered late"
	updated, err := service.Update(sale.ID, UpdateSaleInput{Notes: &notes}, testActor())
	if err != nil {
		t.Fatalf("update sale: %v", err)
	}
	if !updated.TotalAmount.Equal(sale.TotalAmount) {
		t.Errorf("total changed from %s to %s on a notes-only update", sale.TotalAmount, updated.TotalAmount)
	}
}

func TestUpdateSaleDuplicateInvoice(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	if _, err := service.Create(newSaleInput("INV-004"), testActor()); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	second, err := service.Create(newSaleInput("INV-005"), testActor())
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	taken := "INV-004"
	if _, err := service.Update(second.ID, UpdateSaleInput{InvoiceNumber: &taken}, testActor()); !IsConflict(err) {
		t.Fatalf("update to taken invoice: got %v, want conflict", err)
	}

	// Re-submitting its own invoice number is not a conflict
	own := "INV-005"
	if _, err := service.Update(second.ID, UpdateSaleInput{InvoiceNumber: &own}, testActor()); err != nil {
		t.Fatalf("update with own invoice: %v", err)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	sale, err := service.Create(newSaleInput("INV-006"), testActor())
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	received := decimal.RequireFromString("30.00")
	updated, err := service.UpdatePaymentStatus(sale.ID, Models.PaymentPartial, &received, testActor())
	if err != nil {
		t.Fatalf("update payment status: %v", err)
	}
	if updated.PaymentStatus != Models.PaymentPartial {
		t.Errorf("status = %q, want partial", updated.PaymentStatus)
	}
	if !updated.AmountReceived.Equal(received) {
		t.Errorf("amount received = %s, want 30.00", updated.AmountReceived)
	}

	// Status alone, amount untouched
	updated, err = service.UpdatePaymentStatus(sale.ID, Models.PaymentPaid, nil, testActor())
	if err != nil {
		t.Fatalf("update payment status: %v", err)
	}
	if updated.PaymentStatus != Models.PaymentPaid {
		t.Errorf("status = %q, want paid", updated.PaymentStatus)
	}
	if !updated.AmountReceived.Equal(received) {
		t.Errorf("amount received = %s, want 30.00", updated.AmountReceived)
	}
}

func TestGetSaleNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	if _, err := service.Get(999); !IsNotFound(err) {
		t.Fatalf("get missing sale: got %v, want not found", err)
	}
}

func TestDeleteRetailerLeavesSaleReadable(t *testing.T) {
	db := newTestDB(t)
	audit := newTestAudit(t, db)
	retailers := NewRetailerService(db, audit)
	sales := NewSaleService(db, audit)

	retailer, err := retailers.Create(CreateRetailerInput{Name: "City Mart"}, testActor())
	if err != nil {
		t.Fatalf("create retailer: %v", err)
	}

	input := newSaleInput("INV-007")
	input.RetailerID = &retailer.ID
	sale, err := sales.Create(input, testActor())
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if sale.Retailer == nil || sale.Retailer.Name != "City Mart" {
		t.Fatalf("expected retailer preloaded on create")
	}

	if err := retailers.Delete(retailer.ID, testActor()); err != nil {
		t.Fatalf("delete retailer: %v", err)
	}

	got, err := sales.Get(sale.ID)
	if err != nil {
		t.Fatalf("get sale after retailer delete: %v", err)
	}
	if got.Retailer != nil {
		t.Errorf("retailer = %+v, want nil after delete", got.Retailer)
	}
}

func TestCreateSaleWithMissingRetailer(t *testing.T) {
	db := newFKEnforcedTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	missing := uint(999)
	input := newSaleInput("INV-008")
	input.RetailerID = &missing

	sale, err := service.Create(input, testActor())
	if err != nil {
		t.Fatalf("a retailer id that does not resolve must not fail the sale: %v", err)
	}
	if sale.RetailerID == nil || *sale.RetailerID != missing {
		t.Errorf("retailer id not stored as given: %v", sale.RetailerID)
	}
	if sale.Retailer != nil {
		t.Errorf("retailer = %+v, want null for an unresolved reference", sale.Retailer)
	}

	got, err := service.Get(sale.ID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if got.Retailer != nil {
		t.Errorf("retailer = %+v on read, want null", got.Retailer)
	}
}

func TestInvoiceUniqueIndexBacksThePrecheck(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	if _, err := service.Create(newSaleInput("INV-009"), testActor()); err != nil {
		t.Fatalf("create sale: %v", err)
	}

	// Insert behind the service's existence check, straight at the table:
	// the unique index must reject it, and the violation must be
	// recognized so the create path can surface it as a conflict.
	dup := Models.Sale{
		InvoiceNumber: "INV-009",
		CustomerName:  "Kumar Traders",
		SaleDate:      "2026-08-15",
		ProductType:   Models.ProductEggs,
	}
	err := db.Create(&dup).Error
	if err == nil {
		t.Fatalf("duplicate invoice accepted by the database")
	}
	if !isUniqueViolation(err) {
		t.Errorf("violation not recognized: %v", err)
	}
}

func TestListSalesFilters(t *testing.T) {
	db := newTestDB(t)
	service := NewSaleService(db, newTestAudit(t, db))

	first := newSaleInput("INV-010")
	first.SaleDate = "2026-08-01"
	second := newSaleInput("INV-011")
	second.SaleDate = "2026-08-20"
	second.CustomerName = "Sharma Stores"
	second.ProductType = Models.ProductMeat
	for _, input := range []CreateSaleInput{first, second} {
		if _, err := service.Create(input, testActor()); err != nil {
			t.Fatalf("create sale: %v", err)
		}
	}

	got, err := service.List(SaleFilter{StartDate: "2026-08-10", EndDate: "2026-08-31"})
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(got) != 1 || got[0].InvoiceNumber != "INV-011" {
		t.Fatalf("date filter returned %d sales, want INV-011 only", len(got))
	}

	got, err = service.List(SaleFilter{Customer: "sharma"})
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(got) != 1 || got[0].CustomerName != "Sharma Stores" {
		t.Fatalf("customer filter returned %d sales, want Sharma Stores only", len(got))
	}

	got, err = service.List(SaleFilter{ProductType: Models.ProductEggs})
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(got) != 1 || got[0].InvoiceNumber != "INV-010" {
		t.Fatalf("product filter returned %d sales, want INV-010 only", len(got))
	}
}
