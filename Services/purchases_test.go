package Services

import (
	"testing"

	"github.com/shopspring/decimal"

	"AzizPoultry/Models"
)

func newOrderInput(number string) CreatePurchaseOrderInput {
	return CreatePurchaseOrderInput{
		OrderNumber:  number,
		SupplierName: "Feed Supply Co",
		OrderDate:    "2026-08-01",
		Items: []PurchaseOrderItemInput{
			{Description: "Layer feed", Quantity: decimal.NewFromInt(2), Unit: "bags", UnitCost: decimal.RequireFromString("10.00")},
			{Description: "Grit", Quantity: decimal.NewFromInt(3), Unit: "bags", UnitCost: decimal.RequireFromString("5.00")},
		},
	}
}

func TestCreatePurchaseOrderComputesTotal(t *testing.T) {
	db := newTestDB(t)
	service := NewPurchaseService(db, newTestAudit(t, db))

	order, err := service.Create(newOrderInput("PO-001"), testActor())
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if !order.TotalAmount.Equal(decimal.RequireFromString("35.00")) {
		t.Errorf("total = %s, want 35.00", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if !order.Items[0].LineTotal.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("line total = %s, want 20.00", order.Items[0].LineTotal)
	}
	if order.Status != Models.OrderPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
}

func TestCreatePurchaseOrderDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	service := NewPurchaseService(db, newTestAudit(t, db))

	if _, err := service.Create(newOrderInput("PO-001"), testActor()); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := service.Create(newOrderInput("PO-001"), testActor()); !IsConflict(err) {
		t.Fatalf("duplicate order number: got %v, want conflict", err)
	}
}

func TestUpdatePurchaseOrderReplacesItems(t *testing.T) {
	db := newTestDB(t)
	service := NewPurchaseService(db, newTestAudit(t, db))

	order, err := service.Create(newOrderInput("PO-002"), testActor())
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	items := []PurchaseOrderItemInput{
		{Description: "Starter feed", Quantity: decimal.NewFromInt(4), Unit: "bags", UnitCost: decimal.RequireFromString("7.50")},
	}
	updated, err := service.Update(order.ID, UpdatePurchaseOrderInput{Items: &items}, testActor())
	if err != nil {
		t.Fatalf("update order: %v", err)
	}

	if len(updated.Items) != 1 {
		t.Fatalf("items = %d, want the replacement set only", len(updated.Items))
	}
	if updated.Items[0].Description != "Starter feed" {
		t.Errorf("item = %q, want Starter feed", updated.Items[0].Description)
	}
	if !updated.TotalAmount.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("total = %s, want 30.00", updated.TotalAmount)
	}

	// Old item rows are gone, not just detached
	var count int64
	db.Model(&Models.PurchaseOrderItem{}).Where("purchase_order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("item rows = %d, want 1", count)
	}
	// Order fields not in the input are untouched
	if updated.SupplierName != "Feed Supply Co" {
		t.Errorf("supplier = %q, want Feed Supply Co", updated.SupplierName)
	}
}

func TestUpdatePurchaseOrderWithoutItemsKeepsTotal(t *testing.T) {
	db := newTestDB(t)
	service := NewPurchaseService(db, newTestAudit(t, db))

	order, err := service.Create(newOrderInput("PO-003"), testActor())
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	supplier := "New Supply Co"
	updated, err := service.Update(order.ID, UpdatePurchaseOrderInput{SupplierName: &supplier}, testActor())
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if !updated.TotalAmount.Equal(order.TotalAmount) {
		t.Errorf("total changed from %s to %s with no item change", order.TotalAmount, updated.TotalAmount)
	}
	if len(updated.Items) != 2 {
		t.Errorf("items = %d, want 2", len(updated.Items))
	}
}

func TestUpdateOrderStatusAllowsAnyTransition(t *testing.T) {
	db := newTestDB(t)
	service := NewPurchaseService(db, newTestAudit(t, db))

	order, err := service.Create(newOrderInput("PO-004"), testActor())
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	for _, status := range []string{Models.OrderReceived, Models.OrderCancelled, Models.OrderPending} {
		updated, err := service.UpdateStatus(order.ID, status, testActor())
		if err != nil {
			t.Fatalf("update status to %s: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %q, want %q", updated.Status, status)
		}
	}
}

func TestDeletePurchaseOrderRemovesItems(t *testing.T) {
	db := newTestDB(t)
	service := NewPurchaseService(db, newTestAudit(t, db))

	order, err := service.Create(newOrderInput("PO-005"), testActor())
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := service.Delete(order.ID, testActor()); err != nil {
		t.Fatalf("delete order: %v", err)
	}

	if _, err := service.Get(order.ID); !IsNotFound(err) {
		t.Fatalf("get deleted order: got %v, want not found", err)
	}

	var count int64
	db.Model(&Models.PurchaseOrderItem{}).Where("purchase_order_id = ?", order.ID).Count(&count)
	if count != 0 {
		t.Errorf("orphaned item rows = %d, want 0", count)
	}
}
