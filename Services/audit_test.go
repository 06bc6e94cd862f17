package Services

import (
	"testing"

	"AzizPoultry/Models"
)

func TestAuditAppendRequiresActionAndEntity(t *testing.T) {
	db := newTestDB(t)
	service := NewAuditService(db)

	if _, err := service.Append(Models.AuditLog{Entity: "sales"}); err == nil {
		t.Errorf("append without action accepted")
	}
	if _, err := service.Append(Models.AuditLog{Action: Models.ActionCreate}); err == nil {
		t.Errorf("append without entity accepted")
	}
	if _, err := service.Append(Models.AuditLog{Action: Models.ActionCreate, Entity: "sales"}); err != nil {
		t.Errorf("minimal valid entry rejected: %v", err)
	}
}

func TestMutationsAreAudited(t *testing.T) {
	db := newTestDB(t)
	audit := NewAuditService(db)
	service := NewFarmerService(db, audit)

	farmer, err := service.Create(CreateFarmerInput{Name: "Rahim"}, testActor())
	if err != nil {
		t.Fatalf("create farmer: %v", err)
	}
	name := "Rahim Khan"
	if _, err := service.Update(farmer.ID, UpdateFarmerInput{Name: &name}, testActor()); err != nil {
		t.Fatalf("update farmer: %v", err)
	}
	if err := service.Delete(farmer.ID, testActor()); err != nil {
		t.Fatalf("delete farmer: %v", err)
	}

	logs, err := audit.ByEntity("farmers", "1")
	if err != nil {
		t.Fatalf("audit query: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("entries = %d, want 3", len(logs))
	}

	actions := map[string]bool{}
	for _, entry := range logs {
		actions[entry.Action] = true
		if entry.UserEmail != "tester@azizpoultry.com" {
			t.Errorf("actor email = %q", entry.UserEmail)
		}
	}
	for _, want := range []string{Models.ActionCreate, Models.ActionUpdate, Models.ActionDelete} {
		if !actions[want] {
			t.Errorf("missing %s entry", want)
		}
	}
}

func TestAuditQueryFilters(t *testing.T) {
	db := newTestDB(t)
	service := NewAuditService(db)

	userA := uint(1)
	userB := uint(2)
	entries := []Models.AuditLog{
		{Action: Models.ActionCreate, Entity: "sales", UserID: &userA, UserEmail: "a@example.com"},
		{Action: Models.ActionUpdate, Entity: "sales", UserID: &userA, UserEmail: "a@example.com"},
		{Action: Models.ActionCreate, Entity: "expenses", UserID: &userB, UserEmail: "b@example.com"},
	}
	for _, entry := range entries {
		if _, err := service.Append(entry); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	logs, err := service.Query(AuditFilter{Entity: "sales"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("sales entries = %d, want 2", len(logs))
	}

	logs, err = service.Query(AuditFilter{Action: Models.ActionCreate, UserID: &userB})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 1 || logs[0].Entity != "expenses" {
		t.Errorf("filtered entries = %+v", logs)
	}

	logs, err = service.Query(AuditFilter{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("limited entries = %d, want 1", len(logs))
	}
}

func TestAuditStatistics(t *testing.T) {
	db := newTestDB(t)
	service := NewAuditService(db)

	userA := uint(1)
	entries := []Models.AuditLog{
		{Action: Models.ActionCreate, Entity: "sales", UserID: &userA, UserEmail: "a@example.com"},
		{Action: Models.ActionCreate, Entity: "expenses", UserID: &userA, UserEmail: "a@example.com"},
		{Action: Models.ActionDelete, Entity: "sales"},
	}
	for _, entry := range entries {
		if _, err := service.Append(entry); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := service.Statistics("", "")
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalLogs != 3 {
		t.Errorf("total = %d, want 3", stats.TotalLogs)
	}
	if stats.ByAction[Models.ActionCreate] != 2 || stats.ByAction[Models.ActionDelete] != 1 {
		t.Errorf("by action = %v", stats.ByAction)
	}
	if stats.ByEntity["sales"] != 2 || stats.ByEntity["expenses"] != 1 {
		t.Errorf("by entity = %v", stats.ByEntity)
	}
	if len(stats.ByUser) != 1 || stats.ByUser[0].Count != 2 {
		t.Errorf("by user = %+v", stats.ByUser)
	}
}

func TestAuditRecordNilServiceIsNoop(t *testing.T) {
	var service *AuditService
	// Must not panic
	service.Record(testActor(), Models.ActionCreate, "sales", 1, nil, nil)
}
