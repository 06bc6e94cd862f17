package Services

import (
	"testing"

	"AzizPoultry/Models"
)

func TestCreateUserDefaultsAndLowercasing(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, newTestAudit(t, db))

	user, err := service.Create(CreateUserInput{
		Name:     "Priya Nair",
		Email:    "Priya@AzizPoultry.COM",
		Password: "secret123",
	}, testActor())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if user.Email != "priya@azizpoultry.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.Role != Models.RoleManager {
		t.Errorf("role = %q, want manager default", user.Role)
	}
	if user.Status != Models.StatusActive {
		t.Errorf("status = %q, want active default", user.Status)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Errorf("password stored in the clear or missing")
	}
}

func TestCreateUserDuplicateEmailIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, newTestAudit(t, db))

	if _, err := service.Create(CreateUserInput{Name: "A", Email: "a@example.com", Password: "secret123"}, testActor()); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := service.Create(CreateUserInput{Name: "B", Email: "A@Example.com", Password: "secret123"}, testActor()); !IsConflict(err) {
		t.Fatalf("duplicate email: got %v, want conflict", err)
	}
}

func TestValidateCredentials(t *testing.T) {
	db := newTestDB(t)
	audit := newTestAudit(t, db)
	users := NewUserService(db, audit)
	auth := NewAuthService(users, audit)

	if _, err := users.Create(CreateUserInput{Name: "A", Email: "a@example.com", Password: "secret123"}, testActor()); err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := auth.ValidateCredentials("A@Example.com", "secret123")
	if err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if user.Email != "a@example.com" {
		t.Errorf("email = %q", user.Email)
	}

	if _, err := auth.ValidateCredentials("a@example.com", "wrong"); !IsUnauthorized(err) {
		t.Errorf("wrong password: got %v, want unauthorized", err)
	}
	if _, err := auth.ValidateCredentials("nobody@example.com", "secret123"); !IsUnauthorized(err) {
		t.Errorf("unknown email: got %v, want unauthorized", err)
	}
}

func TestInactiveUserCannotLogin(t *testing.T) {
	db := newTestDB(t)
	audit := newTestAudit(t, db)
	users := NewUserService(db, audit)
	auth := NewAuthService(users, audit)

	user, err := users.Create(CreateUserInput{Name: "A", Email: "a@example.com", Password: "secret123"}, testActor())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := users.Deactivate(user.ID, testActor()); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := auth.Login("a@example.com", "secret123", testActor()); !IsUnauthorized(err) {
		t.Fatalf("inactive login: got %v, want unauthorized", err)
	}

	if _, err := users.Activate(user.ID, testActor()); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, err := auth.Login("a@example.com", "secret123", testActor()); err != nil {
		t.Fatalf("login after reactivation: %v", err)
	}
}

func TestLoginStampsLastLoginAndAudits(t *testing.T) {
	db := newTestDB(t)
	audit := newTestAudit(t, db)
	users := NewUserService(db, audit)
	auth := NewAuthService(users, audit)

	created, err := users.Create(CreateUserInput{Name: "A", Email: "a@example.com", Password: "secret123"}, testActor())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.LastLogin != nil {
		t.Fatalf("last login set before any login")
	}

	if _, err := auth.Login("a@example.com", "secret123", testActor()); err != nil {
		t.Fatalf("login: %v", err)
	}

	got, err := users.Get(created.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.LastLogin == nil {
		t.Errorf("last login not stamped")
	}

	logs, err := audit.ByUser(created.ID, 10)
	if err != nil {
		t.Fatalf("audit query: %v", err)
	}
	found := false
	for _, entry := range logs {
		if entry.Action == Models.ActionLogin {
			found = true
		}
	}
	if !found {
		t.Errorf("no LOGIN entry recorded")
	}
}

func TestUpdateUserPartialPreservesRest(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, newTestAudit(t, db))

	user, err := service.Create(CreateUserInput{Name: "A", Email: "a@example.com", Password: "secret123", Role: Models.RoleStaff}, testActor())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	name := "Renamed"
	updated, err := service.Update(user.ID, UpdateUserInput{Name: &name}, testActor())
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("name = %q", updated.Name)
	}
	if updated.Email != "a@example.com" || updated.Role != Models.RoleStaff {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.PasswordHash != user.PasswordHash {
		t.Errorf("password hash changed on a name-only update")
	}
}

func TestUserStatistics(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, newTestAudit(t, db))

	inputs := []CreateUserInput{
		{Name: "A", Email: "a@example.com", Password: "secret123", Role: Models.RoleAdmin},
		{Name: "B", Email: "b@example.com", Password: "secret123", Role: Models.RoleStaff},
		{Name: "C", Email: "c@example.com", Password: "secret123", Status: Models.StatusInactive},
	}
	for _, input := range inputs {
		if _, err := service.Create(input, testActor()); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	stats, err := service.Statistics()
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalUsers != 3 || stats.ActiveUsers != 2 || stats.InactiveUsers != 1 {
		t.Errorf("status counts = %+v", stats)
	}
	if stats.AdminUsers != 1 || stats.ManagerUsers != 1 || stats.StaffUsers != 1 {
		t.Errorf("role counts = %+v", stats)
	}
}
