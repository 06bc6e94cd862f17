package Services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"AzizPoultry/Models"
)

func TestUpsertSettingCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	service := NewSettingService(db, newTestAudit(t, db))

	setting, err := service.UpsertByKey("currency", "INR", "general", "System currency", testActor())
	if err != nil {
		t.Fatalf("upsert new key: %v", err)
	}
	if setting.Value != "INR" {
		t.Errorf("value = %q, want INR", setting.Value)
	}

	setting, err = service.UpsertByKey("currency", "USD", "", "", testActor())
	if err != nil {
		t.Fatalf("upsert existing key: %v", err)
	}
	if setting.Value != "USD" {
		t.Errorf("value = %q, want USD", setting.Value)
	}
	// Category survives an upsert that does not mention it
	if setting.Category != "general" {
		t.Errorf("category = %q, want general", setting.Category)
	}

	var count int64
	db.Model(&Models.Setting{}).Where("key = ?", "currency").Count(&count)
	if count != 1 {
		t.Fatalf("rows for key = %d, want exactly 1", count)
	}
}

func TestUpsertSettingLostCreateRaceFallsBackToUpdate(t *testing.T) {
	db := newTestDB(t)
	session := db.Session(&gorm.Session{SkipDefaultTransaction: true})
	service := NewSettingService(session, newTestAudit(t, db))

	// Sneak a competing row in between the upsert's miss on the lookup
	// and its insert, so the insert hits the unique index.
	raced := false
	err := db.Callback().Create().Before("gorm:create").Register("settings_competing_writer", func(tx *gorm.DB) {
		setting, ok := tx.Statement.Dest.(*Models.Setting)
		if !ok || setting.Key != "currency" || raced {
			return
		}
		raced = true
		now := time.Now()
		_, execErr := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
			`INSERT INTO settings ("key", value, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			"currency", "INR", "general", now, now)
		if execErr != nil {
			t.Fatalf("competing insert: %v", execErr)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	setting, err := service.UpsertByKey("currency", "USD", "general", "", testActor())
	if err != nil {
		t.Fatalf("upsert after losing the create race: %v", err)
	}
	if !raced {
		t.Fatal("competing writer never ran")
	}
	if setting.Value != "USD" {
		t.Errorf("value = %q, want USD", setting.Value)
	}

	var count int64
	db.Model(&Models.Setting{}).Where("key = ?", "currency").Count(&count)
	if count != 1 {
		t.Fatalf("rows for key = %d, want exactly 1", count)
	}
}

func TestCreateSettingDuplicateKey(t *testing.T) {
	db := newTestDB(t)
	service := NewSettingService(db, newTestAudit(t, db))

	if _, err := service.Create(CreateSettingInput{Key: "theme", Value: "light"}, testActor()); err != nil {
		t.Fatalf("create setting: %v", err)
	}
	if _, err := service.Create(CreateSettingInput{Key: "theme", Value: "dark"}, testActor()); !IsConflict(err) {
		t.Fatalf("duplicate key: got %v, want conflict", err)
	}
}

func TestGetAppSettingsDefaults(t *testing.T) {
	db := newTestDB(t)
	service := NewSettingService(db, newTestAudit(t, db))

	app, err := service.GetAppSettings()
	if err != nil {
		t.Fatalf("app settings: %v", err)
	}
	if app.Currency != "INR" {
		t.Errorf("currency = %q, want INR default", app.Currency)
	}
	if app.Theme != "light" {
		t.Errorf("theme = %q, want light default", app.Theme)
	}
	if app.CompanyName != "Aziz Poultry" {
		t.Errorf("company = %q, want Aziz Poultry default", app.CompanyName)
	}
}

func TestUpdateAppSettingsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	service := NewSettingService(db, newTestAudit(t, db))

	theme := "dark"
	email := "office@azizpoultry.com"
	err := service.UpdateAppSettings(UpdateAppSettingsInput{Theme: &theme, CompanyEmail: &email}, testActor())
	if err != nil {
		t.Fatalf("update app settings: %v", err)
	}

	app, err := service.GetAppSettings()
	if err != nil {
		t.Fatalf("app settings: %v", err)
	}
	if app.Theme != "dark" {
		t.Errorf("theme = %q, want dark", app.Theme)
	}
	if app.CompanyEmail != email {
		t.Errorf("email = %q, want %q", app.CompanyEmail, email)
	}
	// Keys not mentioned keep their defaults
	if app.Currency != "INR" {
		t.Errorf("currency = %q, want INR", app.Currency)
	}
}

func TestDeleteSettingNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewSettingService(db, newTestAudit(t, db))

	if err := service.Delete("missing", testActor()); !IsNotFound(err) {
		t.Fatalf("delete missing key: got %v, want not found", err)
	}
}
