package Services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"AzizPoultry/Models"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, false)
}

// newFKEnforcedTestDB turns the sqlite foreign_keys pragma on, matching
// the strictness of the production postgres connection.
func newFKEnforcedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, true)
}

func openTestDB(t *testing.T, enforceFKs bool) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	if enforceFKs {
		dsn += "&_foreign_keys=1"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := Models.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newTestAudit(t *testing.T, db *gorm.DB) *AuditService {
	t.Helper()
	return NewAuditService(db)
}

func testActor() *Actor {
	id := uint(1)
	return &Actor{
		UserID:    &id,
		Email:     "tester@azizpoultry.com",
		IPAddress: "127.0.0.1",
		UserAgent: "go-test",
	}
}
