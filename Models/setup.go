package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// No DB-level foreign keys: the Sale→Retailer reference is weak (a
	// dangling id must be accepted, not rejected), and order items are
	// managed transactionally by the services.
	config := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}

	var err error
	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			getEnv("DB_PORT", "5432"),
		)
		DB, err = gorm.Open(postgres.Open(dsn), config)
	} else {
		// Local development falls back to a SQLite file.
		DB, err = gorm.Open(sqlite.Open(getEnv("DB_FILE", "database.db")), config)
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Println(err)
	}

	seedAdmin()
}

// Migrate creates the schema in dependency order. Unique indexes on
// users.email, vehicles.vehicle_number, sales.invoice_number,
// purchase_orders.order_number and settings.key are what actually close
// the check-then-insert race under concurrent requests.
func Migrate(db *gorm.DB) error {
	// 1. Independent entities first
	if err := db.AutoMigrate(
		&User{},
		&Farmer{},
		&Retailer{},
		&Vehicle{},
		&InventoryItem{},
		&Expense{},
		&Setting{},
	); err != nil {
		return err
	}

	// 2. Then models with foreign key relationships
	if err := db.AutoMigrate(
		&Sale{}, // weak reference to Retailer
		&PurchaseOrder{},
		&PurchaseOrderItem{}, // owned by PurchaseOrder, cascade delete
	); err != nil {
		return err
	}

	// 3. Audit log last, it references nothing and nothing references it
	return db.AutoMigrate(&AuditLog{})
}

// seedAdmin guarantees at least one active admin account exists.
func seedAdmin() {
	var count int64
	DB.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	password := getEnv("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := User{
		Name:         "Administrator",
		Email:        getEnv("ADMIN_EMAIL", "admin@azizpoultry.com"),
		PasswordHash: string(hash),
		Role:         RoleAdmin,
		Status:       StatusActive,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin user:", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
