package FiberConfig

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"AzizPoultry/Controllers"
	"AzizPoultry/Models"
	"AzizPoultry/Services"
	"AzizPoultry/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	audit := Services.NewAuditService(db)

	// Initialize controllers
	authController := Controllers.NewAuthController(db, audit)
	userController := Controllers.NewUserController(db, audit)
	farmerController := Controllers.NewFarmerController(db, audit)
	retailerController := Controllers.NewRetailerController(db, audit)
	vehicleController := Controllers.NewVehicleController(db, audit)
	saleController := Controllers.NewSaleController(db, audit)
	purchaseController := Controllers.NewPurchaseController(db, audit)
	inventoryController := Controllers.NewInventoryController(db, audit)
	expenseController := Controllers.NewExpenseController(db, audit)
	settingController := Controllers.NewSettingController(db, audit)
	auditController := Controllers.NewAuditController(db)
	dashboardController := Controllers.NewDashboardController(db)
	reportController := Controllers.NewReportController(db)

	api := app.Group("/api")

	// Auth routes
	api.Post("/auth/login", authController.Login)
	api.Post("/auth/logout", middleware.Verify(Models.RoleStaff), authController.Logout)
	api.Get("/auth/me", middleware.Verify(Models.RoleStaff), authController.Me)

	// User management is admin only
	users := api.Group("/users", middleware.Verify(Models.RoleAdmin))
	users.Get("/", userController.GetUsers)
	users.Get("/statistics", userController.GetUserStatistics)
	users.Get("/:id", userController.GetUser)
	users.Post("/", userController.CreateUser)
	users.Put("/:id", userController.UpdateUser)
	users.Patch("/:id/activate", userController.ActivateUser)
	users.Patch("/:id/deactivate", userController.DeactivateUser)
	users.Delete("/:id", userController.DeleteUser)

	// Farmer routes
	farmers := api.Group("/farmers", middleware.Verify(Models.RoleStaff))
	farmers.Get("/", farmerController.GetFarmers)
	farmers.Get("/:id", farmerController.GetFarmer)
	farmers.Post("/", farmerController.CreateFarmer)
	farmers.Put("/:id", farmerController.UpdateFarmer)
	farmers.Delete("/:id", middleware.Verify(Models.RoleManager), farmerController.DeleteFarmer)

	// Retailer routes
	retailers := api.Group("/retailers", middleware.Verify(Models.RoleStaff))
	retailers.Get("/", retailerController.GetRetailers)
	retailers.Get("/:id", retailerController.GetRetailer)
	retailers.Post("/", retailerController.CreateRetailer)
	retailers.Put("/:id", retailerController.UpdateRetailer)
	retailers.Delete("/:id", middleware.Verify(Models.RoleManager), retailerController.DeleteRetailer)

	// Vehicle routes
	vehicles := api.Group("/vehicles", middleware.Verify(Models.RoleStaff))
	vehicles.Get("/", vehicleController.GetVehicles)
	vehicles.Get("/:id", vehicleController.GetVehicle)
	vehicles.Post("/", vehicleController.CreateVehicle)
	vehicles.Put("/:id", vehicleController.UpdateVehicle)
	vehicles.Delete("/:id", middleware.Verify(Models.RoleManager), vehicleController.DeleteVehicle)

	// Sales routes
	sales := api.Group("/sales", middleware.Verify(Models.RoleStaff))
	sales.Get("/", saleController.GetSales)
	sales.Get("/:id", saleController.GetSale)
	sales.Post("/", saleController.CreateSale)
	sales.Put("/:id", saleController.UpdateSale)
	sales.Patch("/:id/payment-status", saleController.UpdatePaymentStatus)
	sales.Delete("/:id", middleware.Verify(Models.RoleManager), saleController.DeleteSale)

	// Purchase order routes
	purchases := api.Group("/purchases", middleware.Verify(Models.RoleStaff))
	purchases.Get("/", purchaseController.GetPurchaseOrders)
	purchases.Get("/:id", purchaseController.GetPurchaseOrder)
	purchases.Post("/", purchaseController.CreatePurchaseOrder)
	purchases.Put("/:id", purchaseController.UpdatePurchaseOrder)
	purchases.Patch("/:id/status", purchaseController.UpdateOrderStatus)
	purchases.Delete("/:id", middleware.Verify(Models.RoleManager), purchaseController.DeletePurchaseOrder)

	// Inventory routes - fixed paths BEFORE the ID route to avoid conflicts
	inventory := api.Group("/inventory", middleware.Verify(Models.RoleStaff))
	inventory.Get("/", inventoryController.GetItems)
	inventory.Get("/low-stock", inventoryController.GetLowStock)
	inventory.Get("/stats", inventoryController.GetStats)
	inventory.Get("/:id", inventoryController.GetItem)
	inventory.Post("/", inventoryController.CreateItem)
	inventory.Put("/:id", inventoryController.UpdateItem)
	inventory.Delete("/:id", middleware.Verify(Models.RoleManager), inventoryController.DeleteItem)

	// Expense routes
	expenses := api.Group("/expenses", middleware.Verify(Models.RoleStaff))
	expenses.Get("/", expenseController.GetExpenses)
	expenses.Get("/:id", expenseController.GetExpense)
	expenses.Post("/", expenseController.CreateExpense)
	expenses.Put("/:id", expenseController.UpdateExpense)
	expenses.Delete("/:id", middleware.Verify(Models.RoleManager), expenseController.DeleteExpense)

	// Settings routes
	settings := api.Group("/settings", middleware.Verify(Models.RoleManager))
	settings.Get("/", settingController.GetSettings)
	settings.Get("/app", settingController.GetAppSettings)
	settings.Put("/app", settingController.UpdateAppSettings)
	settings.Get("/:key", settingController.GetSetting)
	settings.Post("/", settingController.CreateSetting)
	settings.Put("/upsert/:key", settingController.UpsertSetting)
	settings.Put("/:key", settingController.UpdateSetting)
	settings.Delete("/:key", middleware.Verify(Models.RoleAdmin), settingController.DeleteSetting)

	// Audit trail is admin only
	audits := api.Group("/audit", middleware.Verify(Models.RoleAdmin))
	audits.Get("/", auditController.GetLogs)
	audits.Get("/recent", auditController.GetRecent)
	audits.Get("/statistics", auditController.GetStatistics)
	audits.Get("/entity/:entity/:entityId", auditController.GetEntityLogs)

	// Dashboard routes
	dashboard := api.Group("/dashboard", middleware.Verify(Models.RoleStaff))
	dashboard.Get("/kpis", dashboardController.GetKPIs)
	dashboard.Get("/revenue-by-product", dashboardController.GetRevenueByProductType)
	dashboard.Get("/expenses-by-category", dashboardController.GetExpensesByCategory)
	dashboard.Get("/recent-sales", dashboardController.GetRecentSales)
	dashboard.Get("/recent-expenses", dashboardController.GetRecentExpenses)
	dashboard.Get("/monthly-trends", dashboardController.GetMonthlyTrends)

	// Report exports
	reports := api.Group("/reports", middleware.Verify(Models.RoleManager))
	reports.Get("/sales/export", reportController.ExportSales)
	reports.Get("/expenses/export", reportController.ExportExpenses)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	if err := app.Listen(":3001"); err != nil {
		log.Fatal(err)
	}
}
