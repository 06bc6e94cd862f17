package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// SettingController handles application-settings API endpoints
type SettingController struct {
	Service *Services.SettingService
}

// NewSettingController creates a new SettingController
func NewSettingController(db *gorm.DB, audit *Services.AuditService) *SettingController {
	return &SettingController{Service: Services.NewSettingService(db, audit)}
}

// GetSettings retrieves all settings, optionally one category
func (c *SettingController) GetSettings(ctx *fiber.Ctx) error {
	if category := ctx.Query("category"); category != "" {
		settings, err := c.Service.ByCategory(category)
		if err != nil {
			return serviceError(ctx, err)
		}
		return ctx.JSON(settings)
	}

	settings, err := c.Service.List()
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(settings)
}

// GetSetting retrieves one setting by key
func (c *SettingController) GetSetting(ctx *fiber.Ctx) error {
	setting, err := c.Service.Get(ctx.Params("key"))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(setting)
}

// CreateSetting creates a new setting; the key must be unused
func (c *SettingController) CreateSetting(ctx *fiber.Ctx) error {
	var input Services.CreateSettingInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	setting, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(setting)
}

// UpdateSetting updates a setting in place by key
func (c *SettingController) UpdateSetting(ctx *fiber.Ctx) error {
	var input Services.UpdateSettingInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	setting, err := c.Service.Update(ctx.Params("key"), input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(setting)
}

type UpsertSettingInput struct {
	Value       string `json:"value"`
	Category    string `json:"category" validate:"max=50"`
	Description string `json:"description"`
}

// UpsertSetting creates or updates the setting for the key
func (c *SettingController) UpsertSetting(ctx *fiber.Ctx) error {
	var input UpsertSettingInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	setting, err := c.Service.UpsertByKey(ctx.Params("key"), input.Value, input.Category, input.Description, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(setting)
}

// DeleteSetting removes a setting by key
func (c *SettingController) DeleteSetting(ctx *fiber.Ctx) error {
	if err := c.Service.Delete(ctx.Params("key"), actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Setting deleted successfully"})
}

// GetAppSettings returns the well-known settings bag with defaults
func (c *SettingController) GetAppSettings(ctx *fiber.Ctx) error {
	app, err := c.Service.GetAppSettings()
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(app)
}

// UpdateAppSettings upserts the supplied well-known settings
func (c *SettingController) UpdateAppSettings(ctx *fiber.Ctx) error {
	var input Services.UpdateAppSettingsInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	if err := c.Service.UpdateAppSettings(input, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return c.GetAppSettings(ctx)
}
