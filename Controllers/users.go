package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"AzizPoultry/Services"
)

// UserController handles user-management API endpoints
type UserController struct {
	Service *Services.UserService
}

// NewUserController creates a new UserController
func NewUserController(db *gorm.DB, audit *Services.AuditService) *UserController {
	return &UserController{Service: Services.NewUserService(db, audit)}
}

// GetUsers retrieves all users
func (c *UserController) GetUsers(ctx *fiber.Ctx) error {
	users, err := c.Service.List()
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(users)
}

// GetUser retrieves a single user by ID
func (c *UserController) GetUser(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	user, err := c.Service.Get(id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(user)
}

// GetUserStatistics returns counts by status and role
func (c *UserController) GetUserStatistics(ctx *fiber.Ctx) error {
	stats, err := c.Service.Statistics()
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(stats)
}

// CreateUser creates a new user account
func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var input Services.CreateUserInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	user, err := c.Service.Create(input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser updates an existing user
func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	var input Services.UpdateUserInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	user, err := c.Service.Update(id, input, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(user)
}

// ActivateUser flips a user back to active
func (c *UserController) ActivateUser(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	user, err := c.Service.Activate(id, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(user)
}

// DeactivateUser marks a user inactive; their sessions stop working
func (c *UserController) DeactivateUser(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	user, err := c.Service.Deactivate(id, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(user)
}

// DeleteUser removes a user account
func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return nil
	}

	if err := c.Service.Delete(id, actor(ctx)); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "User deleted successfully"})
}
