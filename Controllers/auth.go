package Controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"AzizPoultry/Models"
	"AzizPoultry/Services"
	"AzizPoultry/middleware"
)

// AuthController handles login, logout and the current-user endpoint
type AuthController struct {
	Service *Services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(db *gorm.DB, audit *Services.AuditService) *AuthController {
	users := Services.NewUserService(db, audit)
	return &AuthController{Service: Services.NewAuthService(users, audit)}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login validates credentials and sets the JWT session cookie
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input LoginInput
	if !parseAndValidate(ctx, &input) {
		return nil
	}

	user, err := c.Service.Login(input.Email, input.Password, actor(ctx))
	if err != nil {
		return serviceError(ctx, err)
	}

	claims := jwt.RegisteredClaims{
		Issuer:    fmt.Sprint(user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.SecretKey())
	if err != nil {
		return serviceError(ctx, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
	})

	return ctx.JSON(fiber.Map{
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout clears the session cookie
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return ctx.JSON(fiber.Map{"message": "Logged out"})
}

// Me returns the authenticated user
func (c *AuthController) Me(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not logged in"})
	}
	return ctx.JSON(user)
}
