package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"AzizPoultry/Models"
)

// SecretKey signs the session JWTs. Override via JWT_SECRET in production.
func SecretKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("secret")
}

// roleRank orders roles for the permission check: a role passes any gate
// at or below its own rank.
var roleRank = map[string]int{
	Models.RoleStaff:   1,
	Models.RoleManager: 2,
	Models.RoleAdmin:   3,
}

// Verify authenticates the JWT cookie, loads the user, refuses inactive
// accounts and enforces the required role. The user is stored in
// c.Locals("user") for the handlers.
func Verify(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies("jwt")
		if cookie == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not logged in",
			})
		}

		token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return SecretKey(), nil
		})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token claims",
			})
		}

		var user Models.User
		if result := Models.DB.Where("id = ?", claims.Issuer).First(&user); result.Error != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User not found",
			})
		}

		// Deactivating an account cuts off existing sessions too.
		if user.Status != Models.StatusActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User is inactive",
			})
		}

		c.Locals("user", user)

		if roleRank[user.Role] >= roleRank[requiredRole] {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient permissions to access this resource",
		})
	}
}
