package Controllers

import (
	"log"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"

	"AzizPoultry/Models"
	"AzizPoultry/Services"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")

	validate = validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		log.Println("Failed to register validator translations:", err)
	}
}

// parseAndValidate parses the request body into input and validates it.
// On failure it writes the 400 response itself and returns false.
func parseAndValidate(ctx *fiber.Ctx, input interface{}) bool {
	if err := ctx.BodyParser(input); err != nil {
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		return false
	}

	if err := validate.Struct(input); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verrs.Translate(translator)})
			return false
		}
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		return false
	}

	return true
}

// serviceError maps the typed service failures onto HTTP statuses. The
// offending identifier travels in the error message.
func serviceError(ctx *fiber.Ctx, err error) error {
	switch {
	case Services.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case Services.IsConflict(err):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case Services.IsUnauthorized(err):
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Println(err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// actor builds the audit actor from the authenticated user and request
// metadata.
func actor(ctx *fiber.Ctx) *Services.Actor {
	act := &Services.Actor{
		IPAddress: ctx.IP(),
		UserAgent: ctx.Get("User-Agent"),
	}
	if user, ok := ctx.Locals("user").(Models.User); ok {
		id := user.ID
		act.UserID = &id
		act.Email = user.Email
	}
	return act
}

func parseID(ctx *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || id < 1 {
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
