package middlewares

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the JSON body into dst and runs the shared
// validator over it. Parse failures become a 400; rule failures surface as
// validator.ValidationErrors, which the error handler flattens into a
// per-field 422 map.
func BindAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return validate.Struct(dst)
}

// ValidateStruct runs the shared validator over a single struct value.
// Slice payloads validate element by element with this.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}
