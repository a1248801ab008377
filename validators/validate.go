// Package validators holds the shared request validation used by the
// per-area validator middlewares.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"coursehub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("urlorempty", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || v.Var(s, "url") == nil
	})
	return v
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "email":
		return "Invalid email!"
	case "url", "urlorempty":
		return fmt.Sprintf("%s must be a valid URL!", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s!", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s!", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s!", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}

// Struct validates v and returns a field-to-message map, empty when valid.
func Struct(v interface{}) map[string]string {
	fields := make(map[string]string)
	err := validate.Struct(v)
	if err == nil {
		return fields
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		fields["body"] = "Invalid request body!"
		return fields
	}
	for _, fe := range ve {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

// Body parses and validates the JSON body into dst, then stores it under
// key. The handler returned responds with 400 on any failure.
func Body[T any](key string, normalize func(*T)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		if normalize != nil {
			normalize(reqData)
		}
		if errs := Struct(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals(key, reqData)
		return c.Next()
	}
}

// QueryInt reads a positive integer query parameter. Missing or malformed
// values fall back to def, and max caps the result when positive.
func QueryInt(c *fiber.Ctx, key string, def, max int) int {
	n := c.QueryInt(key, def)
	if n <= 0 {
		n = def
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// Offset reads the offset query parameter, never negative.
func Offset(c *fiber.Ctx) int {
	n := c.QueryInt("offset", 0)
	if n < 0 {
		return 0
	}
	return n
}

// Page is a validated limit/offset pair.
type Page struct {
	Limit  int
	Offset int
}

// ParamID parses a positive numeric route parameter into Locals under key.
func ParamID(param, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt(param)
		if err != nil || id <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{param: "Invalid " + param + "!"})
		}
		c.Locals(key, uint(id))
		return c.Next()
	}
}

// TrimPtr trims *s in place.
func TrimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
