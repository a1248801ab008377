package courseValidator

import (
	"coursehub/models/content"
	"coursehub/validators"

	"github.com/gofiber/fiber/v2"
)

type ModuleRequest struct {
	Title    *string                `json:"title" validate:"omitempty,min=1"`
	Type     string                 `json:"type" validate:"omitempty,oneof=lesson quiz video feedback"`
	Content  map[string]interface{} `json:"content"`
	Order    *int                   `json:"order" validate:"omitempty,gte=0"`
	Duration *int                   `json:"duration" validate:"omitempty,gte=0"`
}

func (r *ModuleRequest) Kind() content.Kind {
	return content.Kind(r.Type)
}

func normalizeModule(r *ModuleRequest) {
	validators.TrimPtr(r.Title)
}

func CreateModule() fiber.Handler {
	return validators.Body("validatedModule", normalizeModule)
}

func UpdateModule() fiber.Handler {
	return validators.Body("validatedModule", normalizeModule)
}

// ModuleID parses the :id route parameter.
func ModuleID() fiber.Handler {
	return validators.ParamID("id", "moduleId")
}
