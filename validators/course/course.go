package courseValidator

import (
	"strings"

	"coursehub/models"
	"coursehub/validators"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=1"`
	Description     *string  `json:"description"`
	LongDescription *string  `json:"longDescription"`
	Thumbnail       *string  `json:"thumbnail" validate:"omitempty,urlorempty"`
	IsPaid          *bool    `json:"isPaid"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	Category        *string  `json:"category"`
	Level           *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration        *int     `json:"duration" validate:"omitempty,gte=0"`
	AuthorID        *uint    `json:"authorId"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=REJECTED DRAFT PUBLISHED"`
}

// ListQuery filters a course listing.
type ListQuery struct {
	Status models.CourseStatus
	validators.Page
}

func normalizeCourse(r *CourseRequest) {
	validators.TrimPtr(r.Title)
	validators.TrimPtr(r.Thumbnail)
	validators.TrimPtr(r.Category)
	validators.TrimPtr(r.Level)
	if r.Level != nil && *r.Level == "" {
		r.Level = nil
	}
}

// CreateCourse validates a new course. A missing title is rejected by the
// course service so create and update report it the same way.
func CreateCourse() fiber.Handler {
	return validators.Body("validatedCourse", normalizeCourse)
}

// UpdateCourse validates a partial course update.
func UpdateCourse() fiber.Handler {
	return validators.Body("validatedCourse", normalizeCourse)
}

func SetStatus() fiber.Handler {
	return validators.Body("validatedStatus", func(r *StatusRequest) {
		r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	})
}

// parseStatus returns a known status or "" for anything else.
func parseStatus(raw string) models.CourseStatus {
	s := models.CourseStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if s.Valid() {
		return s
	}
	return ""
}

// List reads status/limit/offset. Unknown statuses are ignored.
func List(defLimit, maxLimit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("validatedList", &ListQuery{
			Status: parseStatus(c.Query("status")),
			Page: validators.Page{
				Limit:  validators.QueryInt(c, "limit", defLimit, maxLimit),
				Offset: validators.Offset(c),
			},
		})
		return c.Next()
	}
}
