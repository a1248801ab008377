package courseValidator

import (
	"coursehub/validators"

	"github.com/gofiber/fiber/v2"
)

type EnrollRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

type ReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

func Enroll() fiber.Handler {
	return validators.Body[EnrollRequest]("validatedEnroll", nil)
}

func Review() fiber.Handler {
	return validators.Body("validatedReview", func(r *ReviewRequest) {
		validators.TrimPtr(r.Comment)
	})
}
