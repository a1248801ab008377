package adminValidator

import (
	"coursehub/validators"

	"github.com/gofiber/fiber/v2"
)

type PayoutRequest struct {
	AuthorID uint    `json:"authorId" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Note     *string `json:"note"`
}

type StripeRequest struct {
	StripePublishableKey *string `json:"stripePublishableKey"`
	StripeSecretKey      *string `json:"stripeSecretKey"`
	StripeWebhookSecret  *string `json:"stripeWebhookSecret"`
}

func Payout() fiber.Handler {
	return validators.Body("validatedPayout", func(r *PayoutRequest) {
		validators.TrimPtr(r.Note)
	})
}

func Stripe() fiber.Handler {
	return validators.Body("validatedStripe", func(r *StripeRequest) {
		validators.TrimPtr(r.StripePublishableKey)
		validators.TrimPtr(r.StripeSecretKey)
		validators.TrimPtr(r.StripeWebhookSecret)
	})
}

// Analytics reads ?days=N; clamping happens in the analytics service.
func Analytics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("validatedDays", c.QueryInt("days", 0))
		return c.Next()
	}
}

// Activity reads ?limit=N; clamping happens in the analytics service.
func Activity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("validatedLimit", c.QueryInt("limit", 0))
		return c.Next()
	}
}
