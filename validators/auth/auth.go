package authValidator

import (
	"strings"

	"coursehub/validators"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     string  `json:"name" validate:"required,min=1"`
	Username *string `json:"username" validate:"omitempty,min=2"`
	Role     string  `json:"role" validate:"required,oneof=STUDENT AUTHOR"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func Register() fiber.Handler {
	return validators.Body("validatedRegister", func(r *RegisterRequest) {
		r.Email = strings.TrimSpace(r.Email)
		r.Name = strings.TrimSpace(r.Name)
		validators.TrimPtr(r.Username)
		if r.Username != nil && *r.Username == "" {
			r.Username = nil
		}
	})
}

func Login() fiber.Handler {
	return validators.Body("validatedLogin", func(r *LoginRequest) {
		r.Email = strings.TrimSpace(r.Email)
	})
}

func Google() fiber.Handler {
	return validators.Body("validatedGoogle", func(r *GoogleRequest) {
		r.IDToken = strings.TrimSpace(r.IDToken)
	})
}

func ForgotPassword() fiber.Handler {
	return validators.Body("validatedForgotPassword", func(r *ForgotPasswordRequest) {
		r.Email = strings.TrimSpace(r.Email)
	})
}

func ResetPassword() fiber.Handler {
	return validators.Body("validatedResetPassword", func(r *ResetPasswordRequest) {
		r.Token = strings.TrimSpace(r.Token)
	})
}
