package authController

import (
	"coursehub/config"
	"coursehub/middleware"
	"coursehub/models"
	authService "coursehub/services/auth"
	authValidator "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// verifier checks Google ID tokens; replaced in tests.
var verifier authService.IdentityVerifier

func SetGoogleVerifier(v authService.IdentityVerifier) {
	verifier = v
}

type session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func issue(c *fiber.Ctx, user *models.User, message string) error {
	token, err := middleware.GenerateJWT(user)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, session{Token: token, User: user})
}

func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	user, err := authService.Register(middleware.DB(c), authService.RegisterInput{
		Email:    reqData.Email,
		Password: reqData.Password,
		Name:     reqData.Name,
		Username: reqData.Username,
		Role:     models.Role(reqData.Role),
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered successfully!", fiber.Map{"user": user})
}

func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	user, err := authService.Login(middleware.DB(c), reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return issue(c, user, "Login successful!")
}

func Google(c *fiber.Ctx) error {
	reqData := c.Locals("validatedGoogle").(*authValidator.GoogleRequest)
	if verifier == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Google sign-in is not configured!", nil)
	}

	user, err := authService.GoogleSignIn(c.UserContext(), middleware.DB(c), verifier, reqData.IDToken)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return issue(c, user, "Login successful!")
}

func Me(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", middleware.CurrentUser(c))
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedForgotPassword").(*authValidator.ForgotPasswordRequest)

	res, err := authService.ForgotPassword(middleware.DB(c), reqData.Email, config.AppConfig.AppURL, config.AppConfig.IsDevelopment())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, res.Message, res)
}

func ResetPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)

	if err := authService.ResetPassword(middleware.DB(c), reqData.Token, reqData.Password); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated. You can log in.", nil)
}
