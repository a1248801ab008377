package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coursehub/apperr"
	"coursehub/config"
	"coursehub/database"
	"coursehub/logging"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const (
	localUserID = "userId"
	localUser   = "user"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(user *models.User) (string, error) {
	ttl := config.AppConfig.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"userId": user.ID,
		"role":   string(user.Role),
		"email":  user.Email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// parseBearer returns the user id carried by the Authorization header.
func parseBearer(c *fiber.Ctx) (uint, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, apperr.Unauthorized("Missing or invalid Authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, apperr.Unauthorized("Invalid Authorization header format")
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, apperr.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.Unauthorized("Invalid token payload")
	}
	// JWT numbers decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return 0, apperr.Unauthorized("Invalid token payload")
	}
	return uint(userID), nil
}

// authenticate resolves the bearer token to a stored user. The user is
// re-read on every request so role changes apply immediately.
func authenticate(c *fiber.Ctx) (*models.User, error) {
	userID, err := parseBearer(c)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := database.WithContext(c.UserContext()).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("User not found!")
		}
		return nil, apperr.Wrap(err, "failed to load user %d", userID)
	}
	return &user, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	user, err := authenticate(c)
	if err != nil {
		return ErrorResponse(c, err)
	}
	c.Locals(localUserID, user.ID)
	c.Locals(localUser, user)
	return c.Next()
}

// OptionalJWT attaches the user when a valid token is sent and otherwise
// lets the request through anonymously.
func OptionalJWT(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Next()
	}
	user, err := authenticate(c)
	if err != nil {
		if apperr.Is(err, apperr.KindInternal) {
			return ErrorResponse(c, err)
		}
		return c.Next()
	}
	c.Locals(localUserID, user.ID)
	c.Locals(localUser, user)
	return c.Next()
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUser).(*models.User)
	return user
}

// DB returns the request-scoped database session.
func DB(c *fiber.Ctx) *gorm.DB {
	return database.WithContext(c.UserContext())
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// ErrorResponse renders a service error. Internal failures are logged with
// their stack and answered with a generic message.
func ErrorResponse(c *fiber.Ctx, err error) error {
	appErr := apperr.As(err)
	if appErr == nil || appErr.Kind == apperr.KindInternal {
		logging.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("Request failed")
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	var data interface{}
	switch appErr.Kind {
	case apperr.KindInvalid:
		if len(appErr.Fields) > 0 {
			data = appErr.Fields
		}
	case apperr.KindConflict:
		data = appErr.Existing
	}
	return JsonResponse(c, appErr.Kind.HTTPStatus(), false, appErr.Message, data)
}
