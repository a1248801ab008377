package authService

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coursehub/apperr"
	"coursehub/config"
	"coursehub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Username *string
	Role     models.Role
}

// NormalizeEmail lowercases and trims an address before lookup or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func saltRound() int {
	if config.AppConfig == nil || config.AppConfig.SaltRound == 0 {
		return bcrypt.DefaultCost
	}
	return config.AppConfig.SaltRound
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), saltRound())
	if err != nil {
		return "", apperr.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

// FindUser loads a user by id.
func FindUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found!")
		}
		return nil, apperr.Wrap(err, "failed to load user %d", id)
	}
	return &user, nil
}

func findByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Wrap(err, "failed to look up user by email")
	}
	return &user, nil
}

// Register creates a student or author account. Admins are only made by
// promotion.
func Register(db *gorm.DB, in RegisterInput) (*models.User, error) {
	email := NormalizeEmail(in.Email)
	role := in.Role
	if role != models.RoleAuthor {
		role = models.RoleStudent
	}

	username := ""
	if in.Username != nil {
		username = strings.TrimSpace(*in.Username)
	}

	q := db.Model(&models.User{}).Where("email = ?", email)
	if username != "" {
		q = q.Or("username = ?", username)
	}
	var existing models.User
	err := q.First(&existing).Error
	if err == nil {
		if existing.Email == email {
			return nil, apperr.Conflict("Email already in use!", nil)
		}
		return nil, apperr.Conflict("Username already in use!", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(err, "failed to check existing user")
	}

	if username == "" {
		username = fmt.Sprintf("user_%d", time.Now().UnixMilli())
	}
	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Username: &username,
		Name:     strings.TrimSpace(in.Name),
		Password: hashed,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email or username already in use!", nil)
		}
		return nil, apperr.Wrap(err, "failed to create user")
	}
	return &user, nil
}

// Login checks email and password. Every mismatch reads the same.
func Login(db *gorm.DB, email, password string) (*models.User, error) {
	user, err := findByEmail(db, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == "" {
		return nil, apperr.Unauthorized("Invalid email or password!")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid email or password!")
	}
	return user, nil
}
