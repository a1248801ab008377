package authService

import (
	"errors"
	"strings"
	"time"

	"coursehub/apperr"
	"coursehub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ResetTokenTTL = time.Hour

	forgotPasswordMessage = "If an account exists, you will receive a reset link."
)

type ForgotResult struct {
	Message string `json:"message"`
	// ResetLink is only filled in development environments.
	ResetLink string `json:"resetLink,omitempty"`
}

func newResetToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// ForgotPassword issues a reset token when the email belongs to an account.
// The answer is the same either way.
func ForgotPassword(db *gorm.DB, email, appURL string, exposeLink bool) (*ForgotResult, error) {
	res := &ForgotResult{Message: forgotPasswordMessage}
	user, err := findByEmail(db, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return res, nil
	}

	token := models.PasswordResetToken{
		Token:     newResetToken(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(ResetTokenTTL),
	}
	if err := db.Create(&token).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to store reset token for user %d", user.ID)
	}
	if exposeLink {
		res.ResetLink = strings.TrimRight(appURL, "/") + "/reset-password?token=" + token.Token
	}
	return res, nil
}

// ResetPassword swaps the password and burns the token atomically.
func ResetPassword(db *gorm.DB, token, password string) error {
	invalid := apperr.Invalid("Invalid or expired reset link!", nil)

	var record models.PasswordResetToken
	if err := db.Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalid
		}
		return apperr.Wrap(err, "failed to load reset token")
	}
	if !record.Usable(time.Now()) {
		return invalid
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", record.UserID).Update("password", hashed).Error; err != nil {
			return err
		}
		res := tx.Model(&models.PasswordResetToken{}).
			Where("id = ? AND used = ?", record.ID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return invalid
		}
		return nil
	})
	if err != nil {
		if apperr.Is(err, apperr.KindInvalid) {
			return err
		}
		return apperr.Wrap(err, "failed to reset password for user %d", record.UserID)
	}
	return nil
}
