package settingsService

import (
	"strings"
	"time"

	"coursehub/apperr"
	"coursehub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var stripeKeys = []string{
	models.SettingStripePublishableKey,
	models.SettingStripeSecretKey,
	models.SettingStripeWebhookSecret,
}

type StripeView struct {
	StripePublishableKey string `json:"stripePublishableKey"`
	StripeSecretKey      string `json:"stripeSecretKey"`
	StripeWebhookSecret  string `json:"stripeWebhookSecret"`
	Configured           bool   `json:"configured"`
}

// StripeInput carries new values. Nil or blank values leave the stored one.
type StripeInput struct {
	StripePublishableKey *string
	StripeSecretKey      *string
	StripeWebhookSecret  *string
}

// Mask keeps the first 7 and last 4 characters of a secret.
func Mask(value string) string {
	if len(value) < 8 {
		return ""
	}
	return value[:7] + "***" + value[len(value)-4:]
}

func load(db *gorm.DB, keys []string) (map[string]string, error) {
	var rows []models.Setting
	if err := db.Where("setting_key IN ?", keys).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to load settings")
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

// GetStripe returns the stored Stripe keys with the secrets masked.
func GetStripe(db *gorm.DB) (*StripeView, error) {
	values, err := load(db, stripeKeys)
	if err != nil {
		return nil, err
	}
	secret := values[models.SettingStripeSecretKey]
	webhook := values[models.SettingStripeWebhookSecret]
	return &StripeView{
		StripePublishableKey: values[models.SettingStripePublishableKey],
		StripeSecretKey:      Mask(secret),
		StripeWebhookSecret:  Mask(webhook),
		Configured:           secret != "" && webhook != "",
	}, nil
}

func set(db *gorm.DB, key string, value *string) error {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Setting{Key: key, Value: v, UpdatedAt: time.Now()}).Error
}

// UpdateStripe upserts the given Stripe keys in one transaction.
func UpdateStripe(db *gorm.DB, in StripeInput) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := set(tx, models.SettingStripePublishableKey, in.StripePublishableKey); err != nil {
			return err
		}
		if err := set(tx, models.SettingStripeSecretKey, in.StripeSecretKey); err != nil {
			return err
		}
		return set(tx, models.SettingStripeWebhookSecret, in.StripeWebhookSecret)
	})
	if err != nil {
		return apperr.Wrap(err, "failed to save stripe settings")
	}
	return nil
}
