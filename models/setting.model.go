package models

import "time"

// Setting keys
const (
	SettingStripePublishableKey = "stripe_publishable_key"
	SettingStripeSecretKey      = "stripe_secret_key"
	SettingStripeWebhookSecret  = "stripe_webhook_secret"
)

// Setting is a single key/value row of platform configuration.
type Setting struct {
	Key       string    `gorm:"column:setting_key;primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
