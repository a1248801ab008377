package models

import "time"

// Base replaces gorm.Model: rows are hard-deleted, so there is no DeletedAt.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// All lists every table for AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Course{},
		&Module{},
		&Enrollment{},
		&ModuleCompletion{},
		&Review{},
		&Payout{},
		&Notification{},
		&Setting{},
		&PasswordResetToken{},
	}
}
