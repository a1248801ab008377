package models

import "time"

const PayoutCompleted = "completed"

// Payout records money sent to an author outside the system.
type Payout struct {
	Base
	AuthorID uint      `gorm:"index;not null" json:"authorId"`
	Author   *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Note     *string   `json:"note"`
	Status   string    `gorm:"type:varchar(20);default:'completed';not null" json:"status"`
	PaidAt   time.Time `gorm:"not null" json:"paidAt"`
}
