package models

// Notification types
const (
	NotifyNewEnrollment  = "enrollment"
	NotifyCourseApproved = "course_approved"
	NotifyCourseRejected = "course_rejected"
)

type Notification struct {
	Base
	UserID  uint    `gorm:"index;not null" json:"userId"`
	User    *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type    string  `gorm:"size:50;not null" json:"type"`
	Title   string  `gorm:"not null" json:"title"`
	Message string  `gorm:"type:text;not null" json:"message"`
	Link    *string `json:"link"`
	Read    bool    `gorm:"column:is_read;default:false;not null;index" json:"read"`
}
