package models

import "time"

// Enrollment ties a user to a course; at most one per (user, course).
type Enrollment struct {
	Base
	UserID      uint       `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"userId"`
	CourseID    uint       `gorm:"uniqueIndex:idx_enrollment_user_course;index;not null" json:"courseId"`
	Progress    int        `gorm:"default:0;not null" json:"progress"` // 0..100
	EnrolledAt  time.Time  `gorm:"not null" json:"enrolledAt"`
	CompletedAt *time.Time `json:"completedAt"`
	User        *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course      *Course    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}
