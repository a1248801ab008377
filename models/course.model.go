package models

import "time"

type CourseStatus string

const (
	StatusDraft     CourseStatus = "DRAFT"
	StatusPending   CourseStatus = "PENDING"
	StatusPublished CourseStatus = "PUBLISHED"
	StatusRejected  CourseStatus = "REJECTED"
)

var CourseStatuses = []CourseStatus{StatusDraft, StatusPending, StatusPublished, StatusRejected}

func (s CourseStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// Course represents a learning course owned by one author
type Course struct {
	Base
	AuthorID        uint         `gorm:"index;not null" json:"authorId"`
	Author          *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title           string       `gorm:"not null" json:"title"`
	Slug            string       `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Description     *string      `json:"description"`
	LongDescription *string      `gorm:"type:text" json:"longDescription"`
	Thumbnail       *string      `json:"thumbnail"`
	Category        *string      `json:"category"`
	Level           *string      `gorm:"size:20" json:"level"`
	Duration        *int         `json:"duration"` // hours
	IsPaid          bool         `gorm:"default:false" json:"isPaid"`
	Price           *float64     `json:"price"` // only meaningful when IsPaid
	Status          CourseStatus `gorm:"type:varchar(20);default:'DRAFT';not null;index" json:"status"`
	PublishedAt     *time.Time   `json:"publishedAt"`
	Modules         []Module     `gorm:"foreignKey:CourseID" json:"modules,omitempty"`

	EnrollmentCount int64    `gorm:"-" json:"enrollmentCount"`
	ReviewCount     int64    `gorm:"-" json:"reviewCount"`
	AverageRating   *float64 `gorm:"-" json:"averageRating,omitempty"`
}
