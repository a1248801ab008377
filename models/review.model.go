package models

// Review is a 1-5 rating with optional comment; one per (course, user).
type Review struct {
	Base
	CourseID uint    `gorm:"uniqueIndex:idx_review_course_user;not null" json:"courseId"`
	UserID   uint    `gorm:"uniqueIndex:idx_review_course_user;index;not null" json:"userId"`
	Rating   int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment  *string `gorm:"type:text" json:"comment"`
	User     *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course   *Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}
