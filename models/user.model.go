package models

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAuthor  Role = "AUTHOR"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Email     string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username  *string `gorm:"uniqueIndex;size:100" json:"username"`
	Name      string  `gorm:"default:''" json:"name"`
	Image     string  `gorm:"default:''" json:"image"`
	Password  string  `gorm:"default:''" json:"-"` // empty for Google-only accounts
	GoogleSub *string `gorm:"uniqueIndex;size:255" json:"-"`
	Role      Role    `gorm:"type:varchar(20);default:'STUDENT';not null;index" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DisplayName falls back to the email when no name was given.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// UserSummary is the public projection embedded in other resources.
type UserSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Username *string `json:"username"`
	Image    string  `json:"image,omitempty"`
}

func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Username: u.Username, Image: u.Image}
}
