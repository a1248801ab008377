package authService

import (
	"coursehub/apperr"
	"coursehub/models"

	"gorm.io/gorm"
)

// UserRow is a user as listed for admins.
type UserRow struct {
	models.User
	CoursesAuthored int64 `json:"coursesAuthored"`
	Enrollments     int64 `json:"enrollments"`
}

type UserList struct {
	Users []UserRow `json:"users"`
	Total int64     `json:"total"`
}

// ListUsers pages through users, newest first, optionally by role.
func ListUsers(db *gorm.DB, role models.Role, limit, offset int) (*UserList, error) {
	q := db.Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}

	res := &UserList{Users: []UserRow{}}
	if err := q.Session(&gorm.Session{}).Count(&res.Total).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to count users")
	}
	var users []models.User
	if err := q.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to list users")
	}

	for _, u := range users {
		row := UserRow{User: u}
		if err := db.Model(&models.Course{}).Where("author_id = ?", u.ID).Count(&row.CoursesAuthored).Error; err != nil {
			return nil, apperr.Wrap(err, "failed to count courses of user %d", u.ID)
		}
		if err := db.Model(&models.Enrollment{}).Where("user_id = ?", u.ID).Count(&row.Enrollments).Error; err != nil {
			return nil, apperr.Wrap(err, "failed to count enrollments of user %d", u.ID)
		}
		res.Users = append(res.Users, row)
	}
	return res, nil
}

// ChangeRole sets the role of a user. It takes effect on their next request.
func ChangeRole(db *gorm.DB, userID uint, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, apperr.Invalid("Validation failed!", map[string]string{
			"role": "Role must be one of STUDENT, AUTHOR, ADMIN!",
		})
	}
	user, err := FindUser(db, userID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(user).Update("role", role).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to change role of user %d", userID)
	}
	user.Role = role
	return user, nil
}
