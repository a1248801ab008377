// Package access holds the ownership-or-admin capability checks shared by
// every course-mutating operation.
package access

import "coursehub/models"

// CanManage reports whether actor may mutate the course and its modules.
func CanManage(actor *models.User, course *models.Course) bool {
	if actor == nil || course == nil {
		return false
	}
	return actor.Role == models.RoleAdmin || course.AuthorID == actor.ID
}

// CanView reports whether actor may see the course. Anything that is not
// published is visible only to its author and to admins.
func CanView(actor *models.User, course *models.Course) bool {
	if course == nil {
		return false
	}
	return course.Status == models.StatusPublished || CanManage(actor, course)
}

// CanAuthor reports whether actor may create courses.
func CanAuthor(actor *models.User) bool {
	return actor != nil && (actor.Role == models.RoleAuthor || actor.Role == models.RoleAdmin)
}

// CanEnroll reports whether actor may enroll in courses.
func CanEnroll(actor *models.User) bool {
	return actor != nil && (actor.Role == models.RoleStudent || actor.Role == models.RoleAdmin)
}
