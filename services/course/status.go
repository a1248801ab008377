package courseService

import (
	"fmt"
	"time"

	"coursehub/apperr"
	"coursehub/models"
	notificationService "coursehub/services/notification"

	"gorm.io/gorm"
)

// AdminTargets are the statuses an admin may set directly. PENDING is only
// reachable through an author submission.
var AdminTargets = []models.CourseStatus{models.StatusRejected, models.StatusDraft, models.StatusPublished}

func isAdminTarget(s models.CourseStatus) bool {
	for _, t := range AdminTargets {
		if t == s {
			return true
		}
	}
	return false
}

// NextOnSubmit resolves the status a submission leads to. Authors always move
// a course into review, even a published one; an admin submission publishes it
// outright.
func NextOnSubmit(role models.Role) models.CourseStatus {
	if role == models.RoleAdmin {
		return models.StatusPublished
	}
	return models.StatusPending
}

// Submit sends a course for review, or publishes it when actor is an admin.
func Submit(db *gorm.DB, actor *models.User, slug string) (*models.Course, error) {
	course, err := FindManaged(db, actor, slug)
	if err != nil {
		return nil, err
	}
	if err := apply(db, course, NextOnSubmit(actor.Role)); err != nil {
		return nil, err
	}
	return reload(db, course.ID)
}

// SetStatus is the admin override. The source status is not checked.
func SetStatus(db *gorm.DB, actor *models.User, slug string, target models.CourseStatus) (*models.Course, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("Only admins can change course status!")
	}
	if !isAdminTarget(target) {
		return nil, apperr.Invalid("Validation failed!", map[string]string{
			"status": "Status must be one of REJECTED, DRAFT, PUBLISHED!",
		})
	}
	course, err := FindBySlug(db, slug)
	if err != nil {
		return nil, err
	}

	previous := course.Status
	if err := apply(db, course, target); err != nil {
		return nil, err
	}
	notifyAuthor(db, course, previous, target)
	return reload(db, course.ID)
}

func Approve(db *gorm.DB, actor *models.User, slug string) (*models.Course, error) {
	return SetStatus(db, actor, slug, models.StatusPublished)
}

func Deny(db *gorm.DB, actor *models.User, slug string) (*models.Course, error) {
	return SetStatus(db, actor, slug, models.StatusRejected)
}

// Archive takes a course off the catalog by moving it back to draft.
func Archive(db *gorm.DB, actor *models.User, slug string) (*models.Course, error) {
	return SetStatus(db, actor, slug, models.StatusDraft)
}

// apply writes the new status. publishedAt is set on every move to
// PUBLISHED and left as-is otherwise.
func apply(db *gorm.DB, course *models.Course, next models.CourseStatus) error {
	updates := map[string]interface{}{"status": next}
	if next == models.StatusPublished {
		now := time.Now()
		updates["published_at"] = now
		course.PublishedAt = &now
	}
	if err := db.Model(course).Updates(updates).Error; err != nil {
		return apperr.Wrap(err, "failed to set course %d to %s", course.ID, next)
	}
	course.Status = next
	return nil
}

func notifyAuthor(db *gorm.DB, course *models.Course, previous, next models.CourseStatus) {
	if previous != models.StatusPending {
		return
	}
	link := "/author/courses/" + course.Slug
	switch next {
	case models.StatusPublished:
		notificationService.Notify(db, course.AuthorID, models.NotifyCourseApproved,
			"Course approved", fmt.Sprintf("Your course %q is now live.", course.Title), link)
	case models.StatusRejected:
		notificationService.Notify(db, course.AuthorID, models.NotifyCourseRejected,
			"Course rejected", fmt.Sprintf("Your course %q was not approved.", course.Title), link)
	}
}
