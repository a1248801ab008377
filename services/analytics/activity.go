package analyticsService

import (
	"fmt"
	"sort"
	"time"

	"coursehub/apperr"
	"coursehub/models"

	"gorm.io/gorm"
)

const (
	DefaultActivityLimit = 30
	MaxActivityLimit     = 100
)

const (
	ActivityEnrollment = "enrollment"
	ActivitySignup     = "user_signup"
	ActivityReview     = "review"
)

type Activity struct {
	Type    string                 `json:"type"`
	Date    time.Time              `json:"date"`
	ID      uint                   `json:"id"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// ClampActivityLimit maps a requested feed size to (0, MaxActivityLimit].
func ClampActivityLimit(limit int) int {
	if limit <= 0 {
		return DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		return MaxActivityLimit
	}
	return limit
}

// MergeActivities orders the feed newest first and truncates it.
func MergeActivities(items []Activity, limit int) []Activity {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Feed merges the latest enrollments, signups and reviews.
func Feed(db *gorm.DB, limit int) ([]Activity, error) {
	limit = ClampActivityLimit(limit)
	items := make([]Activity, 0, limit*3)

	var enrollments []models.Enrollment
	if err := db.Preload("User").Preload("Course").
		Order("enrolled_at DESC, id DESC").
		Limit(limit).
		Find(&enrollments).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to load recent enrollments")
	}
	for _, e := range enrollments {
		if e.User == nil || e.Course == nil {
			continue
		}
		items = append(items, Activity{
			Type:    ActivityEnrollment,
			Date:    e.EnrolledAt,
			ID:      e.ID,
			Message: fmt.Sprintf("%s enrolled in %q", e.User.DisplayName(), e.Course.Title),
			Meta: map[string]interface{}{
				"userId":     e.UserID,
				"courseId":   e.CourseID,
				"courseSlug": e.Course.Slug,
			},
		})
	}

	var users []models.User
	if err := db.Order("created_at DESC, id DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to load recent signups")
	}
	for _, u := range users {
		items = append(items, Activity{
			Type:    ActivitySignup,
			Date:    u.CreatedAt,
			ID:      u.ID,
			Message: fmt.Sprintf("New user: %s (%s)", u.DisplayName(), u.Role),
			Meta:    map[string]interface{}{"email": u.Email},
		})
	}

	var reviews []models.Review
	if err := db.Preload("User").Preload("Course").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to load recent reviews")
	}
	for _, r := range reviews {
		if r.User == nil || r.Course == nil {
			continue
		}
		items = append(items, Activity{
			Type:    ActivityReview,
			Date:    r.CreatedAt,
			ID:      r.ID,
			Message: fmt.Sprintf("%s left a %d-star review on %q", r.User.DisplayName(), r.Rating, r.Course.Title),
			Meta: map[string]interface{}{
				"courseSlug": r.Course.Slug,
				"rating":     r.Rating,
			},
		})
	}

	return MergeActivities(items, limit), nil
}
