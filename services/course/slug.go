package courseService

import (
	"regexp"
	"strings"

	"coursehub/apperr"
	"coursehub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const fallbackSlug = "course"

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonWord    = regexp.MustCompile(`[^\w-]+`)
	hyphenRun  = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases title and reduces it to word characters and single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespace.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallbackSlug
	}
	return s
}

func slugToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// UniqueSlug derives a slug for title that no other course holds. excludeID
// skips the course being renamed.
func UniqueSlug(db *gorm.DB, title string, excludeID uint) (string, error) {
	base := Slugify(title)
	candidate := base
	for {
		q := db.Model(&models.Course{}).Where("slug = ?", candidate)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", apperr.Wrap(err, "failed to check slug %q", candidate)
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = base + "-" + slugToken()
	}
}
