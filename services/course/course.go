package courseService

import (
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/services/access"

	"gorm.io/gorm"
)

// Input carries course fields. Nil pointers are left untouched on update.
type Input struct {
	Title           *string
	Description     *string
	LongDescription *string
	Thumbnail       *string
	IsPaid          *bool
	Price           *float64
	Category        *string
	Level           *string
	Duration        *int
	// AuthorID lets an admin create a course on behalf of another user.
	AuthorID *uint
}

type ListResult struct {
	Courses []models.Course `json:"courses"`
	Total   int64           `json:"total"`
}

func authorPreload(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "username", "image")
}

func modulePreload(db *gorm.DB) *gorm.DB {
	return db.Order(models.ModuleOrder)
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// FindBySlug loads a course without any visibility check.
func FindBySlug(db *gorm.DB, slug string) (*models.Course, error) {
	var course models.Course
	if err := db.Where("slug = ?", slug).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Course not found!")
		}
		return nil, apperr.Wrap(err, "failed to load course %q", slug)
	}
	return &course, nil
}

// FindVisible loads a course that actor may see. Hidden courses are reported
// exactly like missing ones.
func FindVisible(db *gorm.DB, actor *models.User, slug string) (*models.Course, error) {
	course, err := FindBySlug(db, slug)
	if err != nil {
		return nil, err
	}
	if !access.CanView(actor, course) {
		return nil, apperr.NotFound("Course not found!")
	}
	return course, nil
}

// FindManaged loads a course that actor may mutate.
func FindManaged(db *gorm.DB, actor *models.User, slug string) (*models.Course, error) {
	course, err := FindBySlug(db, slug)
	if err != nil {
		return nil, err
	}
	if !access.CanManage(actor, course) {
		return nil, apperr.Forbidden("You do not have permission to manage this course!")
	}
	return course, nil
}

// Create inserts a course. Authors start in DRAFT; admins publish immediately.
func Create(db *gorm.DB, actor *models.User, in Input) (*models.Course, error) {
	if !access.CanAuthor(actor) {
		return nil, apperr.Forbidden("Only authors and admins can create courses!")
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, apperr.Invalid("Validation failed!", map[string]string{"title": "Title is required!"})
	}

	authorID := actor.ID
	if actor.Role == models.RoleAdmin && in.AuthorID != nil && *in.AuthorID != 0 {
		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", *in.AuthorID).Count(&count).Error; err != nil {
			return nil, apperr.Wrap(err, "failed to load author %d", *in.AuthorID)
		}
		if count == 0 {
			return nil, apperr.NotFound("Author not found!")
		}
		authorID = *in.AuthorID
	}

	title := strings.TrimSpace(*in.Title)
	slug, err := UniqueSlug(db, title, 0)
	if err != nil {
		return nil, err
	}

	course := models.Course{
		AuthorID:        authorID,
		Title:           title,
		Slug:            slug,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Thumbnail:       emptyToNil(in.Thumbnail),
		Category:        in.Category,
		Level:           in.Level,
		Duration:        in.Duration,
		Price:           in.Price,
		Status:          models.StatusDraft,
	}
	if in.IsPaid != nil {
		course.IsPaid = *in.IsPaid
	}
	if actor.Role == models.RoleAdmin {
		now := time.Now()
		course.Status = models.StatusPublished
		course.PublishedAt = &now
	}

	if err := db.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A course with this slug already exists!", nil)
		}
		return nil, apperr.Wrap(err, "failed to create course")
	}
	return reload(db, course.ID)
}

func reload(db *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	err := db.Preload("Author", authorPreload).
		Preload("Modules", modulePreload).
		First(&course, id).Error
	if err != nil {
		return nil, apperr.Wrap(err, "failed to reload course %d", id)
	}
	return &course, nil
}

// Get returns a visible course with its author, ordered modules and counters.
func Get(db *gorm.DB, actor *models.User, slug string) (*models.Course, error) {
	course, err := FindVisible(db, actor, slug)
	if err != nil {
		return nil, err
	}
	full, err := reload(db, course.ID)
	if err != nil {
		return nil, err
	}
	if err := attachCounts(db, []*models.Course{full}); err != nil {
		return nil, err
	}
	avg, err := AverageRating(db, full.ID)
	if err != nil {
		return nil, err
	}
	full.AverageRating = &avg
	return full, nil
}

// List returns published courses. Admins may ask for another status.
func List(db *gorm.DB, actor *models.User, status models.CourseStatus, limit, offset int) (*ListResult, error) {
	if status == "" || !actor.IsAdmin() {
		status = models.StatusPublished
	}
	return list(db.Where("status = ?", status), db, limit, offset)
}

// ListByAuthor returns the courses of actor in every status, optionally
// narrowed to one.
func ListByAuthor(db *gorm.DB, actor *models.User, status models.CourseStatus, limit, offset int) (*ListResult, error) {
	if !access.CanAuthor(actor) {
		return nil, apperr.Forbidden("Only authors and admins have courses!")
	}
	q := db.Where("author_id = ?", actor.ID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return list(q, db, limit, offset)
}

// AdminList returns courses of any status for the moderation queue.
func AdminList(db *gorm.DB, status models.CourseStatus, limit, offset int) (*ListResult, error) {
	q := db.Model(&models.Course{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return list(q, db, limit, offset)
}

func list(q, db *gorm.DB, limit, offset int) (*ListResult, error) {
	res := &ListResult{Courses: []models.Course{}}
	if err := q.Session(&gorm.Session{}).Model(&models.Course{}).Count(&res.Total).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to count courses")
	}
	err := q.Session(&gorm.Session{}).
		Preload("Author", authorPreload).
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&res.Courses).Error
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list courses")
	}

	ptrs := make([]*models.Course, len(res.Courses))
	for i := range res.Courses {
		ptrs[i] = &res.Courses[i]
	}
	if err := attachCounts(db, ptrs); err != nil {
		return nil, err
	}
	return res, nil
}

type countRow struct {
	CourseID uint
	N        int64
}

func countBy(db *gorm.DB, model interface{}, ids []uint) (map[uint]int64, error) {
	var rows []countRow
	err := db.Model(model).
		Select("course_id, COUNT(*) AS n").
		Where("course_id IN ?", ids).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]int64, len(rows))
	for _, r := range rows {
		out[r.CourseID] = r.N
	}
	return out, nil
}

// attachCounts fills the enrollment and review counters in place.
func attachCounts(db *gorm.DB, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	ids := make([]uint, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	enrollments, err := countBy(db, &models.Enrollment{}, ids)
	if err != nil {
		return apperr.Wrap(err, "failed to count enrollments")
	}
	reviews, err := countBy(db, &models.Review{}, ids)
	if err != nil {
		return apperr.Wrap(err, "failed to count reviews")
	}
	for _, c := range courses {
		c.EnrollmentCount = enrollments[c.ID]
		c.ReviewCount = reviews[c.ID]
	}
	return nil
}

// AverageRating is the mean review rating rounded to one decimal, 0 when unrated.
func AverageRating(db *gorm.DB, courseID uint) (float64, error) {
	var avg sql.NullFloat64
	err := db.Model(&models.Review{}).
		Select("AVG(rating)").
		Where("course_id = ?", courseID).
		Row().
		Scan(&avg)
	if err != nil {
		return 0, apperr.Wrap(err, "failed to average ratings of course %d", courseID)
	}
	if !avg.Valid {
		return 0, nil
	}
	return math.Round(avg.Float64*10) / 10, nil
}

// Update applies a partial change. A new title re-derives the slug.
func Update(db *gorm.DB, actor *models.User, slug string, in Input) (*models.Course, error) {
	course, err := FindManaged(db, actor, slug)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperr.Invalid("Validation failed!", map[string]string{"title": "Title is required!"})
		}
		if title != course.Title {
			newSlug, err := UniqueSlug(db, title, course.ID)
			if err != nil {
				return nil, err
			}
			updates["title"] = title
			updates["slug"] = newSlug
		}
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.LongDescription != nil {
		updates["long_description"] = *in.LongDescription
	}
	if in.Thumbnail != nil {
		updates["thumbnail"] = emptyToNil(in.Thumbnail)
	}
	if in.IsPaid != nil {
		updates["is_paid"] = *in.IsPaid
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Level != nil {
		updates["level"] = *in.Level
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}

	if len(updates) > 0 {
		if err := db.Model(course).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperr.Conflict("A course with this slug already exists!", nil)
			}
			return nil, apperr.Wrap(err, "failed to update course %d", course.ID)
		}
	}
	return reload(db, course.ID)
}

// Delete removes the course together with everything that hangs off it.
func Delete(db *gorm.DB, actor *models.User, slug string) error {
	course, err := FindManaged(db, actor, slug)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		moduleIDs := tx.Model(&models.Module{}).Select("id").Where("course_id = ?", course.ID)
		if err := tx.Where("module_id IN (?)", moduleIDs).Delete(&models.ModuleCompletion{}).Error; err != nil {
			return err
		}
		for _, model := range []interface{}{&models.Module{}, &models.Enrollment{}, &models.Review{}} {
			if err := tx.Where("course_id = ?", course.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(course).Error
	})
	if err != nil {
		return apperr.Wrap(err, "failed to delete course %d", course.ID)
	}
	return nil
}
