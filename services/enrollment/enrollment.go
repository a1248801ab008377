package enrollmentService

import (
	"errors"
	"fmt"
	"math"
	"time"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/services/access"
	courseService "coursehub/services/course"
	notificationService "coursehub/services/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Progress is the outcome of completing a module.
type Progress struct {
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

// ComputeProgress is round(100 * completed / total), 0 for an empty course.
func ComputeProgress(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) * 100 / float64(total)))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

func find(db *gorm.DB, userID, courseID uint) (*models.Enrollment, error) {
	var e models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Wrap(err, "failed to load enrollment of user %d in course %d", userID, courseID)
	}
	return &e, nil
}

// IsEnrolled reports whether userID holds an enrollment in courseID.
func IsEnrolled(db *gorm.DB, userID, courseID uint) (bool, error) {
	e, err := find(db, userID, courseID)
	return e != nil, err
}

// Enroll creates the enrollment of actor in a published course and tells the
// author about it. A second enrollment is a conflict carrying the first.
func Enroll(db *gorm.DB, actor *models.User, courseID uint) (*models.Enrollment, error) {
	if !access.CanEnroll(actor) {
		return nil, apperr.Forbidden("Only students can enroll in courses!")
	}

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Course not found!")
		}
		return nil, apperr.Wrap(err, "failed to load course %d", courseID)
	}
	if course.Status != models.StatusPublished {
		return nil, apperr.Invalid("Course is not available for enrollment!", nil)
	}

	existing, err := find(db, actor.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Already enrolled!", existing)
	}

	enrollment := models.Enrollment{
		UserID:     actor.ID,
		CourseID:   course.ID,
		EnrolledAt: time.Now(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race with a concurrent enroll of the same pair
			existing, findErr := find(db, actor.ID, course.ID)
			if findErr != nil {
				return nil, findErr
			}
			return nil, apperr.Conflict("Already enrolled!", existing)
		}
		return nil, apperr.Wrap(err, "failed to enroll user %d in course %d", actor.ID, course.ID)
	}
	enrollment.Course = &course

	notificationService.Notify(db, course.AuthorID, models.NotifyNewEnrollment,
		"New enrollment",
		fmt.Sprintf("A student enrolled in %q.", course.Title),
		"/author/courses/"+course.Slug,
	)
	return &enrollment, nil
}

// CompleteModule records the completion of a module and recomputes the
// enrollment's progress. Completing twice is a no-op apart from the recount.
func CompleteModule(db *gorm.DB, actor *models.User, moduleID uint) (*Progress, error) {
	module, err := courseService.FindModule(db, moduleID)
	if err != nil {
		return nil, err
	}
	enrollment, err := find(db, actor.ID, module.CourseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperr.Forbidden("You must be enrolled to complete modules!")
	}

	var out Progress
	err = db.Transaction(func(tx *gorm.DB) error {
		completion := models.ModuleCompletion{UserID: actor.ID, ModuleID: module.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
			return err
		}

		courseModules := tx.Model(&models.Module{}).Select("id").Where("course_id = ?", module.CourseID)
		var total, completed int64
		if err := tx.Model(&models.Module{}).Where("course_id = ?", module.CourseID).Count(&total).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ModuleCompletion{}).
			Where("user_id = ? AND module_id IN (?)", actor.ID, courseModules).
			Count(&completed).Error; err != nil {
			return err
		}

		out.Progress = ComputeProgress(completed, total)
		out.Completed = out.Progress >= 100

		updates := map[string]interface{}{"progress": out.Progress}
		if out.Completed && enrollment.CompletedAt == nil {
			updates["completed_at"] = time.Now()
		}
		return tx.Model(enrollment).Updates(updates).Error
	})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to complete module %d for user %d", moduleID, actor.ID)
	}
	return &out, nil
}

// List returns the enrollments of a user, newest first, with course summaries.
func List(db *gorm.DB, userID uint) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	err := db.Preload("Course", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "title", "slug", "thumbnail", "category", "status", "author_id")
	}).
		Where("user_id = ?", userID).
		Order("enrolled_at DESC, id DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list enrollments of user %d", userID)
	}
	return enrollments, nil
}
