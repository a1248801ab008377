package reviewService

import (
	"coursehub/apperr"
	"coursehub/models"
	courseService "coursehub/services/course"
	enrollmentService "coursehub/services/enrollment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Review is a stored review with its author's public summary.
type Review struct {
	models.Review
	User *models.UserSummary `json:"user"`
}

type ListResult struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	Total         int      `json:"total"`
}

type Input struct {
	Rating  int
	Comment *string
}

func view(r models.Review) Review {
	return Review{Review: r, User: r.User.Summary()}
}

// Upsert stores the actor's review of a course they are enrolled in. A
// resubmission without a comment keeps the previous one.
func Upsert(db *gorm.DB, actor *models.User, slug string, in Input) (*Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Invalid("Validation failed!", map[string]string{"rating": "Rating must be between 1 and 5!"})
	}
	course, err := courseService.FindVisible(db, actor, slug)
	if err != nil {
		return nil, err
	}
	enrolled, err := enrollmentService.IsEnrolled(db, actor.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperr.Forbidden("You must be enrolled to review!")
	}

	updateColumns := []string{"rating", "updated_at"}
	if in.Comment != nil {
		updateColumns = append(updateColumns, "comment")
	}
	review := models.Review{
		CourseID: course.ID,
		UserID:   actor.ID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(&review).Error
	if err != nil {
		return nil, apperr.Wrap(err, "failed to save review of user %d for course %d", actor.ID, course.ID)
	}

	var saved models.Review
	err = db.Preload("User").
		Where("course_id = ? AND user_id = ?", course.ID, actor.ID).
		First(&saved).Error
	if err != nil {
		return nil, apperr.Wrap(err, "failed to reload review")
	}
	out := view(saved)
	return &out, nil
}

// List returns the reviews of a visible course, newest first, with the mean rating.
func List(db *gorm.DB, actor *models.User, slug string) (*ListResult, error) {
	course, err := courseService.FindVisible(db, actor, slug)
	if err != nil {
		return nil, err
	}

	var rows []models.Review
	err = db.Preload("User").
		Where("course_id = ?", course.ID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list reviews of course %d", course.ID)
	}
	avg, err := courseService.AverageRating(db, course.ID)
	if err != nil {
		return nil, err
	}

	res := &ListResult{Reviews: make([]Review, 0, len(rows)), AverageRating: avg, Total: len(rows)}
	for _, r := range rows {
		res.Reviews = append(res.Reviews, view(r))
	}
	return res, nil
}
