package revenueService

import (
	"errors"
	"strings"
	"time"

	"coursehub/apperr"
	"coursehub/models"

	"gorm.io/gorm"
)

const recentPayoutLimit = 20

func authorName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.DisplayName()
}

func payoutLine(p models.Payout) PayoutLine {
	return PayoutLine{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		AuthorName: authorName(p.Author),
		Amount:     p.Amount,
		Note:       p.Note,
		Status:     p.Status,
		PaidAt:     p.PaidAt.UTC().Format(time.RFC3339),
	}
}

// CourseRevenues prices every published paid course at its current
// enrollment count.
func CourseRevenues(db *gorm.DB) ([]CourseRevenue, error) {
	var courses []models.Course
	err := db.Preload("Author").
		Where("is_paid = ? AND status = ? AND price IS NOT NULL", true, models.StatusPublished).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load paid courses")
	}

	out := make([]CourseRevenue, 0, len(courses))
	for _, c := range courses {
		var enrollments int64
		if err := db.Model(&models.Enrollment{}).Where("course_id = ?", c.ID).Count(&enrollments).Error; err != nil {
			return nil, apperr.Wrap(err, "failed to count enrollments of course %d", c.ID)
		}
		price := *c.Price
		out = append(out, CourseRevenue{
			CourseID:    c.ID,
			Title:       c.Title,
			Slug:        c.Slug,
			AuthorID:    c.AuthorID,
			AuthorName:  authorName(c.Author),
			Price:       price,
			Enrollments: enrollments,
			Revenue:     price * float64(enrollments),
		})
	}
	return out, nil
}

// BuildReport assembles the admin revenue view.
func BuildReport(db *gorm.DB) (*Report, error) {
	courses, err := CourseRevenues(db)
	if err != nil {
		return nil, err
	}

	var payouts []models.Payout
	if err := db.Preload("Author").Order("paid_at DESC, id DESC").Find(&payouts).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to load payouts")
	}
	lines := make([]PayoutLine, 0, len(payouts))
	for _, p := range payouts {
		lines = append(lines, payoutLine(p))
	}

	byAuthor, totals := Reconcile(courses, lines)
	recent := lines
	if len(recent) > recentPayoutLimit {
		recent = recent[:recentPayoutLimit]
	}
	return &Report{
		RevenueByCourse: courses,
		RevenueByAuthor: byAuthor,
		Totals:          totals,
		RecentPayouts:   recent,
	}, nil
}

// RecordPayout appends a completed payout. Balances are not checked.
func RecordPayout(db *gorm.DB, authorID uint, amount float64, note *string) (*PayoutLine, error) {
	fields := map[string]string{}
	if authorID == 0 {
		fields["authorId"] = "Author is required!"
	}
	if !(amount > 0) {
		fields["amount"] = "Amount must be a positive number!"
	}
	if len(fields) > 0 {
		return nil, apperr.Invalid("Validation failed!", fields)
	}

	var author models.User
	if err := db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Author not found!")
		}
		return nil, apperr.Wrap(err, "failed to load author %d", authorID)
	}

	if note != nil {
		trimmed := strings.TrimSpace(*note)
		note = &trimmed
		if trimmed == "" {
			note = nil
		}
	}
	payout := models.Payout{
		AuthorID: author.ID,
		Amount:   amount,
		Note:     note,
		Status:   models.PayoutCompleted,
		PaidAt:   time.Now(),
	}
	if err := db.Create(&payout).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to record payout for author %d", authorID)
	}
	payout.Author = &author
	line := payoutLine(payout)
	return &line, nil
}
