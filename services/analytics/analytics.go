package analyticsService

import (
	"sort"
	"time"

	"coursehub/apperr"
	"coursehub/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

const (
	DefaultDays = 30
	MinDays     = 7
	MaxDays     = 90

	topCourseLimit = 10
)

// ClampDays maps a requested window to [MinDays, MaxDays]; 0 means unset.
func ClampDays(days int) int {
	if days == 0 {
		days = DefaultDays
	}
	if days < MinDays {
		return MinDays
	}
	if days > MaxDays {
		return MaxDays
	}
	return days
}

// Since is the start of the day that lies days days before t.
func Since(t time.Time, days int) time.Time {
	return now.With(t).BeginningOfDay().AddDate(0, 0, -days)
}

type Totals struct {
	Users       int64 `json:"users"`
	Courses     int64 `json:"courses"`
	Enrollments int64 `json:"enrollments"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type TopCourse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Enrollments int64  `json:"enrollments"`
	Reviews     int64  `json:"reviews"`
}

type Report struct {
	Days              int                           `json:"days"`
	Totals            Totals                        `json:"totals"`
	CoursesByStatus   map[models.CourseStatus]int64 `json:"coursesByStatus"`
	EnrollmentsByDay  []DayCount                    `json:"enrollmentsByDay"`
	TopCourses        []TopCourse                   `json:"topCourses"`
	NewUsersLastNDays int64                         `json:"newUsersLastNDays"`
}

// BucketByDay counts timestamps per local calendar day, ascending.
func BucketByDay(times []time.Time) []DayCount {
	counts := map[string]int64{}
	for _, t := range times {
		counts[now.With(t).BeginningOfDay().Format("2006-01-02")]++
	}
	out := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DayCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func statusCounts(db *gorm.DB) (map[models.CourseStatus]int64, error) {
	var rows []struct {
		Status models.CourseStatus
		N      int64
	}
	err := db.Model(&models.Course{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[models.CourseStatus]int64, len(models.CourseStatuses))
	for _, s := range models.CourseStatuses {
		out[s] = 0
	}
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}

func courseCounts(db *gorm.DB, model interface{}) (map[uint]int64, error) {
	var rows []struct {
		CourseID uint
		N        int64
	}
	err := db.Model(model).
		Select("course_id, COUNT(*) AS n").
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

// Analytics builds the dashboard for the last days days.
func Analytics(db *gorm.DB, days int, at time.Time) (*Report, error) {
	days = ClampDays(days)
	since := Since(at, days)
	report := &Report{Days: days}

	for _, c := range []struct {
		model interface{}
		dst   *int64
	}{
		{&models.User{}, &report.Totals.Users},
		{&models.Course{}, &report.Totals.Courses},
		{&models.Enrollment{}, &report.Totals.Enrollments},
	} {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, apperr.Wrap(err, "failed to count totals")
		}
	}

	byStatus, err := statusCounts(db)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to count courses by status")
	}
	report.CoursesByStatus = byStatus

	var enrolledAt []time.Time
	if err := db.Model(&models.Enrollment{}).
		Where("enrolled_at >= ?", since).
		Pluck("enrolled_at", &enrolledAt).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to load enrollments since %s", since)
	}
	report.EnrollmentsByDay = BucketByDay(enrolledAt)

	if report.TopCourses, err = topCourses(db); err != nil {
		return nil, err
	}

	if err := db.Model(&models.User{}).
		Where("created_at >= ?", since).
		Count(&report.NewUsersLastNDays).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to count new users")
	}
	return report, nil
}

func topCourses(db *gorm.DB) ([]TopCourse, error) {
	var courses []TopCourse
	err := db.Model(&models.Course{}).
		Select("id, title, slug").
		Where("status = ?", models.StatusPublished).
		Scan(&courses).Error
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load published courses")
	}
	enrollments, err := courseCounts(db, &models.Enrollment{})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to count enrollments by course")
	}
	reviews, err := courseCounts(db, &models.Review{})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to count reviews by course")
	}

	for i := range courses {
		courses[i].Enrollments = enrollments[courses[i].ID]
		courses[i].Reviews = reviews[courses[i].ID]
	}
	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].Enrollments != courses[j].Enrollments {
			return courses[i].Enrollments > courses[j].Enrollments
		}
		return courses[i].ID < courses[j].ID
	})
	if len(courses) > topCourseLimit {
		courses = courses[:topCourseLimit]
	}
	return courses, nil
}
