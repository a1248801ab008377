// Package seed loads demo accounts and courses. Every step is keyed on a
// natural identifier so running it twice changes nothing.
package seed

import (
	"encoding/json"
	"time"

	"coursehub/logging"
	"coursehub/models"
	"coursehub/models/content"
	authService "coursehub/services/auth"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type account struct {
	Email    string
	Name     string
	Username string
	Password string
	Role     models.Role
}

var accounts = []account{
	{"admin@coursehub.dev", "Admin User", "admin", "admin123", models.RoleAdmin},
	{"author@coursehub.dev", "Course Author", "author", "author123", models.RoleAuthor},
	{"student@coursehub.dev", "Student User", "student", "student123", models.RoleStudent},
}

type lesson struct {
	Title    string
	Text     string
	Duration *int
}

type demoCourse struct {
	Course  models.Course
	Lessons []lesson
}

func minutes(n int) *int { return &n }

func str(s string) *string { return &s }

func demoCourses() []demoCourse {
	return []demoCourse{
		{
			Course: models.Course{
				Title:           "Introduction to React",
				Slug:            "introduction-to-react",
				Description:     str("Learn React from scratch: components, hooks, and state."),
				LongDescription: str("<p>This course covers React fundamentals including JSX, components, hooks (useState, useEffect), and building a small app.</p>"),
				Category:        str("Web Development"),
				Level:           str("beginner"),
				Duration:        minutes(8),
			},
			Lessons: []lesson{
				{"What is React?", "React is a JavaScript library for building user interfaces.", minutes(10)},
				{"Components and JSX", "Learn how to create components and use JSX.", minutes(15)},
				{"State and Hooks", "useState and useEffect in depth.", minutes(20)},
			},
		},
		{
			Course: models.Course{
				Title:       "Node.js Backend Development",
				Slug:        "node-js-backend",
				Description: str("Build REST APIs and backends with Node.js and Express."),
				Category:    str("Web Development"),
				Level:       str("intermediate"),
				Duration:    minutes(12),
			},
			Lessons: []lesson{
				{Title: "Setting up Node.js"},
				{Title: "Express basics"},
			},
		},
	}
}

// Run seeds the demo data inside one transaction.
func Run(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		users := map[models.Role]*models.User{}
		for _, a := range accounts {
			u, err := upsertUser(tx, a)
			if err != nil {
				return err
			}
			users[a.Role] = u
			logging.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("Seeded user")
		}

		var first *models.Course
		for _, dc := range demoCourses() {
			c, err := upsertCourse(tx, users[models.RoleAuthor], dc)
			if err != nil {
				return err
			}
			if first == nil {
				first = c
			}
			logging.Info().Str("slug", c.Slug).Msg("Seeded course")
		}

		enrollment := models.Enrollment{
			UserID:     users[models.RoleStudent].ID,
			CourseID:   first.ID,
			Progress:   33,
			EnrolledAt: time.Now(),
		}
		err := tx.Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
			Attrs(enrollment).
			FirstOrCreate(&enrollment).Error
		if err != nil {
			return err
		}
		logging.Info().Uint("courseId", first.ID).Msg("Seeded enrollment")
		return nil
	})
}

func upsertUser(tx *gorm.DB, a account) (*models.User, error) {
	hashed, err := authService.HashPassword(a.Password)
	if err != nil {
		return nil, err
	}
	username := a.Username
	user := models.User{
		Email:    a.Email,
		Name:     a.Name,
		Username: &username,
		Password: hashed,
		Role:     a.Role,
	}
	if err := tx.Where("email = ?", a.Email).Attrs(user).FirstOrCreate(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func upsertCourse(tx *gorm.DB, author *models.User, dc demoCourse) (*models.Course, error) {
	now := time.Now()
	course := dc.Course
	course.AuthorID = author.ID
	course.Status = models.StatusPublished
	course.PublishedAt = &now
	if err := tx.Where("slug = ?", course.Slug).Attrs(course).FirstOrCreate(&course).Error; err != nil {
		return nil, err
	}

	var count int64
	if err := tx.Model(&models.Module{}).Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return &course, nil
	}

	modules := make([]models.Module, 0, len(dc.Lessons))
	for i, l := range dc.Lessons {
		attrs := map[string]interface{}{}
		if l.Text != "" {
			attrs["text"] = l.Text
		}
		raw, err := json.Marshal(content.WithDefaults(content.KindLesson, attrs))
		if err != nil {
			return nil, err
		}
		modules = append(modules, models.Module{
			CourseID: course.ID,
			Title:    l.Title,
			Order:    i,
			Content:  datatypes.JSON(raw),
			Duration: l.Duration,
		})
	}
	if err := tx.Create(&modules).Error; err != nil {
		return nil, err
	}
	return &course, nil
}
