// Package testutil provides an in-memory store and fixtures for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"coursehub/config"
	"coursehub/database"
	"coursehub/models"
	"coursehub/models/content"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var seq int64

func next() int64 {
	return atomic.AddInt64(&seq, 1)
}

// Config returns a config suitable for tests.
func Config() *config.Config {
	return &config.Config{
		Env:                config.EnvDevelopment,
		LogLevel:           "error",
		DBDriver:           "sqlite",
		DBPath:             ":memory:",
		JWTKey:             "test-secret",
		JWTTTL:             time.Hour,
		SaltRound:          4,
		AppURL:             "http://localhost:3000",
		GoogleClientID:     "test-client",
		GoogleTokenInfoURL: "http://127.0.0.1:0/tokeninfo",
	}
}

// DB opens a fresh migrated in-memory database, installs it as the global
// database and closes it when the test ends.
func DB(t *testing.T) *gorm.DB {
	t.Helper()
	if config.AppConfig == nil {
		config.AppConfig = Config()
	}

	db, err := database.Open(Config())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func User(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	n := next()
	username := fmt.Sprintf("user%d", n)
	u := &models.User{
		Email:    fmt.Sprintf("user%d@example.com", n),
		Username: &username,
		Name:     fmt.Sprintf("User %d", n),
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// Course inserts a course owned by author with the given status.
func Course(t *testing.T, db *gorm.DB, author *models.User, status models.CourseStatus) *models.Course {
	t.Helper()
	n := next()
	c := &models.Course{
		AuthorID: author.ID,
		Title:    fmt.Sprintf("Course %d", n),
		Slug:     fmt.Sprintf("course-%d", n),
		Status:   status,
	}
	if status == models.StatusPublished {
		now := time.Now()
		c.PublishedAt = &now
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

// PaidCourse inserts a published paid course.
func PaidCourse(t *testing.T, db *gorm.DB, author *models.User, price float64) *models.Course {
	t.Helper()
	c := Course(t, db, author, models.StatusPublished)
	c.IsPaid = true
	c.Price = &price
	require.NoError(t, db.Save(c).Error)
	return c
}

// Modules inserts count lesson modules into the course, ordered 0..count-1.
func Modules(t *testing.T, db *gorm.DB, course *models.Course, count int) []models.Module {
	t.Helper()
	out := make([]models.Module, 0, count)
	for i := 0; i < count; i++ {
		attrs, err := json.Marshal(content.WithDefaults(content.KindLesson, nil))
		require.NoError(t, err)
		m := models.Module{
			CourseID: course.ID,
			Title:    fmt.Sprintf("Module %d", i+1),
			Order:    i,
			Content:  datatypes.JSON(attrs),
		}
		require.NoError(t, db.Create(&m).Error)
		out = append(out, m)
	}
	return out
}

func Enroll(t *testing.T, db *gorm.DB, user *models.User, course *models.Course) *models.Enrollment {
	t.Helper()
	e := &models.Enrollment{UserID: user.ID, CourseID: course.ID, EnrolledAt: time.Now()}
	require.NoError(t, db.Create(e).Error)
	return e
}
