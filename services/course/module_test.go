package courseService

import (
	"encoding/json"
	"testing"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/models/content"
	"coursehub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddModuleDefaultsToLesson(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusDraft)

	module, err := AddModule(db, author, course.Slug, ModuleInput{Title: strPtr("Welcome")})
	require.NoError(t, err)
	assert.Equal(t, course.ID, module.CourseID)
	assert.Zero(t, module.Order)

	lesson, ok := module.Body().(content.Lesson)
	require.True(t, ok)
	assert.Empty(t, lesson.Text)
	assert.NotNil(t, lesson.Parts)

	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal(module.Content, &stored))
	assert.Equal(t, "lesson", stored["type"])
}

func TestAddModuleVariants(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusDraft)
	order := 2

	module, err := AddModule(db, author, course.Slug, ModuleInput{
		Title:   strPtr("Watch"),
		Type:    content.KindVideo,
		Content: map[string]interface{}{"videoUrl": "https://youtu.be/dQw4w9WgXcQ", "extra": true},
		Order:   &order,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, module.Order)
	video, ok := module.Body().(content.Video)
	require.True(t, ok)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", video.EmbedURL)

	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal(module.Content, &stored))
	assert.Equal(t, true, stored["extra"], "unknown keys are kept")

	_, err = AddModule(db, author, course.Slug, ModuleInput{
		Title: strPtr("Check"),
		Type:  content.KindQuiz,
		Content: map[string]interface{}{
			"questions": []interface{}{
				map[string]interface{}{"question": "2+2?", "options": []interface{}{"3", "4"}, "correctIndex": 5},
			},
		},
	})
	require.True(t, apperr.Is(err, apperr.KindInvalid))
	assert.Contains(t, apperr.As(err).Fields, "content.questions[0]")
}

func TestAddModuleRequiresManager(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	other := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusDraft)

	_, err := AddModule(db, other, course.Slug, ModuleInput{Title: strPtr("Nope")})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	_, err = AddModule(db, author, course.Slug, ModuleInput{})
	assert.True(t, apperr.Is(err, apperr.KindInvalid))

	_, err = AddModule(db, author, "missing", ModuleInput{Title: strPtr("x")})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdateModuleReplacesContent(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusDraft)
	module := testutil.Modules(t, db, course, 1)[0]
	order := 4

	out, err := UpdateModule(db, author, module.ID, ModuleInput{
		Title:   strPtr("Feedback please"),
		Content: map[string]interface{}{"type": "feedback", "prompt": "How was it?"},
		Order:   &order,
	})
	require.NoError(t, err)
	assert.Equal(t, "Feedback please", out.Title)
	assert.Equal(t, 4, out.Order)
	feedback, ok := out.Body().(content.Feedback)
	require.True(t, ok)
	assert.Equal(t, "How was it?", feedback.Prompt)

	student := testutil.User(t, db, models.RoleStudent)
	_, err = UpdateModule(db, student, module.ID, ModuleInput{Title: strPtr("x")})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	_, err = GetModule(db, author, 9999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDeleteModule(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	student := testutil.User(t, db, models.RoleStudent)
	course := testutil.Course(t, db, author, models.StatusPublished)
	module := testutil.Modules(t, db, course, 1)[0]
	require.NoError(t, db.Create(&models.ModuleCompletion{UserID: student.ID, ModuleID: module.ID}).Error)

	require.NoError(t, DeleteModule(db, author, module.ID))

	var count int64
	require.NoError(t, db.Model(&models.ModuleCompletion{}).Count(&count).Error)
	assert.Zero(t, count)
	_, err := FindModule(db, module.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestModuleJSONCarriesDecodedContent(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusDraft)
	module, err := AddModule(db, author, course.Slug, ModuleInput{
		Title:   strPtr("Legacy"),
		Content: map[string]interface{}{"type": "text", "text": "hello"},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(module)
	require.NoError(t, err)
	var out struct {
		Title   string                 `json:"title"`
		Content map[string]interface{} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Legacy", out.Title)
	assert.Equal(t, "lesson", out.Content["type"])
	assert.Equal(t, "hello", out.Content["text"])
}
