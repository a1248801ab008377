package courseService

import (
	"testing"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOnSubmit(t *testing.T) {
	assert.Equal(t, models.StatusPending, NextOnSubmit(models.RoleAuthor))
	assert.Equal(t, models.StatusPublished, NextOnSubmit(models.RoleAdmin))
}

func TestSubmitFromEveryStatus(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	admin := testutil.User(t, db, models.RoleAdmin)

	for _, status := range []models.CourseStatus{
		models.StatusDraft, models.StatusRejected, models.StatusPending, models.StatusPublished,
	} {
		course := testutil.Course(t, db, author, status)
		out, err := Submit(db, author, course.Slug)
		require.NoError(t, err, "author from %s", status)
		assert.Equal(t, models.StatusPending, out.Status, "author from %s", status)

		course = testutil.Course(t, db, author, status)
		out, err = Submit(db, admin, course.Slug)
		require.NoError(t, err, "admin from %s", status)
		assert.Equal(t, models.StatusPublished, out.Status, "admin from %s", status)
		assert.NotNil(t, out.PublishedAt)
	}
}

func TestSubmitMovesAuthorCourseToReview(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusDraft)

	out, err := Submit(db, author, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, out.Status)
	assert.Nil(t, out.PublishedAt)

	other := testutil.User(t, db, models.RoleAuthor)
	_, err = Submit(db, other, course.Slug)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
}

func TestSubmitByAdminPublishes(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	admin := testutil.User(t, db, models.RoleAdmin)
	course := testutil.Course(t, db, author, models.StatusDraft)

	out, err := Submit(db, admin, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, out.Status)
	assert.NotNil(t, out.PublishedAt)
}

func TestSetStatusIsAdminOnly(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusPending)

	_, err := SetStatus(db, author, course.Slug, models.StatusPublished)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	admin := testutil.User(t, db, models.RoleAdmin)
	_, err = SetStatus(db, admin, course.Slug, models.StatusPending)
	assert.True(t, apperr.Is(err, apperr.KindInvalid))

	_, err = SetStatus(db, admin, "missing", models.StatusDraft)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestApproveAndDenyNotifyAuthor(t *testing.T) {
	db := testutil.DB(t)
	admin := testutil.User(t, db, models.RoleAdmin)
	author := testutil.User(t, db, models.RoleAuthor)
	approved := testutil.Course(t, db, author, models.StatusPending)
	denied := testutil.Course(t, db, author, models.StatusPending)

	out, err := Approve(db, admin, approved.Slug)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, out.Status)
	assert.NotNil(t, out.PublishedAt)

	out, err = Deny(db, admin, denied.Slug)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, out.Status)

	var notes []models.Notification
	require.NoError(t, db.Where("user_id = ?", author.ID).Order("id").Find(&notes).Error)
	require.Len(t, notes, 2)
	assert.Equal(t, models.NotifyCourseApproved, notes[0].Type)
	assert.Equal(t, models.NotifyCourseRejected, notes[1].Type)
	require.NotNil(t, notes[0].Link)
	assert.Equal(t, "/author/courses/"+approved.Slug, *notes[0].Link)
}

func TestArchiveKeepsPublishedAt(t *testing.T) {
	db := testutil.DB(t)
	admin := testutil.User(t, db, models.RoleAdmin)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusPublished)

	out, err := Archive(db, admin, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, out.Status)
	assert.NotNil(t, out.PublishedAt)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", author.ID).Count(&count).Error)
	assert.Zero(t, count)
}
