package reviewService

import (
	"testing"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpsert(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	student := testutil.User(t, db, models.RoleStudent)
	course := testutil.Course(t, db, author, models.StatusPublished)
	testutil.Enroll(t, db, student, course)

	review, err := Upsert(db, student, course.Slug, Input{Rating: 4, Comment: strPtr("Solid")})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	require.NotNil(t, review.User)
	assert.Equal(t, student.ID, review.User.ID)

	// a second submission updates the same row and keeps the comment
	review, err = Upsert(db, student, course.Slug, Input{Rating: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, review.Rating)
	require.NotNil(t, review.Comment)
	assert.Equal(t, "Solid", *review.Comment)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	review, err = Upsert(db, student, course.Slug, Input{Rating: 5, Comment: strPtr("Better on reread")})
	require.NoError(t, err)
	assert.Equal(t, "Better on reread", *review.Comment)
}

func TestUpsertRejections(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	student := testutil.User(t, db, models.RoleStudent)
	course := testutil.Course(t, db, author, models.StatusPublished)
	draft := testutil.Course(t, db, author, models.StatusDraft)

	_, err := Upsert(db, student, course.Slug, Input{Rating: 4})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	testutil.Enroll(t, db, student, course)
	for _, rating := range []int{0, 6} {
		_, err = Upsert(db, student, course.Slug, Input{Rating: rating})
		assert.True(t, apperr.Is(err, apperr.KindInvalid), "rating %d", rating)
	}

	_, err = Upsert(db, student, draft.Slug, Input{Rating: 4})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpsertAfterArchiveIsNotFound(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	student := testutil.User(t, db, models.RoleStudent)
	course := testutil.Course(t, db, author, models.StatusPublished)
	testutil.Enroll(t, db, student, course)

	_, err := Upsert(db, student, course.Slug, Input{Rating: 4})
	require.NoError(t, err)

	require.NoError(t, db.Model(course).Update("status", models.StatusDraft).Error)
	_, err = Upsert(db, student, course.Slug, Input{Rating: 5})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestList(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)
	course := testutil.Course(t, db, author, models.StatusPublished)

	res, err := List(db, nil, course.Slug)
	require.NoError(t, err)
	assert.Empty(t, res.Reviews)
	assert.Zero(t, res.AverageRating)

	for _, rating := range []int{3, 4} {
		student := testutil.User(t, db, models.RoleStudent)
		testutil.Enroll(t, db, student, course)
		_, err := Upsert(db, student, course.Slug, Input{Rating: rating})
		require.NoError(t, err)
	}

	res, err = List(db, nil, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 3.5, res.AverageRating)
	for _, r := range res.Reviews {
		assert.NotNil(t, r.User)
	}

	draft := testutil.Course(t, db, author, models.StatusDraft)
	_, err = List(db, nil, draft.Slug)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	_, err = List(db, author, draft.Slug)
	assert.NoError(t, err)
}
