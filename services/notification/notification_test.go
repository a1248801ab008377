package notificationService

import (
	"testing"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyAndList(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.User(t, db, models.RoleAuthor)
	other := testutil.User(t, db, models.RoleAuthor)

	Notify(db, user.ID, models.NotifyNewEnrollment, "New enrollment", "first", "/author/courses/a")
	Notify(db, user.ID, models.NotifyNewEnrollment, "New enrollment", "second", "")
	Notify(db, other.ID, models.NotifyNewEnrollment, "New enrollment", "elsewhere", "")

	res, err := List(db, user.ID, 20, false)
	require.NoError(t, err)
	require.Len(t, res.Notifications, 2)
	assert.EqualValues(t, 2, res.UnreadCount)
	assert.Equal(t, "second", res.Notifications[0].Message)
	assert.Nil(t, res.Notifications[0].Link)
	require.NotNil(t, res.Notifications[1].Link)

	res, err = List(db, user.ID, 1, false)
	require.NoError(t, err)
	assert.Len(t, res.Notifications, 1)
	assert.EqualValues(t, 2, res.UnreadCount)
}

func TestMarkRead(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.User(t, db, models.RoleAuthor)
	other := testutil.User(t, db, models.RoleAuthor)
	for i := 0; i < 3; i++ {
		Notify(db, user.ID, models.NotifyNewEnrollment, "t", "m", "")
	}
	Notify(db, other.ID, models.NotifyNewEnrollment, "t", "m", "")

	res, err := List(db, user.ID, 20, false)
	require.NoError(t, err)
	id := res.Notifications[0].ID

	n, err := MarkRead(db, user.ID, &id, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// marking someone else's notification touches nothing
	n, err = MarkRead(db, other.ID, &id, false)
	require.NoError(t, err)
	assert.Zero(t, n)

	res, err = List(db, user.ID, 20, true)
	require.NoError(t, err)
	assert.Len(t, res.Notifications, 2)
	assert.EqualValues(t, 2, res.UnreadCount)

	n, err = MarkRead(db, user.ID, nil, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	res, err = List(db, other.ID, 20, true)
	require.NoError(t, err)
	assert.Len(t, res.Notifications, 1)

	_, err = MarkRead(db, user.ID, nil, false)
	assert.True(t, apperr.Is(err, apperr.KindInvalid))
}
