package access

import (
	"testing"

	"coursehub/models"

	"github.com/stretchr/testify/assert"
)

func TestCanManage(t *testing.T) {
	author := &models.User{Base: models.Base{ID: 1}, Role: models.RoleAuthor}
	other := &models.User{Base: models.Base{ID: 2}, Role: models.RoleAuthor}
	admin := &models.User{Base: models.Base{ID: 3}, Role: models.RoleAdmin}
	course := &models.Course{AuthorID: 1, Status: models.StatusDraft}

	assert.True(t, CanManage(author, course))
	assert.False(t, CanManage(other, course))
	assert.True(t, CanManage(admin, course))
	assert.False(t, CanManage(nil, course))
	assert.False(t, CanManage(author, nil))
}

func TestCanView(t *testing.T) {
	author := &models.User{Base: models.Base{ID: 1}, Role: models.RoleAuthor}
	student := &models.User{Base: models.Base{ID: 2}, Role: models.RoleStudent}
	draft := &models.Course{AuthorID: 1, Status: models.StatusDraft}
	published := &models.Course{AuthorID: 1, Status: models.StatusPublished}

	assert.True(t, CanView(nil, published))
	assert.True(t, CanView(student, published))
	assert.False(t, CanView(nil, draft))
	assert.False(t, CanView(student, draft))
	assert.True(t, CanView(author, draft))
}

func TestRoleCapabilities(t *testing.T) {
	for _, tc := range []struct {
		role   models.Role
		author bool
		enroll bool
	}{
		{models.RoleStudent, false, true},
		{models.RoleAuthor, true, false},
		{models.RoleAdmin, true, true},
	} {
		u := &models.User{Role: tc.role}
		assert.Equal(t, tc.author, CanAuthor(u), tc.role)
		assert.Equal(t, tc.enroll, CanEnroll(u), tc.role)
	}
	assert.False(t, CanAuthor(nil))
	assert.False(t, CanEnroll(nil))
}
