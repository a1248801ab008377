package courseService

import (
	"testing"

	"coursehub/models"
	"coursehub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"Introduction to React", "introduction-to-react"},
		{"  Go: The  Hard Parts!  ", "go-the-hard-parts"},
		{"C++ -- from scratch", "c-from-scratch"},
		{"snake_case stays", "snake_case-stays"},
		{"!!!", "course"},
		{"", "course"},
	} {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestUniqueSlug(t *testing.T) {
	db := testutil.DB(t)
	author := testutil.User(t, db, models.RoleAuthor)

	slug, err := UniqueSlug(db, "Intro to Go", 0)
	require.NoError(t, err)
	assert.Equal(t, "intro-to-go", slug)

	existing := testutil.Course(t, db, author, models.StatusDraft)
	require.NoError(t, db.Model(existing).Update("slug", "intro-to-go").Error)

	slug, err = UniqueSlug(db, "Intro to Go", 0)
	require.NoError(t, err)
	assert.Regexp(t, `^intro-to-go-[0-9a-f]{8}$`, slug)

	// renaming a course to its own title keeps its slug
	slug, err = UniqueSlug(db, "Intro to Go", existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "intro-to-go", slug)
}
