package authService

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/apperr"
	"coursehub/models"
	"coursehub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier map[string]*GoogleIdentity

func (f fakeVerifier) Verify(_ context.Context, idToken string) (*GoogleIdentity, error) {
	if id, ok := f[idToken]; ok {
		return id, nil
	}
	return nil, apperr.Unauthorized("Invalid Google token!")
}

func TestGoogleSignIn(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	existing, err := Register(db, RegisterInput{Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)

	verifier := fakeVerifier{
		"new":    {Sub: "1234567890", Email: "New.User@Example.com", Name: "New User", Picture: "https://img.test/p.png"},
		"linked": {Sub: "555000111", Email: "ada@example.com", Picture: "https://img.test/ada.png"},
	}

	user, err := GoogleSignIn(ctx, db, verifier, "new")
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role)
	require.NotNil(t, user.Username)
	assert.Equal(t, "new.user_567890", *user.Username)

	again, err := GoogleSignIn(ctx, db, verifier, "new")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	linked, err := GoogleSignIn(ctx, db, verifier, "linked")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, linked.ID)
	stored, err := FindUser(db, existing.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.GoogleSub)
	assert.Equal(t, "555000111", *stored.GoogleSub)
	assert.Equal(t, "https://img.test/ada.png", stored.Image)

	_, err = GoogleSignIn(ctx, db, verifier, "forged")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestGoogleVerifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("id_token") {
		case "good":
			_, _ = w.Write([]byte(`{"sub":"42","email":"a@b.c","email_verified":"true","aud":"client-1"}`))
		case "other-app":
			_, _ = w.Write([]byte(`{"sub":"42","email":"a@b.c","email_verified":"true","aud":"client-2"}`))
		case "unverified":
			_, _ = w.Write([]byte(`{"sub":"42","email":"a@b.c","email_verified":"false","aud":"client-1"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
		}
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, "client-1")
	ctx := context.Background()

	id, err := v.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "42", id.Sub)

	for _, token := range []string{"other-app", "unverified", "garbage"} {
		_, err := v.Verify(ctx, token)
		assert.True(t, apperr.Is(err, apperr.KindUnauthorized), token)
	}

	_, err = NewGoogleVerifier(srv.URL, "").Verify(ctx, "good")
	assert.True(t, apperr.Is(err, apperr.KindInvalid))
}
