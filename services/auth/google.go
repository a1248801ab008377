package authService

import (
	"context"
	"errors"
	"strings"

	"coursehub/apperr"
	"coursehub/logging"
	"coursehub/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

// GoogleIdentity is the subset of Google's tokeninfo response we rely on.
type GoogleIdentity struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Aud           string `json:"aud"`
}

// IdentityVerifier turns an ID token into a verified identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

type GoogleVerifier struct {
	client       *resty.Client
	tokenInfoURL string
	clientID     string
}

func NewGoogleVerifier(tokenInfoURL, clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		client:       resty.New(),
		tokenInfoURL: tokenInfoURL,
		clientID:     clientID,
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, apperr.Invalid("Google sign-in is not configured!", nil)
	}

	var identity GoogleIdentity
	resp, err := v.client.R().
		SetContext(ctx).
		SetQueryParam("id_token", idToken).
		SetResult(&identity).
		Get(v.tokenInfoURL)
	if err != nil {
		return nil, apperr.Wrap(err, "google tokeninfo request failed")
	}
	if resp.IsError() {
		logging.Debug().Int("status", resp.StatusCode()).Msg("Google rejected ID token")
		return nil, apperr.Unauthorized("Invalid Google token!")
	}
	if identity.Aud != v.clientID || identity.Sub == "" || identity.Email == "" {
		return nil, apperr.Unauthorized("Invalid Google token!")
	}
	if identity.EmailVerified != "" && identity.EmailVerified != "true" {
		return nil, apperr.Unauthorized("Google email is not verified!")
	}
	return &identity, nil
}

// GoogleSignIn finds the account for a verified Google identity, linking by
// email when needed, or creates a student.
func GoogleSignIn(ctx context.Context, db *gorm.DB, verifier IdentityVerifier, idToken string) (*models.User, error) {
	identity, err := verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	email := NormalizeEmail(identity.Email)

	var user models.User
	err = db.Where("google_sub = ?", identity.Sub).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(err, "failed to look up google account")
	}

	existing, err := findByEmail(db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		updates := map[string]interface{}{"google_sub": identity.Sub}
		if existing.Image == "" && identity.Picture != "" {
			updates["image"] = identity.Picture
		}
		if err := db.Model(existing).Updates(updates).Error; err != nil {
			return nil, apperr.Wrap(err, "failed to link google account to user %d", existing.ID)
		}
		return existing, nil
	}

	sub := identity.Sub
	username := strings.SplitN(email, "@", 2)[0] + "_" + sub[len(sub)-min(6, len(sub)):]
	user = models.User{
		Email:     email,
		Username:  &username,
		Name:      identity.Name,
		Image:     identity.Picture,
		GoogleSub: &sub,
		Role:      models.RoleStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Account already exists!", nil)
		}
		return nil, apperr.Wrap(err, "failed to create google user")
	}
	return &user, nil
}
