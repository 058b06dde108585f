package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/mock"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-movie-keeper-test"
)

// newTestAuthService builds an authService wired to a mocked user repository.
func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, validators.New(), config.App{
		TokenSignKey:    testSignKey,
		TokenIssuer:     testIssuer,
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}, logger.Nop()).(*authService)

	return svc, repo
}

// ── Register ────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "new@example.com", Password: "secret123"}

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			// The plaintext never reaches the repository.
			require.NotEqual(t, creds.Password, user.PasswordHash)
			require.True(t, utils.VerifyPassword(user.PasswordHash, creds.Password))
			require.Empty(t, user.Name)

			user.UserID = 42
			return user, nil
		})

	pair, err := svc.Register(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, int64(42), pair.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// The freshly issued access token must resolve to the new identity.
	token, err := svc.ParseToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), models.Credentials{Email: "taken@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	tests := []struct {
		name  string
		creds models.Credentials
		field string
	}{
		{"missing email", models.Credentials{Password: "secret123"}, "email"},
		{"malformed email", models.Credentials{Email: "nope", Password: "secret123"}, "email"},
		{"short password", models.Credentials{Email: "a@b.com", Password: "12345"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectation: invalid payloads never reach the store.
			_, err := svc.Register(context.Background(), tt.creds)
			require.Error(t, err)

			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Errors, tt.field)
		})
	}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)

	digest, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "user@example.com").
		Return(models.User{UserID: 7, Email: "user@example.com", PasswordHash: digest}, nil)

	pair, err := svc.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), pair.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "ghost@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)

	digest, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "user@example.com").
		Return(models.User{UserID: 7, Email: "user@example.com", PasswordHash: digest}, nil)

	_, err = svc.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_CorruptDigestFailsLikeWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "user@example.com").
		Return(models.User{UserID: 7, Email: "user@example.com", PasswordHash: "corrupt-record"}, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

// ── Refresh ─────────────────────────────────────────────────────────────────

func TestAuthService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)

	refresh, err := utils.GenerateJWTToken(testIssuer, 7, time.Hour, testSignKey)
	require.NoError(t, err)

	user := models.User{UserID: 7, Email: "user@example.com", Name: "User"}
	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(7)).
		Return(user, nil)

	session, err := svc.Refresh(context.Background(), refresh.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user, session.User)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	expired, err := utils.GenerateJWTToken(testIssuer, 7, -time.Second, testSignKey)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_Refresh_MalformedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_Refresh_SubjectGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)

	refresh, err := utils.GenerateJWTToken(testIssuer, 99, time.Hour, testSignKey)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(99)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err = svc.Refresh(context.Background(), refresh.SignedString)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── ParseToken ──────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	forged, err := utils.GenerateJWTToken(testIssuer, 7, time.Hour, "other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), forged.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
