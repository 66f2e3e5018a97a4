package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
	"github.com/bloodlink-my/bloodlink/internal/mocks"
)

func testCodec() *auth.TokenCodec {
	return auth.NewTokenCodec([]byte("access-test-key"), []byte("refresh-test-key"))
}

func testHasher() *auth.Hasher {
	return auth.NewHasher(auth.HasherParams{
		Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	}, 2)
}

type authMocks struct {
	principals *mocks.MockPrincipalRepository
	sessions   *mocks.MockSessionRepository
}

func newAuthService(t *testing.T) (*AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		principals: mocks.NewMockPrincipalRepository(ctrl),
		sessions:   mocks.NewMockSessionRepository(ctrl),
	}
	svc := NewAuthService(AuthServiceOptions{
		Principals: m.principals,
		Sessions:   m.sessions,
		Codec:      testCodec(),
		Hasher:     testHasher(),
	})
	return svc, m
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	hash, err := testHasher().Hash(ctx, "secret123")
	require.NoError(t, err)

	m.principals.EXPECT().
		GetCredentials(ctx, model.RoleDonor, "900101011234").
		Return(&model.Credentials{ID: 42, PasswordHash: hash}, nil)

	var created model.Session
	m.sessions.EXPECT().
		Create(ctx, model.RoleDonor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Role, s model.Session) error {
			created = s
			return nil
		})

	result, err := svc.Login(ctx, model.RoleDonor, "900101011234", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.PrincipalID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	// The ledger row matches the minted tokens.
	accessClaims, err := testCodec().DecodeAccess(result.AccessToken)
	require.NoError(t, err)
	accessID, err := accessClaims.TokenID()
	require.NoError(t, err)
	refreshClaims, err := testCodec().DecodeRefresh(result.RefreshToken)
	require.NoError(t, err)
	refreshID, err := refreshClaims.TokenID()
	require.NoError(t, err)

	assert.Equal(t, accessID, created.AccessTokenID)
	assert.Equal(t, refreshID, created.RefreshTokenID)
	assert.Equal(t, int64(42), created.PrincipalID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	hash, err := testHasher().Hash(ctx, "the real password")
	require.NoError(t, err)

	m.principals.EXPECT().
		GetCredentials(ctx, model.RoleAdmin, "admin@example.com").
		Return(&model.Credentials{ID: 1, PasswordHash: hash}, nil)

	_, err = svc.Login(ctx, model.RoleAdmin, "admin@example.com", "a guess")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeLoginWrongPassword, apperrors.GetCode(err))
}

func TestAuthService_Login_UnknownPrincipal(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	m.principals.EXPECT().
		GetCredentials(ctx, model.RoleOrganiser, "nobody@example.com").
		Return(nil, apperrors.New(apperrors.ErrCodeLoginUnknownPrincipal, "no such organiser"))

	_, err := svc.Login(ctx, model.RoleOrganiser, "nobody@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeLoginUnknownPrincipal, apperrors.GetCode(err))
}

// mintPair returns an expired access token and live refresh token, with
// their ids, simulating the state a client is in when it must refresh.
func mintPair(t *testing.T, principalID int64, role model.Role) (accessToken, refreshToken string, accessID, refreshID uuid.UUID) {
	t.Helper()
	codec := testCodec()
	accessID, refreshID = uuid.New(), uuid.New()

	var err error
	accessToken, err = codec.EncodeAccess(principalID, role, accessID, -time.Minute)
	require.NoError(t, err)
	refreshToken, err = codec.EncodeRefresh(refreshID, time.Hour)
	require.NoError(t, err)
	return accessToken, refreshToken, accessID, refreshID
}

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	accessToken, refreshToken, accessID, refreshID := mintPair(t, 42, model.RoleDonor)

	m.sessions.EXPECT().
		Get(ctx, model.RoleDonor, refreshID).
		Return(&model.Session{RefreshTokenID: refreshID, AccessTokenID: accessID, PrincipalID: 42}, nil)

	var rotated model.RotateParams
	m.sessions.EXPECT().
		Rotate(ctx, model.RoleDonor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Role, p model.RotateParams) error {
			rotated = p
			return nil
		})

	pair, err := svc.Refresh(ctx, accessToken, refreshToken)
	require.NoError(t, err)

	assert.Equal(t, refreshID, rotated.OldRefreshTokenID)
	assert.Equal(t, int64(42), rotated.PrincipalID)
	assert.NotEqual(t, refreshID, rotated.NewRefreshTokenID)

	// New refresh token keeps the original expiry window.
	oldClaims, err := testCodec().DecodeRefresh(refreshToken)
	require.NoError(t, err)
	newClaims, err := testCodec().DecodeRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, newClaims.ExpiresAt.Time.Equal(oldClaims.ExpiresAt.Time),
		"rotation must not extend the session window")
}

func TestAuthService_Refresh_AccessStillValid(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	codec := testCodec()
	accessToken, err := codec.EncodeAccess(42, model.RoleDonor, uuid.New(), time.Hour)
	require.NoError(t, err)
	refreshToken, err := codec.EncodeRefresh(uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, accessToken, refreshToken)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRefreshInvalid, apperrors.GetCode(err))
}

func TestAuthService_Refresh_NoSession(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	accessToken, refreshToken, _, refreshID := mintPair(t, 42, model.RoleDonor)

	m.sessions.EXPECT().
		Get(ctx, model.RoleDonor, refreshID).
		Return(nil, apperrors.NotFound("session"))

	_, err := svc.Refresh(ctx, accessToken, refreshToken)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRefreshNoSession, apperrors.GetCode(err))
}

func TestAuthService_Refresh_SessionMismatch(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	accessToken, refreshToken, _, refreshID := mintPair(t, 42, model.RoleDonor)

	// Ledger row exists but points at a different access token: the pair
	// was already rotated, so the presented one is a replay.
	m.sessions.EXPECT().
		Get(ctx, model.RoleDonor, refreshID).
		Return(&model.Session{RefreshTokenID: refreshID, AccessTokenID: uuid.New(), PrincipalID: 42}, nil)

	_, err := svc.Refresh(ctx, accessToken, refreshToken)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRefreshNoSession, apperrors.GetCode(err))
}

func TestAuthService_Refresh_ExpiredRefreshToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	codec := testCodec()
	accessToken, err := codec.EncodeAccess(42, model.RoleDonor, uuid.New(), -time.Minute)
	require.NoError(t, err)
	refreshToken, err := codec.EncodeRefresh(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, accessToken, refreshToken)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRefreshExpired, apperrors.GetCode(err))
}

func TestAuthService_Logout(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	refreshID := uuid.New()
	refreshToken, err := testCodec().EncodeRefresh(refreshID, time.Hour)
	require.NoError(t, err)

	principal := auth.Principal{ID: 42, Role: model.RoleDonor, AccessTokenID: uuid.New()}

	m.sessions.EXPECT().
		RevokeOne(ctx, model.RoleDonor, model.Session{
			RefreshTokenID: refreshID,
			AccessTokenID:  principal.AccessTokenID,
			PrincipalID:    42,
		}).
		Return(nil)

	require.NoError(t, svc.Logout(ctx, principal, refreshToken))
}

func TestAuthService_LogoutAll(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	refreshID := uuid.New()
	refreshToken, err := testCodec().EncodeRefresh(refreshID, time.Hour)
	require.NoError(t, err)

	principal := auth.Principal{ID: 42, Role: model.RoleFacility, AccessTokenID: uuid.New()}
	session := model.Session{
		RefreshTokenID: refreshID,
		AccessTokenID:  principal.AccessTokenID,
		PrincipalID:    42,
	}

	m.sessions.EXPECT().Check(ctx, model.RoleFacility, session).Return(true, nil)
	m.sessions.EXPECT().RevokeAll(ctx, model.RoleFacility, int64(42)).Return(int64(3), nil)

	revoked, err := svc.LogoutAll(ctx, principal, refreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(3), revoked)
}

func TestAuthService_LogoutAll_NoLiveSession(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	refreshToken, err := testCodec().EncodeRefresh(uuid.New(), time.Hour)
	require.NoError(t, err)

	principal := auth.Principal{ID: 42, Role: model.RoleDonor, AccessTokenID: uuid.New()}

	m.sessions.EXPECT().Check(ctx, model.RoleDonor, gomock.Any()).Return(false, nil)

	_, err = svc.LogoutAll(ctx, principal, refreshToken)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeLogoutNoSession, apperrors.GetCode(err))
}
