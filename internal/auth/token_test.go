package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

func newTestCodec() *TokenCodec {
	return NewTokenCodec([]byte("access-test-key"), []byte("refresh-test-key"))
}

func TestTokenCodec_AccessRoundTrip(t *testing.T) {
	codec := newTestCodec()
	jti := uuid.New()

	token, err := codec.EncodeAccess(42, model.RoleDonor, jti, 15*time.Minute)
	require.NoError(t, err)

	claims, err := codec.DecodeAccess(token)
	require.NoError(t, err)

	assert.Equal(t, model.RoleDonor, claims.Role)

	principalID, err := claims.PrincipalID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), principalID)

	tokenID, err := claims.TokenID()
	require.NoError(t, err)
	assert.Equal(t, jti, tokenID)
}

func TestTokenCodec_RefreshRoundTrip(t *testing.T) {
	codec := newTestCodec()
	jti := uuid.New()

	token, err := codec.EncodeRefresh(jti, time.Hour)
	require.NoError(t, err)

	claims, err := codec.DecodeRefresh(token)
	require.NoError(t, err)

	tokenID, err := claims.TokenID()
	require.NoError(t, err)
	assert.Equal(t, jti, tokenID)
}

func TestTokenCodec_ExpiredAccessIsDistinguishable(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.EncodeAccess(7, model.RoleAdmin, uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = codec.DecodeAccess(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsAccessExpired(err))

	// The same token still yields its claims when expiry is ignored.
	claims, err := codec.DecodeAccessIgnoreExp(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestTokenCodec_ExpiredRefresh(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.EncodeRefresh(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = codec.DecodeRefresh(token)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRefreshExpired, apperrors.GetCode(err))
}

func TestTokenCodec_KeysAreNotInterchangeable(t *testing.T) {
	codec := newTestCodec()

	access, err := codec.EncodeAccess(1, model.RoleDonor, uuid.New(), time.Minute)
	require.NoError(t, err)
	refresh, err := codec.EncodeRefresh(uuid.New(), time.Minute)
	require.NoError(t, err)

	// An access token does not verify as a refresh token, and vice versa.
	_, err = codec.DecodeRefresh(access)
	assert.Equal(t, apperrors.ErrCodeRefreshInvalid, apperrors.GetCode(err))

	_, err = codec.DecodeAccess(refresh)
	assert.Equal(t, apperrors.ErrCodeInvalidAccess, apperrors.GetCode(err))
}

func TestTokenCodec_TamperedTokenRejected(t *testing.T) {
	codec := newTestCodec()
	other := NewTokenCodec([]byte("other-access-key"), []byte("other-refresh-key"))

	token, err := other.EncodeAccess(1, model.RoleDonor, uuid.New(), time.Minute)
	require.NoError(t, err)

	_, err = codec.DecodeAccess(token)
	assert.Equal(t, apperrors.ErrCodeInvalidAccess, apperrors.GetCode(err))

	// Signature checks still apply when expiry is ignored.
	_, err = codec.DecodeAccessIgnoreExp(token)
	assert.Equal(t, apperrors.ErrCodeInvalidAccess, apperrors.GetCode(err))
}

func TestTokenCodec_EncodeRefreshAtPreservesExpiry(t *testing.T) {
	codec := newTestCodec()

	iat := time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Second)
	exp := time.Now().UTC().Add(time.Hour).Truncate(time.Second)

	token, err := codec.EncodeRefreshAt(uuid.New(), iat, exp)
	require.NoError(t, err)

	claims, err := codec.DecodeRefresh(token)
	require.NoError(t, err)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.IssuedAt.Time.Equal(iat), "iat should survive rotation")
	assert.True(t, claims.ExpiresAt.Time.Equal(exp), "exp should survive rotation")
}

func TestTokenCodec_GarbageToken(t *testing.T) {
	codec := newTestCodec()

	_, err := codec.DecodeAccess("not.a.jwt")
	assert.Equal(t, apperrors.ErrCodeInvalidAccess, apperrors.GetCode(err))

	_, err = codec.DecodeRefreshIgnoreExp("")
	assert.Equal(t, apperrors.ErrCodeRefreshInvalid, apperrors.GetCode(err))
}

func TestAccessClaims_MalformedSubject(t *testing.T) {
	codec := newTestCodec()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		Role: model.RoleDonor,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "not-a-number",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte("access-test-key"))
	require.NoError(t, err)

	claims, err := codec.DecodeAccess(signed)
	require.NoError(t, err)

	_, err = claims.PrincipalID()
	assert.Equal(t, apperrors.ErrCodeInvalidAccess, apperrors.GetCode(err))
}

func TestAccessClaims_MalformedTokenID(t *testing.T) {
	claims := &AccessClaims{
		Role: model.RoleDonor,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:      "not-a-uuid",
			Subject: "42",
		},
	}

	_, err := claims.TokenID()
	assert.Equal(t, apperrors.ErrCodeInvalidAccess, apperrors.GetCode(err))
}

func TestRefreshClaims_MalformedTokenID(t *testing.T) {
	claims := &RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "not-a-uuid"},
	}

	_, err := claims.TokenID()
	assert.Equal(t, apperrors.ErrCodeRefreshInvalid, apperrors.GetCode(err))
}
