// Package auth provides the token codec, the password KDF, and the
// principal context threaded through authenticated handlers.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// AccessClaims are the signed claims of an access token. The jti identifies
// this particular access token, not the session; Subject carries the
// principal id.
type AccessClaims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims are the signed claims of a refresh token. Deliberately
// minimal: no principal id and no role. Those are recovered by looking up
// the session-ledger row keyed by jti.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// PrincipalID parses the Subject claim as a numeric principal id. A token
// whose subject does not parse is treated as invalid, not as a server fault.
func (c *AccessClaims) PrincipalID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInvalidAccess, "malformed subject claim")
	}
	return id, nil
}

// TokenID parses the jti claim as a UUID.
func (c *AccessClaims) TokenID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidAccess, "malformed jti claim")
	}
	return id, nil
}

// TokenID parses the jti claim as a UUID.
func (c *RefreshClaims) TokenID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(err, apperrors.ErrCodeRefreshInvalid, "malformed jti claim")
	}
	return id, nil
}

// TokenCodec signs and validates access and refresh tokens with HS256. The
// two kinds use distinct symmetric keys so a leak of one cannot forge the
// other.
type TokenCodec struct {
	accessKey  []byte
	refreshKey []byte
}

// NewTokenCodec creates a codec from the two signing keys.
func NewTokenCodec(accessKey, refreshKey []byte) *TokenCodec {
	return &TokenCodec{accessKey: accessKey, refreshKey: refreshKey}
}

// EncodeAccess mints a signed access token for the principal with the given
// jti and role-specific TTL.
func (c *TokenCodec) EncodeAccess(principalID int64, role model.Role, jti uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Subject:   strconv.FormatInt(principalID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.accessKey)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// EncodeRefresh mints a signed refresh token with the given jti and TTL.
// Used at login only; rotation preserves the prior expiry via
// EncodeRefreshAt.
func (c *TokenCodec) EncodeRefresh(jti uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	return c.EncodeRefreshAt(jti, now, now.Add(ttl))
}

// EncodeRefreshAt mints a refresh token with explicit iat and exp. Rotation
// calls this with the prior token's exp so a session's lifetime is fixed at
// login and never extended by refreshing.
func (c *TokenCodec) EncodeRefreshAt(jti uuid.UUID, iat, exp time.Time) (string, error) {
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.refreshKey)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

// DecodeAccess validates an access token's signature and expiry. Expiry is
// surfaced as a distinct AccessExpired error because the refresh flow
// depends on telling it apart from every other failure.
func (c *TokenCodec) DecodeAccess(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := c.parse(token, claims, c.accessKey, true); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeAccessExpired, "access token expired")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidAccess, "invalid access token")
	}
	return claims, nil
}

// DecodeRefresh validates a refresh token's signature and expiry.
func (c *TokenCodec) DecodeRefresh(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := c.parse(token, claims, c.refreshKey, true); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeRefreshExpired, "refresh token expired")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeRefreshInvalid, "invalid refresh token")
	}
	return claims, nil
}

// DecodeAccessIgnoreExp verifies the signature but skips claim validation.
// The refresh flow uses it to recover the role, principal id, and access
// jti from an access token that already expired.
func (c *TokenCodec) DecodeAccessIgnoreExp(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := c.parse(token, claims, c.accessKey, false); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidAccess, "invalid access token")
	}
	return claims, nil
}

// DecodeRefreshIgnoreExp verifies the signature but skips claim validation.
func (c *TokenCodec) DecodeRefreshIgnoreExp(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := c.parse(token, claims, c.refreshKey, false); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeRefreshInvalid, "invalid refresh token")
	}
	return claims, nil
}

func (c *TokenCodec) parse(token string, claims jwt.Claims, key []byte, validateClaims bool) error {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if !validateClaims {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Guard against alg-confusion: only HMAC is ever accepted.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	}, opts...)
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return errors.New("invalid token")
	}
	return nil
}
