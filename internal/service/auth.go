package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/core"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Principals core.PrincipalRepository
	Sessions   core.SessionRepository
	Codec      *auth.TokenCodec
	Hasher     *auth.Hasher
	TTLs       map[model.Role]model.TokenTTL
}

// AuthService runs the login/refresh/logout flows against the per-role
// session ledger. The ledger is only consulted here; ordinary authorised
// requests trust the signed access token.
type AuthService struct {
	principals core.PrincipalRepository
	sessions   core.SessionRepository
	codec      *auth.TokenCodec
	hasher     *auth.Hasher
	ttls       map[model.Role]model.TokenTTL
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttls := opts.TTLs
	if ttls == nil {
		ttls = model.DefaultTokenTTLs()
	}
	return &AuthService{
		principals: opts.Principals,
		sessions:   opts.Sessions,
		codec:      opts.Codec,
		hasher:     opts.Hasher,
		ttls:       ttls,
	}
}

// TokenPair is a freshly minted access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult carries the minted pair plus the authenticated principal's id
// so the handler can attach profile details.
type LoginResult struct {
	TokenPair
	PrincipalID int64
}

// Login authenticates a principal of the given role by natural key and
// password, mints a token pair, and records the session. Unknown principal
// and wrong password both surface as LOGIN_FAIL at the surface so the
// response does not reveal which of the two was wrong.
func (s *AuthService) Login(ctx context.Context, role model.Role, naturalKey, password string) (*LoginResult, error) {
	creds, err := s.principals.GetCredentials(ctx, role, naturalKey)
	if err != nil {
		return nil, err
	}
	if err = s.hasher.Verify(ctx, password, creds.PasswordHash); err != nil {
		return nil, err
	}

	accessID, refreshID := uuid.New(), uuid.New()
	ttl := s.ttls[role]
	accessToken, err := s.codec.EncodeAccess(creds.ID, role, accessID, ttl.Access)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.EncodeRefresh(refreshID, ttl.Refresh)
	if err != nil {
		return nil, err
	}

	session := model.Session{
		RefreshTokenID: refreshID,
		AccessTokenID:  accessID,
		PrincipalID:    creds.ID,
	}
	if err = s.sessions.Create(ctx, role, session); err != nil {
		return nil, err
	}
	return &LoginResult{
		TokenPair:   TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
		PrincipalID: creds.ID,
	}, nil
}

// Refresh rotates a session. It only proceeds when the presented access
// token is expired but otherwise well-formed: a still-valid access token is
// refused so a leaked refresh token cannot widen its blast radius while the
// legitimate holder's credential is live. The new refresh token keeps the
// old one's expiry, so rotation slides the window without extending it.
func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	if _, err := s.codec.DecodeAccess(accessToken); err == nil {
		return nil, apperrors.New(apperrors.ErrCodeRefreshInvalid, "access token has not expired")
	} else if !apperrors.IsAccessExpired(err) {
		return nil, err
	}

	claims, err := s.codec.DecodeAccessIgnoreExp(accessToken)
	if err != nil {
		return nil, err
	}
	principalID, err := claims.PrincipalID()
	if err != nil {
		return nil, err
	}
	accessID, err := claims.TokenID()
	if err != nil {
		return nil, err
	}
	role := claims.Role

	refreshClaims, err := s.codec.DecodeRefresh(refreshToken)
	if err != nil {
		return nil, err
	}
	refreshID, err := refreshClaims.TokenID()
	if err != nil {
		return nil, err
	}
	if refreshClaims.IssuedAt == nil || refreshClaims.ExpiresAt == nil {
		return nil, apperrors.New(apperrors.ErrCodeRefreshInvalid, "refresh token missing timestamps")
	}

	session, err := s.sessions.Get(ctx, role, refreshID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.New(apperrors.ErrCodeRefreshNoSession, "no session for refresh token")
		}
		return nil, err
	}
	if session.PrincipalID != principalID || session.AccessTokenID != accessID {
		return nil, apperrors.New(apperrors.ErrCodeRefreshNoSession, "session does not match presented tokens")
	}

	newAccessID, newRefreshID := uuid.New(), uuid.New()
	newAccess, err := s.codec.EncodeAccess(principalID, role, newAccessID, s.ttls[role].Access)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.codec.EncodeRefreshAt(newRefreshID,
		refreshClaims.IssuedAt.Time, refreshClaims.ExpiresAt.Time)
	if err != nil {
		return nil, err
	}

	rotate := model.RotateParams{
		OldRefreshTokenID: refreshID,
		NewRefreshTokenID: newRefreshID,
		NewAccessTokenID:  newAccessID,
		PrincipalID:       principalID,
	}
	if err = s.sessions.Rotate(ctx, role, rotate); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: newAccess, RefreshToken: newRefresh}, nil
}

// Logout revokes the single session matching the caller's context and the
// presented refresh token. All three identities must line up.
func (s *AuthService) Logout(ctx context.Context, principal auth.Principal, refreshToken string) error {
	refreshID, err := s.parseRefreshID(refreshToken)
	if err != nil {
		return err
	}
	session := model.Session{
		RefreshTokenID: refreshID,
		AccessTokenID:  principal.AccessTokenID,
		PrincipalID:    principal.ID,
	}
	return s.sessions.RevokeOne(ctx, principal.Role, session)
}

// LogoutAll revokes every session of the caller after proving the presented
// refresh token is still live for them.
func (s *AuthService) LogoutAll(ctx context.Context, principal auth.Principal, refreshToken string) (int64, error) {
	refreshID, err := s.parseRefreshID(refreshToken)
	if err != nil {
		return 0, err
	}
	session := model.Session{
		RefreshTokenID: refreshID,
		AccessTokenID:  principal.AccessTokenID,
		PrincipalID:    principal.ID,
	}
	live, err := s.sessions.Check(ctx, principal.Role, session)
	if err != nil {
		return 0, err
	}
	if !live {
		return 0, apperrors.New(apperrors.ErrCodeLogoutNoSession, "no session for refresh token")
	}
	return s.sessions.RevokeAll(ctx, principal.Role, principal.ID)
}

// parseRefreshID extracts the jti from a refresh token without checking
// expiry; logout of an already-expired session is still a valid revocation.
func (s *AuthService) parseRefreshID(refreshToken string) (uuid.UUID, error) {
	claims, err := s.codec.DecodeRefreshIgnoreExp(refreshToken)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.TokenID()
}
