package httpx

import (
	"net/http"

	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
	"github.com/bloodlink-my/bloodlink/internal/service"
)

// AuthHandlers serves login, refresh, logout, and credential lookup.
type AuthHandlers struct {
	Auth       *service.AuthService
	Principals *service.PrincipalService
}

type donorLoginRequest struct {
	ICNumber string `json:"icNumber"`
	Password string `json:"password"`
}

type emailLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login returns the handler for one role's login route. Donors present an
// IC number, everyone else an email.
func (h *AuthHandlers) Login(role model.Role) http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		var naturalKey, password string
		if role == model.RoleDonor {
			var body donorLoginRequest
			if err := DecodeJSON(r, &body); err != nil {
				return err
			}
			naturalKey, password = body.ICNumber, body.Password
		} else {
			var body emailLoginRequest
			if err := DecodeJSON(r, &body); err != nil {
				return err
			}
			naturalKey, password = body.Email, body.Password
		}
		if naturalKey == "" || password == "" {
			return apperrors.Validation("credentials required")
		}

		result, err := h.Auth.Login(r.Context(), role, naturalKey, password)
		if err != nil {
			return err
		}
		details, err := h.Principals.Profile(r.Context(), auth.Principal{ID: result.PrincipalID, Role: role})
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, map[string]any{
			"accessToken":  result.AccessToken,
			"refreshToken": result.RefreshToken,
			"details":      details,
		})
		return nil
	})
}

// Refresh rotates a session. The expired access token rides the
// Authorization header; the refresh token rides the body.
func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		accessToken, ok := bearerToken(r)
		if !ok {
			return apperrors.Unauthenticated("missing bearer credential")
		}
		var body refreshRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		if body.RefreshToken == "" {
			return apperrors.ValidationField("refreshToken", "refresh token required")
		}
		pair, err := h.Auth.Refresh(r.Context(), accessToken, body.RefreshToken)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, pair)
		return nil
	})(w, r)
}

// Logout revokes the calling session.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body refreshRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		if err := h.Auth.Logout(r.Context(), principal, body.RefreshToken); err != nil {
			return err
		}
		WriteData(w, http.StatusOK, map[string]any{"loggedOut": true})
		return nil
	})(w, r)
}

// LogoutAll revokes every session of the calling principal.
func (h *AuthHandlers) LogoutAll(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		var body refreshRequest
		if err := DecodeJSON(r, &body); err != nil {
			return err
		}
		revoked, err := h.Auth.LogoutAll(r.Context(), principal, body.RefreshToken)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, map[string]any{"revokedSessions": revoked})
		return nil
	})(w, r)
}

// Credentials returns the calling principal's profile.
func (h *AuthHandlers) Credentials(w http.ResponseWriter, r *http.Request) {
	handle(func(w http.ResponseWriter, r *http.Request) error {
		principal, _ := PrincipalFromContext(r.Context())
		details, err := h.Principals.Profile(r.Context(), principal)
		if err != nil {
			return err
		}
		WriteData(w, http.StatusOK, details)
		return nil
	})(w, r)
}
