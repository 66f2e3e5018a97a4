package httpx

import (
	"net/http"

	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// Public client codes. The normaliser is the only place that turns internal
// error kinds into these.
const (
	codeNoAuth             = "NO_AUTH"
	codeAccessTokenExpired = "ACCESS_TOKEN_EXPIRED"
	codeSessionExpired     = "SESSION_EXPIRED"
	codeSessionInvalid     = "SESSION_INVALID"
	codeLoginFail          = "LOGIN_FAIL"
	codeCurrentPassword    = "CURRENT_PASSWORD_WRONG"
	codeRoleForbidden      = "ROLE_FORBIDDEN"
	codeDuplicate          = "DUPLICATE"
	codeNotFound           = "NOT_FOUND"
	codeInvalid            = "INVALID"
	codeServiceError       = "SERVICE_ERROR"
)

// mapPublic translates an internal error kind into the status code and
// public client code. Unknown and wrong-password logins share LOGIN_FAIL so
// the response does not reveal which check failed.
func mapPublic(appErr *apperrors.AppError) (int, string) {
	switch appErr.Code {
	case apperrors.ErrCodeUnauthenticated, apperrors.ErrCodeInvalidAccess:
		return http.StatusForbidden, codeNoAuth
	case apperrors.ErrCodeAccessExpired:
		return http.StatusUnauthorized, codeAccessTokenExpired
	case apperrors.ErrCodeRefreshExpired:
		return http.StatusUnauthorized, codeSessionExpired
	case apperrors.ErrCodeRefreshInvalid, apperrors.ErrCodeRefreshNoSession, apperrors.ErrCodeLogoutNoSession:
		return http.StatusUnauthorized, codeSessionInvalid
	case apperrors.ErrCodeLoginUnknownPrincipal, apperrors.ErrCodeLoginWrongPassword:
		return http.StatusUnauthorized, codeLoginFail
	case apperrors.ErrCodeCurrentPassword:
		return http.StatusUnauthorized, codeCurrentPassword
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden, codeRoleForbidden
	case apperrors.ErrCodeConflict:
		if appErr.Field != "" {
			return http.StatusConflict, codeDuplicate + "(" + appErr.Field + ")"
		}
		return http.StatusConflict, codeDuplicate
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound, codeNotFound
	case apperrors.ErrCodeValidation, apperrors.ErrCodeForeignKey:
		if appErr.Field != "" {
			return http.StatusUnprocessableEntity, codeInvalid + "(" + appErr.Field + ")"
		}
		return http.StatusUnprocessableEntity, codeInvalid
	default:
		return http.StatusInternalServerError, codeServiceError
	}
}

// RenderError is the single failure exit of every handler: it maps the error
// to its public shape, writes {"error": {...}} with the request uuid, and
// annotates the request log line.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.AsAppError(err)
	status, public := mapPublic(appErr)

	if rl := getRequestLog(r.Context()); rl != nil {
		rl.ErrorCode = string(appErr.Code)
		rl.PublicCode = public
	}

	data := map[string]any{"req_uuid": RequestID(r.Context())}
	if status < http.StatusInternalServerError && appErr.Message != "" {
		data["detail"] = appErr.Message
	}
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": public,
			"data":    data,
		},
	})
}

// handle adapts an error-returning handler into http.HandlerFunc, funnelling
// every failure through RenderError.
func handle(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			RenderError(w, r, err)
		}
	}
}
