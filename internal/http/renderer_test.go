package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMapPublic(t *testing.T) {
	cases := []struct {
		name       string
		err        *apperrors.AppError
		wantStatus int
		wantCode   string
	}{
		{"unauthenticated", apperrors.Unauthenticated("x"), http.StatusForbidden, "NO_AUTH"},
		{"invalid access", apperrors.New(apperrors.ErrCodeInvalidAccess, "x"), http.StatusForbidden, "NO_AUTH"},
		{"access expired", apperrors.New(apperrors.ErrCodeAccessExpired, "x"), http.StatusUnauthorized, "ACCESS_TOKEN_EXPIRED"},
		{"refresh expired", apperrors.New(apperrors.ErrCodeRefreshExpired, "x"), http.StatusUnauthorized, "SESSION_EXPIRED"},
		{"refresh invalid", apperrors.New(apperrors.ErrCodeRefreshInvalid, "x"), http.StatusUnauthorized, "SESSION_INVALID"},
		{"refresh no session", apperrors.New(apperrors.ErrCodeRefreshNoSession, "x"), http.StatusUnauthorized, "SESSION_INVALID"},
		{"logout no session", apperrors.New(apperrors.ErrCodeLogoutNoSession, "x"), http.StatusUnauthorized, "SESSION_INVALID"},
		{"unknown principal", apperrors.New(apperrors.ErrCodeLoginUnknownPrincipal, "x"), http.StatusUnauthorized, "LOGIN_FAIL"},
		{"wrong password", apperrors.New(apperrors.ErrCodeLoginWrongPassword, "x"), http.StatusUnauthorized, "LOGIN_FAIL"},
		{"current password", apperrors.New(apperrors.ErrCodeCurrentPassword, "x"), http.StatusUnauthorized, "CURRENT_PASSWORD_WRONG"},
		{"forbidden", apperrors.Forbidden("x"), http.StatusForbidden, "ROLE_FORBIDDEN"},
		{"conflict", apperrors.New(apperrors.ErrCodeConflict, "x"), http.StatusConflict, "DUPLICATE"},
		{"conflict with field", apperrors.DuplicateKey("donors", "email"), http.StatusConflict, "DUPLICATE(email)"},
		{"not found", apperrors.NotFound("donor"), http.StatusNotFound, "NOT_FOUND"},
		{"validation", apperrors.New(apperrors.ErrCodeValidation, "x"), http.StatusUnprocessableEntity, "INVALID"},
		{"validation with field", apperrors.ValidationField("endTime", "x"), http.StatusUnprocessableEntity, "INVALID(endTime)"},
		{"foreign key", apperrors.New(apperrors.ErrCodeForeignKey, "x"), http.StatusUnprocessableEntity, "INVALID"},
		{"internal", apperrors.Internal("x"), http.StatusInternalServerError, "SERVICE_ERROR"},
		{"timeout", apperrors.New(apperrors.ErrCodeTimeout, "x"), http.StatusInternalServerError, "SERVICE_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := mapPublic(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Data    struct {
			ReqUUID string `json:"req_uuid"`
			Detail  string `json:"detail"`
		} `json:"data"`
	} `json:"error"`
}

func TestRenderError_BodyShape(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/donors", nil)
	req = req.WithContext(SetRequestID(req.Context(), "req-1234"))
	rec := httptest.NewRecorder()

	RenderError(rec, req, apperrors.DuplicateKey("donors", "ic_number"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DUPLICATE(ic_number)", body.Error.Message)
	assert.Equal(t, "req-1234", body.Error.Data.ReqUUID)
	assert.Equal(t, "duplicate value for donors.ic_number", body.Error.Data.Detail)
}

func TestRenderError_InternalHidesDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	req = req.WithContext(SetRequestID(req.Context(), "req-5678"))
	rec := httptest.NewRecorder()

	RenderError(rec, req, apperrors.Internal("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SERVICE_ERROR", body.Error.Message)
	assert.Equal(t, "req-5678", body.Error.Data.ReqUUID)
	assert.Empty(t, body.Error.Data.Detail)
}

func TestRenderError_PlainErrorBecomesInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	rec := httptest.NewRecorder()

	RenderError(rec, req, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"SERVICE_ERROR"`)
}

func TestRenderError_AnnotatesRequestLog(t *testing.T) {
	rl := &requestLog{}
	req := httptest.NewRequest(http.MethodGet, "/v1/donors/me", nil)
	req = req.WithContext(setRequestLog(req.Context(), rl))
	rec := httptest.NewRecorder()

	RenderError(rec, req, apperrors.Forbidden("requires admin role"))

	assert.Equal(t, string(apperrors.ErrCodeForbidden), rl.ErrorCode)
	assert.Equal(t, "ROLE_FORBIDDEN", rl.PublicCode)
}
