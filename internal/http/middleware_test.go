package httpx

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
)

func testCodec() *auth.TokenCodec {
	return auth.NewTokenCodec([]byte("access-test-key"), []byte("refresh-test-key"))
}

// authedStack wraps a handler in the gate chain the router uses.
func authedStack(codec *auth.TokenCodec, gate func(http.Handler) http.Handler, inner http.Handler) http.Handler {
	return TagRequestID(Authenticate(codec)(gate(inner)))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	codec := testCodec()
	jti := uuid.New()
	token, err := codec.EncodeAccess(42, model.RoleDonor, jti, 15*time.Minute)
	require.NoError(t, err)

	var got auth.Principal
	handler := authedStack(codec, RequireAuth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/donors/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, model.RoleDonor, got.Role)
	assert.Equal(t, jti, got.AccessTokenID)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	handler := authedStack(testCodec(), RequireAuth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/donors/me", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"NO_AUTH"`)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	codec := testCodec()
	token, err := codec.EncodeAccess(42, model.RoleDonor, uuid.New(), -time.Minute)
	require.NoError(t, err)

	handler := authedStack(codec, RequireAuth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/donors/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Expired is its own public code so clients know to refresh rather
	// than re-login.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"ACCESS_TOKEN_EXPIRED"`)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	handler := authedStack(testCodec(), RequireAuth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/donors/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"NO_AUTH"`)
}

func TestRequireRole(t *testing.T) {
	codec := testCodec()
	donorToken, err := codec.EncodeAccess(42, model.RoleDonor, uuid.New(), 15*time.Minute)
	require.NoError(t, err)
	adminToken, err := codec.EncodeAccess(1, model.RoleAdmin, uuid.New(), 5*time.Minute)
	require.NoError(t, err)

	handler := authedStack(codec, RequireRole(model.RoleAdmin), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/donors", nil)
	req.Header.Set("Authorization", "Bearer "+donorToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"ROLE_FORBIDDEN"`)

	req = httptest.NewRequest(http.MethodGet, "/v1/admin/donors", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"plain", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer abc", "abc", true},
		{"missing", "", "", false},
		{"wrong scheme", "Basic abc", "", false},
		{"scheme only", "Bearer ", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			token, ok := bearerToken(r)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, token)
		})
	}
}

func TestRecover(t *testing.T) {
	logger := discardLogger()
	handler := TagRequestID(Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"SERVICE_ERROR"`)
	// 5xx bodies never leak the internal message.
	assert.NotContains(t, rec.Body.String(), "panic in handler")
}

func TestLogging_CarriesPrincipal(t *testing.T) {
	codec := testCodec()
	jti := uuid.New()
	token, err := codec.EncodeAccess(42, model.RoleDonor, jti, 15*time.Minute)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := TagRequestID(Logging(logger)(Authenticate(codec)(RequireAuth(inner))))

	req := httptest.NewRequest(http.MethodGet, "/v1/donors/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, "status=204")
	assert.Contains(t, line, "principal_id=42")
	assert.Contains(t, line, "role=donor")
	assert.Contains(t, line, "access_token_id="+jti.String())
}

func TestLogging_AnonymousRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := TagRequestID(Logging(logger)(Authenticate(testCodec())(inner)))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.NotContains(t, buf.String(), "principal_id")
}

func TestRequireAuth_MalformedSubjectClaim(t *testing.T) {
	// Correctly signed, but the subject is not a principal id. That is an
	// invalid credential, not a server fault.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.AccessClaims{
		Role: model.RoleDonor,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "not-a-number",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte("access-test-key"))
	require.NoError(t, err)

	handler := authedStack(testCodec(), RequireAuth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/donors/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"NO_AUTH"`)
}

func TestRequireAuth_MalformedTokenIDClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.AccessClaims{
		Role: model.RoleDonor,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "not-a-uuid",
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte("access-test-key"))
	require.NoError(t, err)

	handler := authedStack(testCodec(), RequireAuth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/donors/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"NO_AUTH"`)
}
