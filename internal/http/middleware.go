package httpx

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// TagRequestID tags every request with a uuid; the same uuid appears in
// error bodies and in the request log line.
func TagRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := SetRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logging emits one structured line per request: uuid, method, path, status,
// duration, the principal when authenticated, and the error kinds on
// failure.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rl := &requestLog{}
			ctx := setRequestLog(r.Context(), rl)
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}

			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			attrs := []any{
				slog.String("req_uuid", RequestID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			}
			// The auth pipeline runs on a derived request, so its
			// context values never reach this frame; it reports the
			// principal through the shared requestLog slot instead.
			if rl.Principal != nil {
				attrs = append(attrs,
					slog.Int64("principal_id", rl.Principal.ID),
					slog.String("role", string(rl.Principal.Role)),
					slog.String("access_token_id", rl.Principal.AccessTokenID.String()),
				)
			}
			if rl.ErrorCode != "" {
				attrs = append(attrs,
					slog.String("error_code", rl.ErrorCode),
					slog.String("public_code", rl.PublicCode),
				)
			}
			logger.Info("http", attrs...)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover converts panics into 500 SERVICE_ERROR responses.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic",
						slog.Any("error", rec),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					RenderError(w, r, apperrors.Internal("panic in handler"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate runs the auth pipeline on every request and stores the
// outcome in context without failing the request. Gates downstream decide
// whether an error outcome matters; the refresh handler needs the expired
// token itself, so the pipeline never consults the session ledger here.
func Authenticate(codec *auth.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := runAuthPipeline(codec, r)
			if rl := getRequestLog(r.Context()); rl != nil {
				rl.Principal = res.principal
			}
			ctx := setAuthResult(r.Context(), res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func runAuthPipeline(codec *auth.TokenCodec, r *http.Request) authResult {
	token, ok := bearerToken(r)
	if !ok {
		return authResult{err: apperrors.Unauthenticated("missing bearer credential")}
	}
	claims, err := codec.DecodeAccess(token)
	if err != nil {
		return authResult{err: err}
	}
	principalID, err := claims.PrincipalID()
	if err != nil {
		return authResult{err: err}
	}
	tokenID, err := claims.TokenID()
	if err != nil {
		return authResult{err: err}
	}
	if !claims.Role.Valid() {
		return authResult{err: apperrors.New(apperrors.ErrCodeInvalidAccess, "unknown role in token")}
	}
	return authResult{principal: &auth.Principal{
		ID:            principalID,
		Role:          claims.Role,
		AccessTokenID: tokenID,
	}}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// RequireAuth rejects requests whose auth pipeline did not produce a
// principal, propagating the pipeline's own error.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, ok := getAuthResult(r.Context())
		if !ok || res.principal == nil {
			err := apperrors.Unauthenticated("authentication required")
			if ok && res.err != nil {
				err = apperrors.AsAppError(res.err)
			}
			RenderError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole layers a role gate on top of RequireAuth.
func RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, _ := PrincipalFromContext(r.Context())
			if principal.Role != role {
				RenderError(w, r, apperrors.Forbidden("requires "+string(role)+" role"))
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
