package httpx

import (
	"context"

	"github.com/bloodlink-my/bloodlink/internal/auth"
)

// Unexported context key types to avoid collisions across packages.
type requestIDKey struct{}
type authResultKey struct{}
type requestLogKey struct{}

// authResult is the outcome of the per-request auth pipeline: either a
// principal or the error that stopped it. Handlers and gates read it from
// context; it is computed at most once per request.
type authResult struct {
	principal *auth.Principal
	err       error
}

// SetRequestID returns a child context carrying the request uuid.
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request uuid, or "" when the middleware did not run.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func setAuthResult(ctx context.Context, res authResult) context.Context {
	return context.WithValue(ctx, authResultKey{}, res)
}

func getAuthResult(ctx context.Context) (authResult, bool) {
	res, ok := ctx.Value(authResultKey{}).(authResult)
	return res, ok
}

// PrincipalFromContext returns the authenticated principal, or ok=false when
// the request failed (or never entered) the auth pipeline.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	res, ok := getAuthResult(ctx)
	if !ok || res.principal == nil {
		return auth.Principal{}, false
	}
	return *res.principal, true
}

// requestLog accumulates fields for the one structured log line emitted per
// request. The pointer lives in context so the renderer and the auth
// pipeline can annotate it from inside the handler chain, where derived
// request copies hide plain context values from the outer middleware.
type requestLog struct {
	ErrorCode  string
	PublicCode string
	Principal  *auth.Principal
}

func setRequestLog(ctx context.Context, rl *requestLog) context.Context {
	return context.WithValue(ctx, requestLogKey{}, rl)
}

func getRequestLog(ctx context.Context) *requestLog {
	rl, _ := ctx.Value(requestLogKey{}).(*requestLog)
	return rl
}
