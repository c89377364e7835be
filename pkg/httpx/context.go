package httpx

import (
	"context"
	"time"
)

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

// Principal is the authenticated caller of a request, taken from a verified
// access token.
type Principal struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// WithPrincipal attaches p to ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// PrincipalFromContext returns the caller attached by Authenticate.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok && p.UserID != ""
}
