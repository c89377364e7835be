package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/gearbox/pkg/jwtx"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

// Denylist reports access tokens revoked before their expiry.
type Denylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, raw, ok := strings.Cut(authz, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// Authenticate requires a valid access token. The caller is attached to the
// request context as a Principal. A nil denylist skips the revocation check.
func Authenticate(v jwtx.Verifier, denied Denylist) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("access token rejected", "error", err)
				writeBearerError(w, "token verification failed")
				return
			}
			if err := claims.ExpectPurpose(jwtx.PurposeAccess); err != nil {
				writeBearerError(w, "token verification failed")
				return
			}

			if denied != nil && claims.ID != "" {
				revoked, err := denied.IsRevoked(ctx, claims.ID)
				if err != nil {
					log.Error("denylist lookup failed", "error", err)
					WriteError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					writeBearerError(w, "token revoked")
					return
				}
			}

			p := Principal{UserID: claims.UserID, TokenID: claims.ID}
			if claims.ExpiresAt != nil {
				p.ExpiresAt = claims.ExpiresAt.Time
			}
			ctx = slogx.With(WithPrincipal(ctx, p), "user_id", p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "Authentication credentials were not provided or are invalid")
}
