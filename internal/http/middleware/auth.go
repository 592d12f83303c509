package middleware

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/commerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"go.uber.org/zap"
)

type contextKey string

const identityKey = contextKey("identity")

// Authenticate rejects requests without a valid bearer token and stores the caller's
// identity in the request context.
func Authenticate(v *auth.Verifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			identity, err := v.ParseIdentity(tokenStr)
			if err != nil {
				log.Debug("token rejected", zap.Error(err))
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}
