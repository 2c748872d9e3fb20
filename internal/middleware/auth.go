package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/nyayasetu/nyayasetu/internal/auth"
	"github.com/nyayasetu/nyayasetu/internal/model"
)

// BearerAuth validates an Authorization: Bearer token when one is
// supplied and attaches the caller's identity to the request context.
// No route requires a token, so requests without one (or with an
// invalid one) proceed unauthenticated; invalid tokens are logged.
func BearerAuth(tokens *auth.TokenIssuer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				logger.Warn("invalid bearer token",
					slog.String("request_id", GetRequestID(r.Context())),
				)
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), &model.Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
