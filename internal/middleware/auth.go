package middleware

import (
	"net/http"

	"eshop-be/internal/auth"
	"eshop-be/internal/logger"
	"eshop-be/internal/utils"

	"go.uber.org/zap"
)

// AuthMiddleware resolves the access token into a user id and role.
// Requests without a token pass through anonymously; a token that does not
// verify is rejected.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Warn("rejected access token",
					zap.String("layer", "middleware"),
					zap.Error(err),
				)
				utils.WriteJSONError(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
