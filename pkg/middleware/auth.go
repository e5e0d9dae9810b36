package middleware

import (
	"errors"
	"net/http"
	"strings"

	"yamdb-api/internal/data/repository"
	"yamdb-api/pkg/token"
	"yamdb-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessTokenParser validates a bearer access token.
type AccessTokenParser interface {
	ParseAccess(tokenString string) (*token.Claims, error)
}

// Authenticate requires a valid access token and loads its user on every
// request, so role changes and deletions apply immediately.
func Authenticate(parser AccessTokenParser, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, raw, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := parser.ParseAccess(strings.TrimSpace(raw))
			if err != nil {
				logger.Warn("Rejected access token", zap.Error(err), zap.String("path", r.URL.Path))
				switch {
				case errors.Is(err, token.ErrExpiredToken):
					utils.ResponseUnauthorized(w, "Token expired")
				case errors.Is(err, token.ErrWrongType):
					utils.ResponseUnauthorized(w, "Access token required")
				default:
					utils.ResponseUnauthorized(w, "Invalid token")
				}
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load token user",
					zap.Error(err),
					zap.String("user_id", claims.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token for unknown user", zap.String("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "User not found")
				return
			}

			ctx := utils.SetUserContext(r.Context(), utils.Actor{
				UserID:   user.ID,
				Username: user.Username,
				Role:     string(user.Role),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin allows only admins through; it must run after Authenticate.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := utils.GetActorFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !actor.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", actor.UserID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
