package middleware

import (
	"context"
	"net/http"
	"strings"

	"menucraft/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	ProfileIDKey contextKey = "profile_id"
	UserRoleKey  contextKey = "user_role"
)

// AuthMiddleware validates bearer tokens issued by the identity provider
// and resolves the subject to a local profile, provisioning one on first
// sight. The verified profile ID becomes the principal for every downstream
// ownership check.
func AuthMiddleware(jwtSecret string, profiles service.ProfileService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug("Missing authorization header")
				RespondWithError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Debug("Invalid authorization header format")
				RespondWithError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})

			if err != nil {
				logger.Debug("Token validation failed", zap.Error(err))
				if err == jwt.ErrTokenExpired {
					RespondWithError(w, http.StatusUnauthorized, "token expired")
				} else {
					RespondWithError(w, http.StatusUnauthorized, "invalid token")
				}
				return
			}

			if !token.Valid {
				logger.Debug("Invalid token")
				RespondWithError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				logger.Error("Failed to extract claims from token")
				RespondWithError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			authUserID, ok := claims["sub"].(string)
			if !ok || authUserID == "" {
				logger.Error("Missing sub in token claims")
				RespondWithError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			email, _ := claims["email"].(string)
			fullName := optionalClaim(claims, "name")
			avatarURL := optionalClaim(claims, "avatar_url")

			profile, err := profiles.EnsureProfile(r.Context(), authUserID, email, fullName, avatarURL)
			if err != nil {
				logger.Error("Failed to resolve profile", zap.Error(err))
				RespondWithError(w, http.StatusInternalServerError, "failed to initialize profile")
				return
			}

			ctx := context.WithValue(r.Context(), ProfileIDKey, profile.ID)
			ctx = context.WithValue(ctx, UserRoleKey, profile.Role)

			logger.Debug("Request authenticated",
				zap.String("profile_id", profile.ID.String()),
				zap.String("role", profile.Role),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func optionalClaim(claims jwt.MapClaims, key string) *string {
	if value, ok := claims[key].(string); ok && value != "" {
		return &value
	}
	return nil
}

// GetProfileID extracts the authenticated profile ID from request context
func GetProfileID(ctx context.Context) (uuid.UUID, bool) {
	profileID, ok := ctx.Value(ProfileIDKey).(uuid.UUID)
	return profileID, ok
}

// GetUserRole extracts the authenticated profile's role from request context
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(UserRoleKey).(string)
	return role, ok
}
