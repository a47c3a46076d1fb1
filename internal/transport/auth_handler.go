package transport

import (
	"net/http"

	"menucraft/internal/middleware"
	"menucraft/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthHandler exposes the authenticated caller's own profile
type AuthHandler struct {
	profileService service.ProfileService
	logger         *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(profileService service.ProfileService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/me", h.Me)
	})
}

// Me returns the profile belonging to the access token on the request
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.profileService.GetByID(r.Context(), profileID)
	if err != nil {
		h.logger.Error("Failed to load profile", zap.Error(err), zap.String("profile_id", profileID.String()))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, profile)
}
