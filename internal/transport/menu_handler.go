package transport

import (
	"net/http"

	"menucraft/internal/middleware"
	"menucraft/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MenuHandler serves the public read-only menu
type MenuHandler struct {
	menuService service.MenuService
	logger      *zap.Logger
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService service.MenuService, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger,
	}
}

// RegisterRoutes registers the public menu route. It carries no auth; the
// rate limiter keeps scrapers in check.
func (h *MenuHandler) RegisterRoutes(r chi.Router, rateLimitMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		if rateLimitMiddleware != nil {
			r.Use(rateLimitMiddleware)
		}
		r.Get("/api/menu/{slug}", h.GetBySlug)
	})
}

// GetBySlug handles fetching the public menu for a business slug
func (h *MenuHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing slug")
		return
	}

	menu, err := h.menuService.GetBySlug(r.Context(), slug)
	if err != nil {
		if err == service.ErrMenuNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "Menu not found")
			return
		}
		h.logger.Error("Get menu failed", zap.Error(err), zap.String("slug", slug))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch menu")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, menu)
}
