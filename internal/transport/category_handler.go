package transport

import (
	"net/http"

	"menucraft/internal/middleware"
	"menucraft/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// UpdateCategoryRequest represents a partial category update payload
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}

// ReorderItemRequest is one (id, sort_order) pair in a reorder batch
type ReorderItemRequest struct {
	ID        string `json:"id" validate:"required,uuid"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

// ReorderRequest represents a reorder payload. The batch must not be empty
// and every entry must carry a valid resource ID.
type ReorderRequest struct {
	Items []ReorderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (req *ReorderRequest) toEntries() []service.ReorderEntry {
	entries := make([]service.ReorderEntry, len(req.Items))
	for i, item := range req.Items {
		// IDs are validated as UUIDs before this point
		id, _ := uuid.Parse(item.ID)
		entries[i] = service.ReorderEntry{ID: id, SortOrder: item.SortOrder}
	}
	return entries
}

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/api/business/{businessId}/categories", h.Create)
		r.Get("/api/business/{businessId}/categories", h.GetAll)
		r.Put("/api/categories/reorder", h.Reorder)
		r.Put("/api/categories/{id}", h.Update)
		r.Delete("/api/categories/{id}", h.Delete)
	})
}

// Create handles category creation within a business
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	businessID, err := uuid.Parse(chi.URLParam(r, "businessId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	var req CreateCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Create category validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.Create(r.Context(), businessID, profileID, service.CreateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusForbidden, "Not authorized to modify this business")
			return
		}
		h.logger.Error("Create category failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	middleware.RespondWithMessage(w, http.StatusCreated, category, "Category created successfully")
}

// GetAll handles listing a business's categories
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	businessID, err := uuid.Parse(chi.URLParam(r, "businessId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	categories, err := h.categoryService.GetAllByBusiness(r.Context(), businessID, profileID)
	if err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusForbidden, "Not authorized to view this business")
			return
		}
		h.logger.Error("List categories failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, categories)
}

// Update handles a partial category update
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	var req UpdateCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update category validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, profileID, service.UpdateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusNotFound, "Category not found or not authorized")
			return
		}
		h.logger.Error("Update category failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update category")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, category, "Category updated successfully")
}

// Delete handles category deletion
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	if err := h.categoryService.Delete(r.Context(), id, profileID); err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusNotFound, "Category not found or not authorized")
			return
		}
		h.logger.Error("Delete category failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, nil, "Category deleted successfully")
}

// Reorder handles a category reorder batch
func (h *CategoryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ReorderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Reorder categories validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.categoryService.Reorder(r.Context(), profileID, req.toEntries()); err != nil {
		if err == service.ErrNotAuthorized || err == service.ErrEmptyReorder {
			middleware.RespondWithError(w, http.StatusBadRequest, "Failed to reorder categories")
			return
		}
		h.logger.Error("Reorder categories failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reorder categories")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, nil, "Categories reordered successfully")
}
