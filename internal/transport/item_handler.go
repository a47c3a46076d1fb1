package transport

import (
	"net/http"

	"menucraft/internal/middleware"
	"menucraft/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateItemRequest represents the item creation payload
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    *string `json:"image_url"`
}

// UpdateItemRequest represents a partial item update payload
type UpdateItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

// ItemHandler handles HTTP requests for item operations, including the
// administrative bypass routes.
type ItemHandler struct {
	itemService service.ItemService
	logger      *zap.Logger
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService service.ItemService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		logger:      logger,
	}
}

// RegisterRoutes registers the owner-scoped item routes
func (h *ItemHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/api/categories/{categoryId}/items", h.Create)
		r.Get("/api/categories/{categoryId}/items", h.GetAll)
		r.Put("/api/items/reorder", h.Reorder)
		r.Put("/api/items/{id}", h.Update)
		r.Delete("/api/items/{id}", h.Delete)
	})
}

// RegisterAdminRoutes registers the bypass variants. They skip ownership
// resolution entirely, so they must stay behind the admin role gate.
func (h *ItemHandler) RegisterAdminRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(adminMiddleware)
		r.Post("/categories/{categoryId}/items", h.CreateAdmin)
		r.Get("/categories/{categoryId}/items", h.GetAllAdmin)
		r.Put("/items/reorder", h.ReorderAdmin)
		r.Put("/items/{id}", h.UpdateAdmin)
		r.Delete("/items/{id}", h.DeleteAdmin)
	})
}

// Create handles item creation within a category
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	req, ok := h.decodeCreate(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.Create(r.Context(), categoryID, profileID, req.toInput())
	if err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusForbidden, "Not authorized to modify this category")
			return
		}
		h.logger.Error("Create item failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	middleware.RespondWithMessage(w, http.StatusCreated, item, "Item created successfully")
}

// GetAll handles listing a category's items
func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	items, err := h.itemService.GetAllByCategory(r.Context(), categoryID, profileID)
	if err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusForbidden, "Not authorized to view this category")
			return
		}
		h.logger.Error("List items failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch items")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, items)
}

// Update handles a partial item update
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	req, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.Update(r.Context(), id, profileID, req.toInput())
	if err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusNotFound, "Item not found or not authorized")
			return
		}
		h.logger.Error("Update item failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, item, "Item updated successfully")
}

// Delete handles item deletion
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	if err := h.itemService.Delete(r.Context(), id, profileID); err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusNotFound, "Item not found or not authorized")
			return
		}
		h.logger.Error("Delete item failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, nil, "Item deleted successfully")
}

// Reorder handles an item reorder batch
func (h *ItemHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ReorderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Reorder items validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.itemService.Reorder(r.Context(), profileID, req.toEntries()); err != nil {
		if err == service.ErrNotAuthorized || err == service.ErrEmptyReorder {
			middleware.RespondWithError(w, http.StatusBadRequest, "Failed to reorder items")
			return
		}
		h.logger.Error("Reorder items failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reorder items")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, nil, "Items reordered successfully")
}

// CreateAdmin creates an item without an ownership check
func (h *ItemHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	req, ok := h.decodeCreate(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.CreateAdmin(r.Context(), categoryID, req.toInput())
	if err != nil {
		h.logger.Error("Admin create item failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	middleware.RespondWithMessage(w, http.StatusCreated, item, "Item created successfully")
}

// GetAllAdmin lists a category's items without an ownership check
func (h *ItemHandler) GetAllAdmin(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	items, err := h.itemService.GetAllByCategoryAdmin(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("Admin list items failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch items")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, items)
}

// UpdateAdmin patches an item without an ownership check
func (h *ItemHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	req, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.UpdateAdmin(r.Context(), id, req.toInput())
	if err != nil {
		h.logger.Error("Admin update item failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, item, "Item updated successfully")
}

// DeleteAdmin removes an item without an ownership check
func (h *ItemHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	if err := h.itemService.DeleteAdmin(r.Context(), id); err != nil {
		h.logger.Error("Admin delete item failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, nil, "Item deleted successfully")
}

// ReorderAdmin applies a reorder batch without an ownership check
func (h *ItemHandler) ReorderAdmin(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Admin reorder items validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.itemService.ReorderAdmin(r.Context(), req.toEntries()); err != nil {
		if err == service.ErrEmptyReorder {
			middleware.RespondWithError(w, http.StatusBadRequest, "Failed to reorder items")
			return
		}
		h.logger.Error("Admin reorder items failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reorder items")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, nil, "Items reordered successfully")
}

func (h *ItemHandler) decodeCreate(w http.ResponseWriter, r *http.Request) (*CreateItemRequest, bool) {
	var req CreateItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Create item validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return nil, false
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

func (h *ItemHandler) decodeUpdate(w http.ResponseWriter, r *http.Request) (*UpdateItemRequest, bool) {
	var req UpdateItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update item validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return nil, false
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

func (req *CreateItemRequest) toInput() service.CreateItemInput {
	return service.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
}

func (req *UpdateItemRequest) toInput() service.UpdateItemInput {
	return service.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}
}
