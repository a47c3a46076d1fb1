package transport

import (
	"net/http"

	"menucraft/internal/domain"
	"menucraft/internal/middleware"
	"menucraft/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBusinessRequest represents the business creation payload
type CreateBusinessRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	BusinessType string  `json:"business_type" validate:"required,oneof=restaurant retail"`
	Description  *string `json:"description"`
	Currency     string  `json:"currency" validate:"omitempty,max=10"`
}

// UpdateBusinessRequest represents a partial business update payload
type UpdateBusinessRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=255"`
	BusinessType  *string `json:"business_type" validate:"omitempty,oneof=restaurant retail"`
	Description   *string `json:"description"`
	LogoURL       *string `json:"logo_url"`
	CoverImageURL *string `json:"cover_image_url"`
	ContactEmail  *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone  *string `json:"contact_phone"`
	Address       *string `json:"address"`
	WebsiteURL    *string `json:"website_url"`
	PrimaryColor  *string `json:"primary_color"`
	Currency      *string `json:"currency" validate:"omitempty,max=10"`
	IsActive      *bool   `json:"is_active"`
	IsPublished   *bool   `json:"is_published"`
}

// BusinessHandler handles HTTP requests for business operations
type BusinessHandler struct {
	businessService service.BusinessService
	logger          *zap.Logger
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(businessService service.BusinessService, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		logger:          logger,
	}
}

// RegisterRoutes registers all business routes
func (h *BusinessHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/business", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles business creation
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateBusinessRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Create business validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	business, err := h.businessService.Create(r.Context(), profileID, service.CreateBusinessInput{
		Name:         req.Name,
		BusinessType: domain.BusinessType(req.BusinessType),
		Description:  req.Description,
		Currency:     req.Currency,
	})
	if err != nil {
		h.logger.Error("Create business failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create business")
		return
	}

	h.logger.Info("Business created",
		zap.String("business_id", business.ID.String()),
		zap.String("slug", business.Slug),
	)
	middleware.RespondWithMessage(w, http.StatusCreated, business, "Business created successfully")
}

// GetAll handles listing the caller's businesses
func (h *BusinessHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	businesses, err := h.businessService.GetAll(r.Context(), profileID)
	if err != nil {
		h.logger.Error("List businesses failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch businesses")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, businesses)
}

// Get handles fetching a single business
func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	business, err := h.businessService.Get(r.Context(), id, profileID)
	if err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusNotFound, "Business not found or not authorized")
			return
		}
		h.logger.Error("Get business failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch business")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, business)
}

// Update handles a partial business update
func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	var req UpdateBusinessRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update business validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.UpdateBusinessInput{
		Name:          req.Name,
		Description:   req.Description,
		LogoURL:       req.LogoURL,
		CoverImageURL: req.CoverImageURL,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Address:       req.Address,
		WebsiteURL:    req.WebsiteURL,
		PrimaryColor:  req.PrimaryColor,
		Currency:      req.Currency,
		IsActive:      req.IsActive,
		IsPublished:   req.IsPublished,
	}
	if req.BusinessType != nil {
		businessType := domain.BusinessType(*req.BusinessType)
		input.BusinessType = &businessType
	}

	business, err := h.businessService.Update(r.Context(), id, profileID, input)
	if err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusNotFound, "Business not found or not authorized")
			return
		}
		h.logger.Error("Update business failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update business")
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, business, "Business updated successfully")
}

// Delete handles business deletion
func (h *BusinessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid business ID")
		return
	}

	if err := h.businessService.Delete(r.Context(), id, profileID); err != nil {
		if err == service.ErrNotAuthorized {
			middleware.RespondWithError(w, http.StatusNotFound, "Business not found or not authorized")
			return
		}
		h.logger.Error("Delete business failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete business")
		return
	}

	h.logger.Info("Business deleted", zap.String("business_id", id.String()))
	middleware.RespondWithMessage(w, http.StatusOK, nil, "Business deleted successfully")
}
