package transport

import (
	"net/http"

	"menucraft/internal/middleware"
	"menucraft/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UploadResponse carries the public URL of a stored image
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadHandler handles image uploads for business logos and item photos
type UploadHandler struct {
	uploadService service.UploadService
	logger        *zap.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService service.UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		logger:        logger,
	}
}

// RegisterRoutes registers the upload routes
func (h *UploadHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/upload", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/image", h.UploadImage)
	})
}

// UploadImage accepts a multipart form with an "image" field, validates it,
// and returns the public URL of the stored object.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxImageSize)
	if err := r.ParseMultipartForm(service.MaxImageSize); err != nil {
		h.logger.Debug("Image upload form parse failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid or oversized upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing 'image' form field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	url, err := h.uploadService.UploadImage(r.Context(), profileID, header.Filename, contentType, header.Size, file)
	if err != nil {
		switch err {
		case service.ErrUnsupportedImageType:
			middleware.RespondWithError(w, http.StatusBadRequest, "unsupported image type")
		case service.ErrImageTooLarge:
			middleware.RespondWithError(w, http.StatusBadRequest, "image exceeds the maximum allowed size")
		default:
			h.logger.Error("Image upload failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to upload image")
		}
		return
	}

	h.logger.Info("Image uploaded",
		zap.String("profile_id", profileID.String()),
		zap.String("url", url),
	)
	middleware.RespondWithMessage(w, http.StatusCreated, UploadResponse{URL: url}, "Image uploaded successfully")
}
