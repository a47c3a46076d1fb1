package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"menucraft/internal/config"
	"menucraft/internal/database"
	custommiddleware "menucraft/internal/middleware"
	"menucraft/internal/repository"
	"menucraft/internal/service"
	"menucraft/internal/storage"
	"menucraft/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config      *config.Config
	logger      *zap.Logger
	db          database.Service
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service) (*Server, error) {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(db.Health())
	})

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	objectStore, err := storage.NewS3Store(context.Background(), cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository(db.DB())
	categoryRepo := repository.NewCategoryRepository(db.DB())
	itemRepo := repository.NewItemRepository(db.DB())
	menuRepo := repository.NewMenuRepository(db.DB())
	profileRepo := repository.NewProfileRepository(db.DB())

	// Initialize services
	ownership := service.NewOwnershipResolver(businessRepo, categoryRepo, itemRepo)
	businessService := service.NewBusinessService(businessRepo)
	categoryService := service.NewCategoryService(categoryRepo, ownership)
	itemService := service.NewItemService(itemRepo, ownership)
	menuService := service.NewMenuService(menuRepo)
	profileService := service.NewProfileService(profileRepo)
	uploadService := service.NewUploadService(objectStore)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(profileService, logger)
	businessHandler := transport.NewBusinessHandler(businessService, logger)
	categoryHandler := transport.NewCategoryHandler(categoryService, logger)
	itemHandler := transport.NewItemHandler(itemService, logger)
	menuHandler := transport.NewMenuHandler(menuService, logger)
	uploadHandler := transport.NewUploadHandler(uploadService, logger)

	// Create middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, profileService, logger)
	adminMiddleware := custommiddleware.RequireAdmin(logger)
	menuRateLimit := custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimit.MenuRequestsPerMinute,
		Window:            time.Minute,
		KeyPrefix:         "ratelimit:menu",
	}, logger)

	// Register routes
	authHandler.RegisterRoutes(router, authMiddleware)
	businessHandler.RegisterRoutes(router, authMiddleware)
	categoryHandler.RegisterRoutes(router, authMiddleware)
	itemHandler.RegisterRoutes(router, authMiddleware)
	itemHandler.RegisterAdminRoutes(router, authMiddleware, adminMiddleware)
	menuHandler.RegisterRoutes(router, menuRateLimit)
	uploadHandler.RegisterRoutes(router, authMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:      cfg,
		logger:      logger,
		db:          db,
		redisClient: redisClient,
	}

	return server, nil
}

// DB exposes the underlying connection for migration runs at startup
func (s *Server) DB() *sql.DB {
	return s.db.DB()
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
