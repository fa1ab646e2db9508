package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ajira_backend/internal/auth"
	"ajira_backend/internal/config"
	"ajira_backend/internal/database"
	"ajira_backend/internal/email"
	"ajira_backend/internal/handlers"
	"ajira_backend/internal/imageprocessor"
	"ajira_backend/internal/logger"
	"ajira_backend/internal/middleware"
	"ajira_backend/internal/repositories"
	"ajira_backend/internal/routes"
	"ajira_backend/internal/services"
	"ajira_backend/internal/storage"
	"ajira_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	devJWTSecret    = "ajira-development-secret"
	shutdownTimeout = 10 * time.Second
)

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	logger.Info("Connecting to database...")
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	logger.Info("Database connected")

	ginRouter, err := SetupRouter(ctx, cfg, db)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", cfg.Addr(), "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server startup error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// SetupRouter builds the fully wired engine on top of an open database.
func SetupRouter(ctx context.Context, cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	store, err := storage.NewStorage(ctx, storage.Config{
		Type:         cfg.Storage.Type,
		BasePath:     cfg.Storage.BasePath,
		BaseURL:      cfg.Storage.BaseURL,
		Bucket:       cfg.Storage.Bucket,
		Region:       cfg.Storage.Region,
		Endpoint:     cfg.Storage.Endpoint,
		AccessKey:    cfg.Storage.AccessKey,
		SecretKey:    cfg.Storage.SecretKey,
		UsePathStyle: cfg.Storage.UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	sender, err := newEmailSender(cfg)
	if err != nil {
		return nil, err
	}
	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	tokens := auth.NewTokenManager(jwtSecret(cfg), cfg.Auth.AccessTTL)
	v := validator.New()

	serviceContainer := initializeServices(cfg, store, sender, templates, tokens, v)
	appHandlers := initializeHandlers(cfg, serviceContainer, store, v)

	ginRouter := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(ginRouter, appHandlers, handlers.Guards{
		Auth:         middleware.AuthMiddleware(tokens),
		OptionalAuth: middleware.OptionalAuth(tokens),
	})
	return ginRouter, nil
}

func initializeServices(
	cfg *config.Config,
	store storage.Storage,
	sender email.Sender,
	templates email.TemplateRenderer,
	tokens *auth.TokenManager,
	v *validator.Validator,
) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	verificationRepo := repositories.NewVerificationRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	savedJobRepo := repositories.NewSavedJobRepository()

	presenter := services.NewPresenter(store)
	uploadService := services.NewUploadService(store, imageprocessor.NewProcessor(cfg.Upload.ImageQuality))
	notificationService := services.NewNotificationService(userRepo, sender, templates, cfg.Server.FrontendURL)

	authService := services.NewAuthService(
		userRepo, verificationRepo, refreshTokenRepo,
		v, tokens, sender, templates, presenter,
		services.AuthConfig{
			RefreshTTL:           cfg.Auth.RefreshTTL,
			VerificationTTL:      cfg.Auth.VerificationTTL,
			RequireVerifiedEmail: cfg.Auth.RequireVerifiedEmail,
		},
	)

	return &services.ServiceContainer{
		AuthService:         authService,
		ProfileService:      services.NewProfileService(profileRepo, uploadService, presenter),
		JobService:          services.NewJobService(jobRepo, profileRepo, notificationService),
		ApplicationService:  services.NewApplicationService(applicationRepo, jobRepo, uploadService, presenter),
		SavedJobService:     services.NewSavedJobService(savedJobRepo, jobRepo),
		NotificationService: notificationService,
		UploadService:       uploadService,
		Presenter:           presenter,
	}
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer, store storage.Storage, v *validator.Validator) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(v)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, svc.AuthService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, svc.ProfileService),
		JobHandler:         handlers.NewJobHandler(baseHandler, svc.JobService),
		SavedJobHandler:    handlers.NewSavedJobHandler(baseHandler, svc.SavedJobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, svc.ApplicationService),
	}
	// S3 objects are fetched from the bucket URL directly.
	if cfg.Storage.Type == "local" {
		appHandlers.FileHandler = handlers.NewFileHandler(baseHandler, store)
	}
	return appHandlers
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func newEmailSender(cfg *config.Config) (email.Sender, error) {
	emailCfg := email.Config{
		Host:            cfg.Email.SMTPHost,
		Port:            cfg.Email.SMTPPort,
		Username:        cfg.Email.SMTPUsername,
		Password:        cfg.Email.SMTPPassword,
		FromEmail:       cfg.Email.FromEmail,
		FromName:        cfg.Email.FromName,
		UseTLS:          cfg.Email.UseTLS,
		RedirectInDebug: cfg.Email.RedirectInDebug,
		VerifiedEmail:   cfg.Email.VerifiedEmail,
	}

	var provider email.Provider
	switch cfg.Email.Provider {
	case "smtp":
		smtp, err := email.NewSMTPProvider(&emailCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize smtp provider: %w", err)
		}
		provider = smtp
	default:
		logger.Warn("Email provider is 'log'; messages are written to the log only")
		provider = email.NewLogProvider()
	}
	logger.Info("Email provider initialized", "provider", provider.Name())

	return email.NewGateway(provider, emailCfg), nil
}

func jwtSecret(cfg *config.Config) string {
	if cfg.Auth.JWTSecret != "" {
		return cfg.Auth.JWTSecret
	}
	logger.Warn("auth.jwt_secret is not set; using the development secret")
	return devJWTSecret
}
