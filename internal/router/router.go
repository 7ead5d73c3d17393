package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rownak648/storyline/internal/handlers"
	"github.com/rownak648/storyline/internal/middleware"
	"github.com/rownak648/storyline/internal/models"
	"github.com/rownak648/storyline/internal/repositories"
	"github.com/rownak648/storyline/internal/upload"
	"github.com/rownak648/storyline/pkg/config"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// placeholderSVG is the generic preview image; the thumbnail resolver points
// social crawlers here when a post has nothing better.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630"><rect width="100%" height="100%" fill="#e5e7eb"/><text x="50%" y="50%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="48" fill="#6b7280">Storyline</text></svg>`

// SetupMiddleware configures global Echo middleware with request logging
// through the application logger.
func SetupMiddleware(e *echo.Echo, log zerolog.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))
	log.Info().Msg("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Post{},
		&models.Link{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to auto migrate models")
	}
	log.Info().Msg("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/placeholder.svg", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "image/svg+xml", []byte(placeholderSVG))
	})

	// --- Initialize Repositories ---
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	linkRepo := repositories.NewPostgresLinkRepository(pgdb)

	// --- Public post pages ---
	pageHandler := handlers.NewPageHandler(linkRepo, cfg.SiteURL, log)
	pageHandler.RegisterPageRoutes(e)
	log.Info().Msg("Public page routes configured.")

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(cfg.AdminPasswordHash, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Info().Msg("Auth routes configured.")

	// --- Protected admin routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	linkHandler := handlers.NewLinkHandler(postRepo, linkRepo, cfg.SiteURL, log)
	linkHandler.RegisterLinkRoutes(api)
	log.Info().Msg("Link routes configured.")

	uploader := upload.NewClient(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
	uploadHandler := handlers.NewUploadHandler(uploader, log)
	uploadHandler.RegisterUploadRoutes(api)
	log.Info().Msg("Upload routes configured.")

	log.Info().Msg("All routes configured.")
}
