package main

import (
	"github.com/labstack/echo/v4"
	"github.com/rownak648/storyline/internal/render"
	"github.com/rownak648/storyline/internal/router"
	"github.com/rownak648/storyline/pkg/config"
	"github.com/rownak648/storyline/pkg/logger"
	"github.com/rownak648/storyline/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Env)

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Page templates
	e.Renderer = render.New()

	// Setup global middleware
	router.SetupMiddleware(e, log)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cfg, log)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
