package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "venue-booking/docs"
	"venue-booking/internal/config"
	"venue-booking/internal/database"
	"venue-booking/internal/handlers"
	"venue-booking/internal/models"
	"venue-booking/internal/repository"
	"venue-booking/internal/routes"
	"venue-booking/internal/services"
	"venue-booking/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

// @title Venue Booking API
// @version 1.0
// @description Read-only JSON view of venues, artists, shows and genres, plus image upload presigning

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log, closeLog := setupLogger(cfg)
	defer closeLog()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	if cfg.App.SeedGenres {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.SeedGenres(ctx, models.DefaultGenres); err != nil {
			log.Errorf("Failed to seed genres: %v", err)
		}
		cancel()
	}

	var (
		images       services.ImageStore
		minioService *services.MinIOService
	)
	if cfg.MinIO.Enabled {
		minioService, err = services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		images = minioService
	}

	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	showRepo := repository.NewShowRepository(db)

	venueService := services.NewVenueService(venueRepo, genreRepo, images, log)
	artistService := services.NewArtistService(artistRepo, genreRepo, images, log)
	genreService := services.NewGenreService(genreRepo)
	showService := services.NewShowService(showRepo, log)

	store := session.New(session.Config{
		Expiration:     cfg.Session.Expiration,
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		CookieSecure:   cfg.Session.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	flash := handlers.NewFlasher(store, log)

	h := routes.Handlers{
		Page:   handlers.NewPageHandler(db, flash),
		Venue:  handlers.NewVenueHandler(venueService, genreService, flash, log),
		Artist: handlers.NewArtistHandler(artistService, genreService, flash, log),
		Show:   handlers.NewShowHandler(showService, flash, log),
		API:    handlers.NewAPIHandler(venueService, artistService, showService, genreService, log),
	}
	if minioService != nil {
		h.Upload = handlers.NewUploadHandler(minioService, log)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Venue Booking",
		Views:                 views.New(),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          handlers.NewErrorHandler(log),
	})

	setupMiddleware(app)

	routes.Setup(app, h)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Venue Booking starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

// setupLogger logs JSON to stdout. Outside development, errors are also
// appended to the configured error log file.
func setupLogger(cfg *config.Config) (*logrus.Logger, func()) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
		return log, func() {}
	}

	f, err := os.OpenFile(cfg.App.ErrorLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Warnf("Could not open error log file %s: %v", cfg.App.ErrorLogFile, err)
		return log, func() {}
	}

	log.AddHook(&writer.Hook{
		Writer: f,
		LogLevels: []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		},
	})
	return log, func() { _ = f.Close() }
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(requestid.New())

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${locals:requestid} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
