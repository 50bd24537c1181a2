package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "movies-admin/docs"
	"movies-admin/internal/apperror"
	"movies-admin/internal/config"
	"movies-admin/internal/database"
	"movies-admin/internal/handlers"
	"movies-admin/internal/repository"
	"movies-admin/internal/routes"
	"movies-admin/internal/services"
	"movies-admin/internal/utils"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Movies Admin API
// @version 1.0
// @description Catalog administration and read API for film works, persons and genres

// @host localhost:8000
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load environment variables
	config.LoadEnvFiles()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := config.NewLogger()

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

	genreRepo := repository.NewGenreRepository(db)
	personRepo := repository.NewPersonRepository(db)
	filmworkRepo := repository.NewFilmworkRepository(db)
	assocRepo := repository.NewAssociationRepository(db)

	catalogService := services.NewCatalogService(genreRepo, personRepo, filmworkRepo, assocRepo, cfg, log)
	moviesService := services.NewMoviesService(filmworkRepo, cfg, log)

	h := routes.Handlers{
		Genres:    handlers.NewGenreHandler(catalogService, cfg.Catalog.AdminPageSize, log),
		Persons:   handlers.NewPersonHandler(catalogService, cfg.Catalog.AdminPageSize, log),
		Filmworks: handlers.NewFilmworkHandler(catalogService, cfg.Catalog.AdminPageSize, log),
		Movies:    handlers.NewMoviesHandler(moviesService, log),
	}

	mediaService, err := services.NewMediaService(&cfg.MinIO, log)
	if err != nil {
		log.WithError(err).Warn("Media storage unavailable, uploads are disabled")
	} else {
		if cs, ok := catalogService.(interface{ SetMediaStore(services.MediaStore) }); ok {
			cs.SetMediaStore(mediaService)
		}
		h.Upload = handlers.NewUploadHandler(mediaService, log)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Movies Admin API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Setup API routes
	routes.Setup(app, h)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Movies Admin API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "UTC",
	}))

	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("movies_admin")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400,
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, dbStatus := "ok", "healthy"
		code := fiber.StatusOK
		if err := db.HealthCheck(); err != nil {
			status, dbStatus = "degraded", "unhealthy"
			code = fiber.StatusServiceUnavailable
		}

		return c.Status(code).JSON(fiber.Map{
			"status":    status,
			"service":   "movies-admin",
			"version":   config.Version,
			"database":  dbStatus,
			"driver":    db.Driver(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := apperror.HTTPStatus(err)
		message := apperror.Message(err)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return utils.ErrorResponse(c, code, message)
	}
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
