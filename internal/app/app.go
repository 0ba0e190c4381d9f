// Package app assembles the fiber application: middleware, error mapping,
// routes and the services behind them.
package app

import (
	"errors"
	"time"

	"storefront/internal/apperror"
	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/services"
	"storefront/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Options are the collaborators New wires together.
type Options struct {
	Config *config.Config
	Log    *logrus.Logger
	Repos  Repositories
	// Events may be nil, in which case nothing is published.
	Events services.EventPublisher
	// DB is pinged by the health check; nil for the memory store.
	DB *gorm.DB
}

// New builds the fiber app serving the products, users and reviews API.
func New(opts Options) *fiber.App {
	cfg, log := opts.Config, opts.Log

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: ErrorHandler(log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Recover(log))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${locals:" + middleware.RequestIDLocal + "} | ${status} | ${latency} | ${method} ${path}\n",
		Output: log.Out,
	}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))

	productService := services.NewProductService(opts.Repos.Products, opts.Events, log)
	userService := services.NewUserService(opts.Repos.Users, services.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.JWTTTL,
		BcryptCost: cfg.BcryptCost,
	}, opts.Events, log)
	reviewService := services.NewReviewService(opts.Repos.Reviews, opts.Events, log)

	api := app.Group("/api")
	handlers.NewProductHandler(productService, log).RegisterRoutes(api)
	handlers.NewUserHandler(userService, log).RegisterRoutes(api)
	handlers.NewReviewHandler(reviewService, log).RegisterRoutes(api)

	app.Get("/health", healthHandler(opts.DB))

	return app
}

// ErrorHandler writes every failed request as
// {"message": ..., "error": <status text>, "statusCode": <status>}.
// Validation failures also carry an "errors" list. Unexpected errors are
// logged and hidden behind a generic 500.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message":    verr.Message(),
				"errors":     verr.Details(),
				"error":      utils.StatusMessage(fiber.StatusBadRequest),
				"statusCode": fiber.StatusBadRequest,
			})
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return writeError(c, appErr.Status(), appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return writeError(c, fiberErr.Code, fiberErr.Message)
		}

		log.WithError(err).WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"method":     c.Method(),
			"path":       c.Path(),
		}).Error("request failed")
		return writeError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message":    message,
		"error":      utils.StatusMessage(status),
		"statusCode": status,
	})
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		database := "memory"
		status := fiber.StatusOK
		if db != nil {
			database = "up"
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.UserContext())
			}
			if err != nil {
				database = "down"
				status = fiber.StatusServiceUnavailable
			}
		}
		health := "healthy"
		if status != fiber.StatusOK {
			health = "unhealthy"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   health,
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
		})
	}
}
