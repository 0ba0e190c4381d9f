package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"storefront/internal/app"
	"storefront/internal/config"
	"storefront/internal/services"
	"storefront/pkg/logger"
	"storefront/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	log := logger.New(cfg.AppName, cfg.Env, cfg.LogLevel)

	// --- Storage ---
	var (
		db    *gorm.DB
		repos app.Repositories
	)
	if cfg.DatabaseDriver == config.DriverMemory {
		log.Warn("Using in-memory storage; data is lost on restart")
		repos = app.NewMemoryRepositories()
	} else {
		db, err = app.OpenDatabase(cfg, log)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		repos = app.NewGORMRepositories(db)
	}

	if cfg.DatabaseSeed {
		if err := app.SeedProducts(context.Background(), repos.Products, log); err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
	}

	// --- Events ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.RabbitMQExchange,
		}, log)
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient

		// Audit trail of every resource change.
		auditQueue := cfg.AppName + ".audit"
		err = mqClient.Consume(auditQueue, "#", func(msg amqp.Delivery) error {
			log.WithFields(logrus.Fields{
				"routing_key": msg.RoutingKey,
				"delivery":    msg.DeliveryTag,
			}).Info(string(msg.Body))
			return nil
		})
		if err != nil {
			log.Errorf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Info("RABBITMQ_URL not set, events are disabled")
	}

	// --- HTTP ---
	server := app.New(app.Options{
		Config: cfg,
		Log:    log,
		Repos:  repos,
		Events: events,
		DB:     db,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := server.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Errorf("Error during Fiber shutdown: %v", err)
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	log.Info("Server gracefully stopped")
}
