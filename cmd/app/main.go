package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymfinder/internal/cache"
	"gymfinder/internal/config"
	"gymfinder/internal/db"
	"gymfinder/internal/logger"
	"gymfinder/internal/server"
)

// @title Gymfinder API
// @version 1.0
// @description Gym discovery and search API.
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	logger.Info("Starting gymfinder")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	var cacheClient *cache.Client
	if c := cache.New(cfg.RedisAddr); c.Ping(context.Background()) == nil {
		cacheClient = c
		defer cacheClient.Close()
		logger.Info("Cache connected")
	} else {
		// Listings are served from the database when Redis is down.
		c.Close()
		logger.Error("Redis unavailable, listing cache disabled")
	}

	srv := server.New(database, cfg, cacheClient)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
