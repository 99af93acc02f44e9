// Package main provides the entry point for the Backtrack campaign tracker service.
//
//	@title			Backtrack API
//	@version		1.0.0
//	@description	Backlink placement campaign tracker: websites, resources and placement records.
//
//	@contact.name	Backtrack Support
//	@contact.email	support@backtrack.dev
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
package main

import (
	"Backtrack-Backend/internal/config"
	"Backtrack-Backend/internal/database"
	httpHandler "Backtrack-Backend/internal/handler/http"
	"Backtrack-Backend/internal/repository/postgres"
	"Backtrack-Backend/pkg/logger"
	"context"
	"fmt"
	lg "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	defer func() {
		if err := log.Sync(); err != nil {
			lg.Printf("ERROR: failed to sync zap logger: %v\n", err)
		}
	}()

	log.Info("starting backtrack service", zap.String("env", cfg.Env))

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, log); err != nil {
			log.Error("failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations if enabled
	if cfg.Database.AutoMigrate {
		log.Info("running database migrations (auto_migrate: true)")
		if err := database.AutoMigrate(db, log); err != nil {
			log.Fatal("failed to run database migrations", zap.Error(err))
		}
	} else {
		log.Info("skipping database migrations (auto_migrate: false)")
	}

	// Seed reference data if enabled
	if cfg.Database.SeedData {
		log.Info("seeding database with reference data (seed_data: true)")
		if err := database.SeedData(db, log); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	} else {
		log.Info("skipping database seeding (seed_data: false)")
	}

	// Initialize storage and HTTP server
	storage := postgres.New(db, log)
	apiServer := httpHandler.NewServer(storage, parseDuration(cfg.Database.QueryTimeout, 60*time.Second, log), log)
	mux := apiServer.SetupRoutes()

	addr := fmt.Sprintf(":%d", cfg.HTTPServer.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  parseDuration(cfg.HTTPServer.ReadTimeout, 30*time.Second, log),
		WriteTimeout: parseDuration(cfg.HTTPServer.WriteTimeout, 30*time.Second, log),
		IdleTimeout:  parseDuration(cfg.HTTPServer.IdleTimeout, 60*time.Second, log),
	}

	log.Info("starting HTTP server", zap.String("address", addr))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down backtrack service...")

	// Gracefully stop HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}
}

// parseDuration разбирает строку длительности из конфига,
// при ошибке возвращает значение по умолчанию.
func parseDuration(raw string, def time.Duration, log *zap.Logger) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn("invalid duration in config, using default",
			zap.String("value", raw), zap.Duration("default", def))
		return def
	}
	return d
}
