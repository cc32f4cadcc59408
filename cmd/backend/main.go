// Package main provides the entry point for the BetGuide catalog service.
//
//	@title			BetGuide API
//	@version		1.0.0
//	@description	Bookmaker affiliate catalog: bookmakers, bonuses, blog and click tracking.
//
//	@contact.name	BetGuide Support
//	@contact.email	support@betguide.example
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@securityDefinitions.apikey	AdminKey
//	@in							header
//	@name						X-Admin-Key
//	@description				Shared admin secret
package main

import (
	"BetGuide-Backend/internal/analytics"
	"BetGuide-Backend/internal/auth"
	"BetGuide-Backend/internal/config"
	"BetGuide-Backend/internal/database"
	httpHandler "BetGuide-Backend/internal/handler/http"
	"BetGuide-Backend/internal/metrics"
	"BetGuide-Backend/internal/repository"
	"BetGuide-Backend/internal/repository/memory"
	"BetGuide-Backend/internal/repository/postgres"
	"BetGuide-Backend/internal/service"
	"BetGuide-Backend/pkg/logger"
	"BetGuide-Backend/pkg/sanitize"
	"BetGuide-Backend/pkg/useragent"
	"context"
	"errors"
	lg "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "BetGuide-Backend/docs" // Import swagger docs
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	defer func() {
		if err := log.Sync(); err != nil {
			lg.Printf("ERROR: failed to sync zap logger: %v\n", err)
		}
	}()

	log.Info("starting BetGuide catalog service",
		zap.String("env", cfg.Env),
		zap.String("storage", cfg.Database.Driver))

	if cfg.Admin.Secret == "" {
		log.Warn("admin secret is empty, admin routes accept same-origin requests only")
	}

	m := metrics.New()

	storage, closeStorage := openStorage(cfg, m, log)
	defer closeStorage()

	// Seed initial data if enabled
	if cfg.Database.SeedData {
		log.Info("seeding storage with initial data (seed_data: true)")
		if err := database.SeedData(context.Background(), storage, cfg.Admin, auth.NewPasswordService(), log); err != nil {
			log.Fatal("failed to seed storage", zap.Error(err))
		}
	}

	uaParser := useragent.New(cfg.Analytics.RegexesPath, log)
	tracker := analytics.NewTracker(storage, uaParser, m, log)
	blogService := service.NewBlogService(storage, sanitize.New(), log)
	bonusService := service.NewBonusService(storage, storage)
	adminGate := auth.NewAdminGate(cfg.Admin.Secret, cfg.Admin.AllowSameOrigin, log)

	httpAPIServer := httpHandler.NewServer(
		storage,
		blogService,
		bonusService,
		tracker,
		adminGate,
		m,
		cfg.HTTPServer.AllowedOrigins,
		log,
	)

	server := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      httpAPIServer.SetupRoutes(),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	log.Info("starting HTTP server", zap.String("address", cfg.HTTPServer.Address))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down BetGuide catalog service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}
}

// openStorage выбирает хранилище по cfg.Database.Driver. Возвращает функцию закрытия.
func openStorage(cfg *config.Config, m *metrics.Metrics, log *zap.Logger) (repository.Storage, func()) {
	if cfg.Database.Driver == "memory" {
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), func() {}
	}

	db, err := database.NewConnection(&cfg.Database, cfg.Env, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations if enabled
	if cfg.Database.AutoMigrate {
		log.Info("running database migrations (auto_migrate: true)")
		if err := database.AutoMigrate(db, log); err != nil {
			log.Fatal("failed to run database migrations", zap.Error(err))
		}
	} else {
		log.Info("skipping database migrations (auto_migrate: false)")
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := m.RegisterDB(sqlDB, cfg.Database.DBName); err != nil {
			log.Warn("failed to register database metrics", zap.Error(err))
		}
	}

	return postgres.New(db, log), func() {
		if err := database.Close(db, log); err != nil {
			log.Error("failed to close database connection", zap.Error(err))
		}
	}
}
