package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appdocs "github.com/samverms/Kadouri-sub002/internal/application/documents"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/config"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/logger"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/printing"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/storage"
	"github.com/samverms/Kadouri-sub002/internal/interfaces/http/handler"
	"github.com/samverms/Kadouri-sub002/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting document renderer",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env))

	// Confirmation template and PDF renderer
	template, err := printing.NewConfirmationTemplate()
	if err != nil {
		log.Fatal("Failed to parse confirmation template", zap.Error(err))
	}

	renderer := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Render.Timeout,
		RemoteURL:      cfg.Render.RemoteURL,
		NoSandbox:      cfg.Render.NoSandbox,
		Logger:         log.Named("renderer"),
	})

	// Object storage is optional. Without it documents are returned inline
	// as data URLs instead of being uploaded.
	var store storage.ObjectStorage
	if cfg.Storage.IsConfigured() {
		s3Store, err := storage.NewS3ObjectStorage(&cfg.Storage,
			storage.WithLogger(log.Named("storage")),
		)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		store = s3Store
		log.Info("Object storage configured", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		log.Warn("Object storage not configured, documents will be served inline")
	}

	service := appdocs.NewConfirmationService(template, renderer, store, log.Named("documents"))

	// HTTP server
	engine := router.NewEngine(cfg, log)
	r := router.NewRouter(engine)
	r.Register(handler.NewConfirmationHandler(service, log.Named("http")))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
