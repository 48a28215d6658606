package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reviews/config"
	"reviews/database"
	"reviews/logger"
	"reviews/metrics"
	"reviews/routers"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	// Schema must exist before the first request is accepted
	store, err := database.Open(cfg, zl)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}

	app := routers.NewApp(routers.Options{
		Config:  cfg,
		Logger:  zl,
		Store:   store,
		Metrics: metrics.New(),
	})

	go func() {
		zl.Info("server is running", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zl.Error("failed to shut down server", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		zl.Error("failed to close database", zap.Error(err))
	}
}
