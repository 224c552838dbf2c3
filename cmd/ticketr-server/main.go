package main

import (
	"context"
	"log"

	"github.com/existflow/ticketr/internal/clock"
	"github.com/existflow/ticketr/internal/config"
	"github.com/existflow/ticketr/internal/logger"
	"github.com/existflow/ticketr/internal/storage"
	"github.com/existflow/ticketr/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if err := logger.Init(logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		FilePath:   cfg.LogFile,
		MaxSize:    10 * 1024 * 1024, // 10MB
		MaxAge:     7,
		MaxBackups: 5,
		Console:    true,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	store, err := storage.Open(context.Background(), storage.Options{
		Driver:      cfg.StorageDriver,
		Path:        cfg.StoragePath,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	srv := server.New(store, clock.Real())
	defer func() {
		if err := srv.Close(); err != nil {
			log.Printf("Error closing server: %v", err)
		}
	}()

	logger.Info("Ticketr server starting",
		logger.F("addr", cfg.ServerAddr),
		logger.F("storage", cfg.StorageDriver))
	if err := srv.Start(cfg.ServerAddr); err != nil {
		logger.Error("Server failed", logger.F("error", err.Error()))
	}
}
