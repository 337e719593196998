package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"ongkir/internal/config"
	"ongkir/internal/courier"
	"ongkir/internal/db"
	"ongkir/internal/destination"
	"ongkir/internal/quote"
	"ongkir/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// Destinations come from Postgres when configured, otherwise the
	// built-in table. Either way they are immutable after this point.
	destinations := destination.Defaults()
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to connect db", zap.Error(err))
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			logger.Fatal("database ping failed", zap.Error(err))
		}
		loaded, err := destination.LoadFromDB(ctx, pool)
		if err != nil {
			logger.Fatal("failed to load destinations", zap.Error(err))
		}
		if len(loaded) > 0 {
			destinations = loaded
		}
		logger.Info("destinations loaded from db", zap.Int("count", len(loaded)))
	}

	registry := destination.NewRegistry(destinations)
	engine := quote.NewEngine(registry, courier.DefaultPolicies(), logger)
	handler := server.New(engine, registry, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("api listening",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.Int("destinations", len(destinations)),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
