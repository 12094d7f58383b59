package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"compound-interest/config"
	httpLayer "compound-interest/http"
	"compound-interest/logger"
	"compound-interest/repository"
	"compound-interest/service"
)

func newServeCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expone la calculadora como API HTTP",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

// newCache picks the key-value store backing the saved form state.
func newCache(ctx context.Context, cfg config.StorageConfig) (repository.CacheRepository, func(), error) {
	if cfg.Backend != "redis" {
		return repository.NewMemoryCache(), func() {}, nil
	}

	cache := repository.NewRedisCache(repository.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		cache.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	return cache, func() { cache.Close() }, nil
}

func serve(cfg *config.Config) error {
	log := logger.Setup(cfg.Server)

	cache, closeCache, err := newCache(context.Background(), cfg.Storage)
	if err != nil {
		return err
	}
	defer closeCache()

	interestService := service.NewInterestService(
		repository.NewCalculationRepositoryMemory(),
		repository.NewFormStateStore(cache, cfg.Storage.StateKey),
	)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(
		httpLayer.NewInterestHandler(interestService, cfg.Display.CurrencySymbol),
		httpLayer.NewStateHandler(interestService),
		rateLimiter,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr, "storage", cfg.Storage.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("error starting server", "error", err)
		return err
	case <-quit:
		log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("error during server shutdown", "error", err)
		return err
	}

	log.Info("server exited")
	return nil
}
