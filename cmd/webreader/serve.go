package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/mwhite7112/webreader/internal/api"
	"github.com/mwhite7112/webreader/internal/cache"
	"github.com/mwhite7112/webreader/internal/clients"
	"github.com/mwhite7112/webreader/internal/config"
	"github.com/mwhite7112/webreader/internal/db"
	"github.com/mwhite7112/webreader/internal/events"
	"github.com/mwhite7112/webreader/internal/logging"
	"github.com/mwhite7112/webreader/internal/service"
	"github.com/mwhite7112/webreader/internal/vocabulary"
)

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log, os.Stderr)

	if err := cfg.RequireAPIKey(); err != nil {
		logger.Error("startup failed", "error", err)
		return err
	}

	analyzer := clients.NewOpenAIAnalyzer(clients.OpenAIConfig{
		APIKey:      cfg.Lookup.APIKey,
		BaseURL:     cfg.Lookup.BaseURL,
		Model:       cfg.Lookup.Model,
		Temperature: cfg.Lookup.Temperature,
		Timeout:     cfg.Lookup.Timeout,
	}, clients.BreakerSettings{
		MaxRequests:         cfg.Breaker.MaxRequests,
		Interval:            cfg.Breaker.Interval,
		Timeout:             cfg.Breaker.Timeout,
		ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
	})

	var resultCache service.ResultCache
	if cfg.Cache.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rc.Close()
		resultCache = rc
		logger.Info("lookup cache enabled", "ttl", cfg.Cache.TTL)
	}

	var store service.VocabularyStore = service.NewMemoryStore(vocabulary.NewBank())
	if cfg.Database.URL != "" {
		sqlDB, err := openDatabase(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := db.Migrate(sqlDB); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		store = service.NewPostgresStore(db.New(sqlDB))
		logger.Info("vocabulary stored in postgres")
	}

	var publisher service.EventPublisher
	if cfg.Events.RabbitMQURL != "" {
		p, err := events.NewVocabularyUpdatedPublisher(cfg.Events.RabbitMQURL)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer p.Close()
		publisher = p
	}

	handler := api.NewRouter(
		service.NewLookupService(analyzer, resultCache),
		service.NewVocabularyService(store, publisher),
		cfg.CORS,
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("relay listening", "addr", srv.Addr, "model", cfg.Lookup.Model)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openDatabase(ctx context.Context, url string) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return sqlDB, nil
}
