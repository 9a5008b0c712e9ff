package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradelens/internal/adapters/apollo"
	httpadapter "tradelens/internal/adapters/http"
	"tradelens/internal/adapters/memory"
	pg "tradelens/internal/adapters/postgres"
	"tradelens/internal/config"
	"tradelens/internal/logging"
	"tradelens/internal/metrics"
	"tradelens/internal/ports"
	crmsvc "tradelens/internal/services/crm"
	enrichsvc "tradelens/internal/services/enrichment"
	ingestsvc "tradelens/internal/services/ingest"
	intelsvc "tradelens/internal/services/intelligence"
	searchsvc "tradelens/internal/services/search"
	"tradelens/internal/workers/refreshrunner"
)

// store is everything the services need from a backend.
type store interface {
	ports.IngestRepository
	ports.SearchRepository
	ports.IntelligenceRepository
	ports.EnrichmentCache
	ports.RefreshQueue
	ports.CRMRepository
	ports.Pinger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tradelens",
		Short:         "Cross-modal trade match aggregator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the cache refresh workers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	m := metrics.New()

	repo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []enrichsvc.Option{enrichsvc.WithTTL(cfg.CacheTTL)}
	if cfg.RefreshWorkers > 0 {
		opts = append(opts, enrichsvc.WithRefreshQueue(repo))
	}
	enrichment := enrichsvc.New(repo, newProvider(cfg, log), m, log, opts...)

	srv := httpadapter.New(httpadapter.Services{
		Ingest:       ingestsvc.New(repo, m, log),
		Search:       searchsvc.New(repo),
		Intelligence: intelsvc.New(repo),
		Enrichment:   enrichment,
		CRM:          crmsvc.New(repo, log),
	}, repo, m, log)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	var wg sync.WaitGroup
	if cfg.RefreshWorkers > 0 {
		jobTimeout := time.Duration(cfg.Apollo.MaxRetries+1) * cfg.Apollo.Timeout
		runner := refreshrunner.New(repo, enrichment, m, log, cfg.RefreshWorkers, cfg.RefreshPollInterval, jobTimeout)
		wg.Add(1)
		go func() {
			defer wg.Done()
			runner.Run(workerCtx)
		}()
		log.Info("refresh workers started", zap.Int("workers", cfg.RefreshWorkers))
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	log.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("store", cfg.Store), zap.String("env", cfg.Env))

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			cancelWorkers()
			wg.Wait()
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	cancelWorkers()
	wg.Wait()
	return nil
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (store, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store; data is lost on exit")
		return memory.New(), func() {}, nil
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("db connect: %w", err)
	}
	return db, db.Close, nil
}

func newProvider(cfg config.Config, log *zap.Logger) ports.ContactProvider {
	if cfg.Apollo.APIKey == "" {
		log.Warn("apollo api key not set; enrichment returns no contacts")
		return memory.NewProvider()
	}
	return apollo.New(apollo.Config{
		BaseURL:       cfg.Apollo.BaseURL,
		APIKey:        cfg.Apollo.APIKey,
		Timeout:       cfg.Apollo.Timeout,
		MaxAttempts:   cfg.Apollo.MaxRetries,
		RetryBase:     cfg.Apollo.RetryBase,
		CostPerRecord: decimal.NewFromFloat(cfg.Apollo.CostPerRecord),
		PerPage:       cfg.Apollo.PerPage,
	})
}
