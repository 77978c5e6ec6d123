package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/groupledger/internal/config"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/ledger"
	"github.com/mmynk/groupledger/internal/metrics"
	"github.com/mmynk/groupledger/internal/middleware"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/seed"
	"github.com/mmynk/groupledger/internal/service"
	"github.com/mmynk/groupledger/internal/storage"
	"github.com/mmynk/groupledger/internal/storage/memory"
	"github.com/mmynk/groupledger/internal/storage/sqlite"
	"github.com/mmynk/groupledger/pkg/logging"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	// Amounts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	groups, err := loadGroups(cfg.SeedFile)
	if err != nil {
		return err
	}
	groupStore, err := memory.NewGroupStore(groups)
	if err != nil {
		return fmt.Errorf("init group store: %w", err)
	}
	slog.Info("Groups loaded", "count", len(groups), "seed_file", cfg.SeedFile)

	entries, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer entries.Close()

	publisher, err := openPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	m := metrics.New()
	core := ledger.NewService(groupStore, entries,
		ledger.WithPublisher(publisher),
		ledger.WithRecorder(m),
	)

	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(m),
	)

	mux := http.NewServeMux()
	mux.Handle(service.NewGroupServiceHandler(service.NewGroupService(core), interceptors))
	mux.Handle(service.NewLedgerServiceHandler(service.NewLedgerService(core), interceptors))
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := middleware.RequestID(middleware.Logging(middleware.CORS(cfg.CORSOrigin)(mux)))

	// h2c serves HTTP/2 without TLS for Connect and gRPC clients
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting",
			"address", srv.Addr,
			"url", fmt.Sprintf("http://localhost%s", srv.Addr),
			"backend", cfg.LedgerBackend,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func loadGroups(path string) ([]models.Group, error) {
	if path == "" {
		return seed.Default(), nil
	}
	groups, err := seed.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load seed file: %w", err)
	}
	return groups, nil
}

func openLedger(cfg *config.Config) (storage.LedgerStore, error) {
	switch cfg.LedgerBackend {
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("init sqlite ledger: %w", err)
		}
		slog.Info("Storage initialized", "backend", cfg.LedgerBackend, "database", cfg.DBPath)
		return store, nil
	default:
		slog.Info("Storage initialized", "backend", cfg.LedgerBackend)
		return memory.NewLedgerStore(), nil
	}
}

func openPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		slog.Info("AMQP disabled, entry events will not be published")
		return events.NopPublisher{}, nil
	}
	pub, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
	if err != nil {
		return nil, fmt.Errorf("init amqp publisher: %w", err)
	}
	slog.Info("AMQP publisher connected", "exchange", cfg.AMQPExchange, "routing_key", cfg.AMQPRoutingKey)
	return pub, nil
}
