package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tattooparlor/internal/backend"
	"tattooparlor/internal/config"
	"tattooparlor/internal/database"
	"tattooparlor/internal/modules/live"
	"tattooparlor/internal/observability/metrics"
	jwtsvc "tattooparlor/internal/pkg/jwt"
	"tattooparlor/internal/pkg/logging"
	"tattooparlor/internal/pkg/validator"
	"tattooparlor/internal/server"
	"tattooparlor/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel).With("service", "tattooparlor-web")
	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := validator.RegisterGin(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	backendMetrics := metrics.NewBackendMetrics(reg)
	liveMetrics := metrics.NewLiveMetrics(reg)

	store, closeStore, err := openSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	accessor := session.NewAccessor(store, jwtsvc.New(cfg.SessionSecret, cfg.SessionTTL), cfg.SessionTTL)
	client := backend.NewClient(cfg.BackendBaseURL, logger,
		backend.WithTimeout(cfg.BackendTimeout),
		backend.WithMetrics(backendMetrics),
	)

	hub := live.NewHub(logger, liveMetrics)
	defer hub.Close()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := server.NewRouter(server.Deps{
		Config:      cfg,
		Logger:      logger,
		Sessions:    accessor,
		Backend:     client,
		Hub:         hub,
		Registry:    reg,
		LiveMetrics: liveMetrics,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(r, "tattooparlor-web"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go sweepSessions(ctx, accessor, cfg.SessionTTL, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", srv.Addr, "backend", cfg.BackendBaseURL, "session_store", cfg.SessionStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	logger.Info("http server stopped")
	return nil
}

func openSessionStore(ctx context.Context, cfg *config.Config, logger *logging.Logger) (session.Store, func(), error) {
	switch cfg.SessionStore {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return session.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	default:
		db, err := database.Connect(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("database: %w", err)
		}
		store := session.NewGormStore(db)
		if err := store.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("migrate sessions: %w", err)
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return store, closeFn, nil
	}
}

// sweepSessions removes expired sessions in the background. Redis expires
// keys itself, so the sweep is a no-op there.
func sweepSessions(ctx context.Context, accessor *session.Accessor, ttl time.Duration, logger *logging.Logger) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := accessor.Sweep(ctx)
			if err != nil {
				logger.Warn("session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("expired sessions removed", "count", n)
			}
		}
	}
}
