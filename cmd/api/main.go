package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/brunohpsv/medagendar/internal/api/router"
	"github.com/brunohpsv/medagendar/internal/booking"
	"github.com/brunohpsv/medagendar/internal/chat"
	appconfig "github.com/brunohpsv/medagendar/internal/config"
	"github.com/brunohpsv/medagendar/internal/http/handlers"
	"github.com/brunohpsv/medagendar/internal/marketplace"
	"github.com/brunohpsv/medagendar/internal/observability/metrics"
	"github.com/brunohpsv/medagendar/internal/store"
	"github.com/brunohpsv/medagendar/internal/triage"
	"github.com/brunohpsv/medagendar/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting medagendar API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Persistence: Redis when configured, in-memory otherwise.
	var kv store.KV
	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		kv = store.NewRedisKV(client)
		logger.Info("using redis persistence", "addr", cfg.RedisAddr)
	} else {
		kv = store.NewMemoryKV()
		logger.Warn("REDIS_ADDR not set, state will not survive restarts")
	}

	st := store.New(kv, logger)
	if err := st.Load(ctx); err != nil {
		logger.Error("failed to load state", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBookingMetrics(registry)

	svcOpts := []marketplace.Option{marketplace.WithMetrics(bookingMetrics)}

	// Optional Postgres ledger for appointment audit history.
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		ledger := booking.NewLedger(pool)
		if err := ledger.Init(ctx); err != nil {
			logger.Error("failed to initialize appointment ledger", "error", err)
			os.Exit(1)
		}
		svcOpts = append(svcOpts, marketplace.WithLedger(ledger))
		logger.Info("appointment ledger enabled")
	}

	svc := marketplace.NewService(st, cfg.BookingWindowDays, logger, svcOpts...)
	if cfg.SeedDemoData {
		if err := svc.EnsureSeeded(ctx); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}
	if err := svc.RefreshSchedules(ctx); err != nil {
		logger.Error("failed to refresh schedules", "error", err)
		os.Exit(1)
	}

	// Triage falls back to canned guidance when Gemini is not configured
	// or a call fails.
	var gemini triage.Client
	if cfg.GeminiAPIKey != "" {
		client, err := triage.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		gemini = client
		logger.Info("gemini triage enabled", "model", cfg.GeminiModelID)
	} else {
		logger.Warn("GEMINI_API_KEY not set, triage will use fallback responses")
	}
	triageClient := triage.WithFallback(gemini, logger, bookingMetrics)

	routerCfg := &router.Config{
		Logger:              logger,
		DoctorsHandler:      handlers.NewDoctorsHandler(svc, logger),
		AppointmentsHandler: handlers.NewAppointmentsHandler(svc, logger),
		TriageHandler:       handlers.NewTriageHandler(triageClient, logger),
		AdminHandler:        handlers.NewAdminHandler(svc, logger),
		ChatHandler:         chat.NewHandler(triageClient, logger),
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
