package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/memberhubhq/memberhub-backend/api/routes"
	"github.com/memberhubhq/memberhub-backend/internal/auth"
	"github.com/memberhubhq/memberhub-backend/internal/contents"
	"github.com/memberhubhq/memberhub-backend/internal/events"
	"github.com/memberhubhq/memberhub-backend/internal/members"
	"github.com/memberhubhq/memberhub-backend/internal/reports"
	"github.com/memberhubhq/memberhub-backend/internal/teams"
	"github.com/memberhubhq/memberhub-backend/pkg/auth/session"
	"github.com/memberhubhq/memberhub-backend/pkg/config"
	"github.com/memberhubhq/memberhub-backend/pkg/db"
	"github.com/memberhubhq/memberhub-backend/pkg/logger"
	"github.com/memberhubhq/memberhub-backend/pkg/metrics"
	"github.com/memberhubhq/memberhub-backend/pkg/migrate"
	"github.com/memberhubhq/memberhub-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	memberRepo := members.NewRepository(dbClient.DB())

	authService, err := auth.NewService(memberRepo, sessionManager, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}
	memberService, err := members.NewService(memberRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create member service", err)
		os.Exit(1)
	}
	teamService, err := teams.NewService(teams.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create team service", err)
		os.Exit(1)
	}
	eventService, err := events.NewService(events.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create event service", err)
		os.Exit(1)
	}
	contentService, err := contents.NewService(contents.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create content service", err)
		os.Exit(1)
	}
	reportService, err := reports.NewService(reports.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	router := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		DBPinger:    dbClient,
		RedisPinger: redisClient,
		Sessions:    sessionManager,
		HTTPMetrics: httpMetrics,
		MetricsHTTP: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Auth:        authService,
		Members:     memberService,
		Teams:       teamService,
		Events:      eventService,
		Contents:    contentService,
		Reports:     reportService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		graceCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(graceCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}

	logg.Info(ctx, "api server stopped")
}
