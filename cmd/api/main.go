package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/wichananm65/user-registry/internal/infrastructure/config"
	"github.com/wichananm65/user-registry/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/user-registry/internal/infrastructure/logger"
	"github.com/wichananm65/user-registry/internal/infrastructure/metrics"
	httpHandler "github.com/wichananm65/user-registry/internal/interface/http/handler"
	"github.com/wichananm65/user-registry/internal/interface/http/middleware"
	"github.com/wichananm65/user-registry/internal/interface/http/router"
	"github.com/wichananm65/user-registry/internal/mapper"
	"github.com/wichananm65/user-registry/internal/usecase"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	appLogger := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	deps := router.Deps{
		Logger:           appLogger.Logger,
		CORSAllowOrigins: cfg.CORS.AllowOrigins,
	}

	var recorder metrics.Recorder = metrics.Noop{}
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewCollector(registry)
		deps.Gatherer = registry
	}
	deps.Metrics = recorder

	if cfg.RateLimit.RPS > 0 {
		limiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		defer limiter.Stop()
		deps.RateLimiter = limiter
	}

	userRepo := inmemory.NewUserRepository()
	userMapper := mapper.NewUserMapper()
	userUsecase := usecase.NewUserService(userRepo, cfg.User.MinAge,
		usecase.WithLogger(appLogger.Logger),
		usecase.WithMetrics(recorder),
	)
	deps.UserHandler = httpHandler.NewUserHandler(userUsecase, userMapper)

	app := router.New(deps)

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("starting server", "addr", cfg.Addr, "user_min_age", cfg.User.MinAge)
		serveErr <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			appLogger.Fatal("server stopped", "error", err)
		}
	case <-ctx.Done():
		appLogger.Info("shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			appLogger.Error("graceful shutdown failed", "error", err)
		}
	}
}
