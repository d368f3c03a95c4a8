package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/solutions-kit/os-tracker/internal/api/http"
	"github.com/solutions-kit/os-tracker/internal/api/http/handlers"
	"github.com/solutions-kit/os-tracker/internal/auth"
	"github.com/solutions-kit/os-tracker/internal/config"
	"github.com/solutions-kit/os-tracker/internal/events"
	"github.com/solutions-kit/os-tracker/internal/observability"
	"github.com/solutions-kit/os-tracker/internal/persistence"
	"github.com/solutions-kit/os-tracker/internal/service"
	"github.com/solutions-kit/os-tracker/internal/store"
	"github.com/solutions-kit/os-tracker/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		ticketStore store.Store
		pg          *persistence.Postgres
		rd          *persistence.Redis
	)
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		ticketStore = store.NewPostgresStore(pg.PoolHandle(), logger)
	case config.BackendRedis:
		rd, err = persistence.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rd.Close()
		ticketStore = store.NewRedisStore(rd.Client, logger)
	case config.BackendMemory:
		ticketStore = store.NewMemoryStore()
	default:
		ticketStore = store.NewFileStore(cfg.Store.DataDir, logger)
	}
	logger.Info("ticket store ready", zap.String("backend", cfg.Store.Backend))

	dispatcher := events.NewInMemoryDispatcher()
	ticketService := service.NewTicketService(service.Dependencies{
		Store:      ticketStore,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.RoleTokenTTLMinutes)
	sessionMiddleware := auth.NewSessionMiddleware(tokens)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Store.Backend, pg, rd),
		Session:           handlers.NewSessionHandler(tokens),
		Tickets:           handlers.NewTicketsHandler(ticketService),
		SessionMiddleware: sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
