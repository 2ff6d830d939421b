package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/rsvp-service/internal/api/http"
	"github.com/spec-kit/rsvp-service/internal/api/http/handlers"
	"github.com/spec-kit/rsvp-service/internal/auth"
	"github.com/spec-kit/rsvp-service/internal/config"
	"github.com/spec-kit/rsvp-service/internal/events"
	"github.com/spec-kit/rsvp-service/internal/observability"
	"github.com/spec-kit/rsvp-service/internal/persistence"
	"github.com/spec-kit/rsvp-service/internal/repository"
	"github.com/spec-kit/rsvp-service/internal/rsvp"
	"github.com/spec-kit/rsvp-service/internal/service"
	"github.com/spec-kit/rsvp-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	guestRepo := repository.NewGuestRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	settingsRepo := repository.NewEventSettingsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	sessions := rsvp.NewSessionStore(redis.Client, cfg.RSVP.SessionTTL())
	gate := rsvp.NewUnlockGate(rsvp.NewRedisFlagStore(redis.Client))

	rsvpService := service.NewRSVPService(service.RSVPDependencies{
		Sessions:   sessions,
		GuestRepo:  guestRepo,
		Gate:       gate,
		Dispatcher: dispatcher,
	})
	guestService := service.NewGuestService(guestRepo, dispatcher)
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AdminRepo:         adminRepo,
		PasswordResetRepo: resetRepo,
	})
	settingsService := service.NewSettingsService(settingsRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)
	defer notificationService.Stop()

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), adminRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		RSVP:           handlers.NewRSVPHandler(rsvpService),
		Guests:         handlers.NewGuestsHandler(guestService),
		Admin:          handlers.NewAdminHandler(authService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		AuthMiddleware: authMiddleware,
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
