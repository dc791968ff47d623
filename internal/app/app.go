package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/reinstack44/CollegeEventSystem/internal/audit"
	"github.com/reinstack44/CollegeEventSystem/internal/config"
	"github.com/reinstack44/CollegeEventSystem/internal/handler"
	"github.com/reinstack44/CollegeEventSystem/internal/middleware"
	"github.com/reinstack44/CollegeEventSystem/internal/notification"
	"github.com/reinstack44/CollegeEventSystem/internal/repository"
	"github.com/reinstack44/CollegeEventSystem/internal/router"
	"github.com/reinstack44/CollegeEventSystem/internal/scheduler"
	"github.com/reinstack44/CollegeEventSystem/internal/service"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        zerolog.Logger
	db         *dbpg.DB
	rdb        *redis.Client
	audit      *audit.Publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	zlog.Init()
	app.log = zlog.Logger.
		Level(cfg.Logger.LogLevel()).
		With().
		Str("service", "eventsystem").
		Logger()

	if err := app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err := app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initRedis()

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.Info().
		Str("host", a.cfg.Postgres.Host).
		Int("port", a.cfg.Postgres.Port).
		Str("database", a.cfg.Postgres.Database).
		Msg("database connected")

	return nil
}

// initRedis is best-effort: without redis the rate limiter disables
// itself and the engine works unchanged.
func (a *App) initRedis() {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn().Msg("redis addr is empty, rate limiting disabled")
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		a.log.Warn().
			Str("addr", a.cfg.Redis.Addr).
			Err(err).
			Msg("redis unreachable, rate limiting disabled")
		return
	}

	a.rdb = rdb
	a.log.Info().Str("addr", a.cfg.Redis.Addr).Msg("redis connected")
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	reservationRepo := repository.NewReservationRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	pub, err := audit.NewPublisher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Queue, a.log)
	if err != nil {
		return fmt.Errorf("init audit publisher: %w", err)
	}
	a.audit = pub

	eventService := service.NewEventService(eventRepo, reservationRepo, n, a.log)
	reservationService := service.NewReservationService(reservationRepo, eventRepo, n, a.log)
	checkInService := service.NewCheckInService(reservationRepo, eventRepo, pub, n, a.cfg.CheckIn, a.log)
	reportService := service.NewReportService(reservationRepo, eventRepo)

	a.scheduler = scheduler.New(
		eventService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, reservationService, checkInService, reportService)
	r := router.InitRouter(
		h,
		router.Options{
			RateLimit:    middleware.RateLimit(a.cfg.RateLimit, a.rdb, a.log),
			RequireAdmin: middleware.RequireAdmin(a.cfg.Auth.JWTSecret),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Identity(a.cfg.Auth.JWTSecret),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", a.httpServer.Addr).Msg("HTTP server starting")
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.Info().Msg("HTTP server stopped")

	if a.audit != nil {
		if err := a.audit.Close(); err != nil {
			a.log.Error().Err(err).Msg("close audit publisher")
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Error().Err(err).Msg("close redis")
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.Info().Msg("database connection closed")

	a.log.Info().Msg("app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info().Msg("migrations applied successfully")
	return nil
}
