// Package server wires the userdir server: storage, change fan-out, the
// gRPC endpoint, the metrics endpoint and the orphan janitor.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/broker"
	"github.com/dmitrijs2005/userdir/internal/server/config"
	"github.com/dmitrijs2005/userdir/internal/server/metrics"
	"github.com/dmitrijs2005/userdir/internal/server/orphans"
	"github.com/dmitrijs2005/userdir/internal/server/ratelimit"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userdir/internal/server/services"

	gs "github.com/dmitrijs2005/userdir/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	repos      repomanager.RepositoryManager
	rdb        *redis.Client
	relay      *broker.RedisRelay
	publisher  broker.Publisher
	notifier   broker.Notifier
	metrics    *metrics.Registry
	identities *services.IdentityService
	directory  *services.DirectoryService
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := repomanager.OpenDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db, repos: repos, metrics: metrics.NewRegistry()}

	hub := broker.NewHub()
	app.publisher, app.notifier = hub, hub
	if c.RedisDSN != "" {
		rdb, err := broker.NewRedisClient(ctx, c.RedisDSN)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		app.rdb = rdb
		app.relay = broker.NewRedisRelay(rdb, hub, logger)
		app.publisher, app.notifier = app.relay, app.relay
	}

	app.identities = services.NewIdentityService(db, repos, c)
	app.directory = services.NewDirectoryService(db, repos, app.publisher, logger)

	return app, nil
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
}

func (app *App) startGRPCServer(ctx context.Context) error {
	var limiter *ratelimit.LimiterStore
	if app.config.AuthRateLimit > 0 {
		limiter = ratelimit.NewLimiterStore(rate.Limit(app.config.AuthRateLimit), app.config.AuthRateBurst, 10*time.Minute)
	}

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.identities, app.directory, app.notifier, app.config.SecretKey,
		gs.WithMetrics(app.metrics), gs.WithRateLimiter(limiter))
	return s.Run(ctx)
}

func (app *App) startMetricsServer(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.metrics.Handler())
	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) startJanitor(ctx context.Context) error {
	uploader, err := orphans.NewS3Uploader(ctx, orphans.S3Options{
		Region:       app.config.S3Region,
		AccessKey:    app.config.S3RootUser,
		SecretKey:    app.config.S3RootPassword,
		Bucket:       app.config.S3Bucket,
		BaseEndpoint: app.config.S3BaseEndpoint,
	})
	if err != nil {
		app.logger.Error(ctx, "orphan janitor not started", "error", err)
		return nil
	}

	j := orphans.NewJanitor(app.repos.Profiles(app.db), uploader, app.metrics, app.config.OrphanScanInterval, app.logger)
	return j.Run(ctx)
}

// Run serves until a termination signal arrives or a component fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := app.initSignalHandler(ctx)
	defer stop()
	defer app.close()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.startGRPCServer(ctx) })
	if app.config.MetricsAddr != "" {
		g.Go(func() error { return app.startMetricsServer(ctx) })
	}
	g.Go(func() error { return app.startJanitor(ctx) })
	if app.relay != nil {
		g.Go(func() error { return app.relay.Run(ctx) })
	}

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}

func (app *App) close() {
	if app.rdb != nil {
		_ = app.rdb.Close()
	}
	_ = app.db.Close()
}
