// Package server initializes and wires the userbase subsystem: it loads
// configuration, opens the database and runs migrations, selects the
// password scheme and icon backend, and exposes the services an embedding
// transport mounts on top.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ymstdo/userbase/internal/cryptox"
	"github.com/ymstdo/userbase/internal/logging"
	"github.com/ymstdo/userbase/internal/metrics"
	"github.com/ymstdo/userbase/internal/server/blob"
	"github.com/ymstdo/userbase/internal/server/config"
	"github.com/ymstdo/userbase/internal/server/repositories/repomanager"
	"github.com/ymstdo/userbase/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	Accounts *services.AccountService
	Search   *services.SearchService
	Profiles *services.ProfileService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher, err := cryptox.NewHasher(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	blobs, err := blob.New(c)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	metrics.Init()

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		Accounts: services.NewAccountService(db, rm, hasher, logger),
		Search:   services.NewSearchService(db, rm),
		Profiles: services.NewProfileService(db, rm, blobs, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping metrics server...")
		_ = srv.Shutdown(context.Background())
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Wait()
}

// Close releases the database pool.
func (app *App) Close() error {
	return app.db.Close()
}
