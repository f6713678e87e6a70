package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/config"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/realtime"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/auth"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	hub     *realtime.Hub
	pushers *realtime.WorkerPool

	// stopped is closed once the HTTP server no longer runs handlers.
	stopped chan struct{}
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		stopped: make(chan struct{}),
		errCh:   make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	a.cfg = cfg
	a.hub = realtime.NewHub()
	a.pushers = realtime.NewWorkerPool(cfg.PushWorkers, cfg.PushQueue)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, service.Deps{
		TxManager: txManager,
		JWT:       jwtService,
		Hash:      auth.NewHashService(0),
		TokenTTL:  cfg.TokenTTL,
		Presence:  a.hub,
		Scheduler: a.pushers,
	})
	a.api = handlers.New(a.srv, jwtService, a.hub, cfg.ClientOrigin)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.releaseOnShutdown(pool.Close)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		defer close(a.stopped)
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// releaseOnShutdown waits for the HTTP server to stop, drains queued live
// pushes and only then closes the database.
func (a *Application) releaseOnShutdown(closeDB func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.stopped

		a.pushers.Close()
		zap.L().Info("live push workers stopped", zap.Int("online_users", a.hub.Online()))
		closeDB()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
