package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/config"
	"github.com/gitmarket/gitmarket/internal/github"
	"github.com/gitmarket/gitmarket/internal/handlers"
	"github.com/gitmarket/gitmarket/internal/pg"
	"github.com/gitmarket/gitmarket/internal/repo"
	"github.com/gitmarket/gitmarket/internal/service"
	"github.com/gitmarket/gitmarket/pkg/auth"
	"github.com/gitmarket/gitmarket/pkg/clients"
	"github.com/gitmarket/gitmarket/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	pool *pgxpool.Pool
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo, newGitHubClient(ctx, cfg))
	a.api = handlers.New(a.srv, newTokenValidator(cfg), os.Stdout)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

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

// newGitHubClient authenticates against GitHub when a token is configured,
// which lifts the anonymous rate limit.
func newGitHubClient(ctx context.Context, cfg *config.Config) *github.Client {
	if cfg.GitHubToken != "" {
		return github.New(cfg, clients.NewTokenHTTPClient(ctx, cfg.ProviderTimeout, cfg.GitHubToken))
	}
	return github.New(cfg, clients.NewHTTPClient(cfg.ProviderTimeout))
}

// newTokenValidator verifies tokens locally when a signing secret is set and
// asks the auth provider otherwise.
func newTokenValidator(cfg *config.Config) auth.TokenValidator {
	if cfg.AuthJWTSecret != "" {
		zap.L().Info("verifying access tokens locally")
		return auth.NewJWTValidator(cfg.AuthJWTSecret)
	}
	return auth.NewRemoteValidator(cfg.AuthURL, cfg.AuthAPIKey, clients.NewHTTPClient(cfg.ProviderTimeout))
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

		sCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.pool.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
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
