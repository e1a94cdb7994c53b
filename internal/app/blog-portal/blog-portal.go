package blogportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/blog-portal/internal/cache"
	"github.com/magabrotheeeer/blog-portal/internal/config"
	"github.com/magabrotheeeer/blog-portal/internal/discovery"
	"github.com/magabrotheeeer/blog-portal/internal/gateway"
	"github.com/magabrotheeeer/blog-portal/internal/metrics"
	articleservice "github.com/magabrotheeeer/blog-portal/internal/services/articles"
	authservice "github.com/magabrotheeeer/blog-portal/internal/services/auth"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

const (
	storeCookie = "cookie"
	storeRedis  = "redis"
)

type App struct {
	server  *http.Server
	logger  *slog.Logger
	views   *discovery.Registry
	viewTTL time.Duration
	cache   *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.blogportal.New"

	metrics.Init()

	cookieOpts := session.CookieOptions{
		TTL:    cfg.SessionTTL,
		Secure: cfg.SecureCookies,
	}

	var (
		sessions   session.Repository
		cacheRedis *cache.Cache
	)
	switch cfg.Store {
	case storeCookie:
		sessions = session.NewCookieStore(cookieOpts)
	case storeRedis:
		var err error
		cacheRedis, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sessions = session.NewRedisStore(cacheRedis, cookieOpts)
	default:
		return nil, fmt.Errorf("%s: unknown session store %q", op, cfg.Store)
	}
	logger.Info("session store selected", slog.String("store", cfg.Store))

	client := gateway.NewClient(cfg.APIBaseURL, cfg.GatewayTimeout)
	authService := authservice.NewService(client)
	articleService := articleservice.NewService(client, cfg.RelatedLimit)

	views := discovery.NewRegistry(
		func() *discovery.Engine {
			return discovery.NewEngine(cfg.PageSize, cfg.Debounce)
		},
		discovery.WithIdleTTL(cfg.ViewTTL),
		discovery.WithMaxViews(cfg.MaxViews),
	)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, articleService, sessions, views)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		views:   views,
		viewTTL: cfg.ViewTTL,
		cache:   cacheRedis,
	}, nil
}

// Handler корневой обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run(ctx context.Context) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go a.views.Run(sweepCtx, a.viewTTL/2, func(n int) {
		a.logger.Debug("closed idle article views", slog.Int("count", n))
	})

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close закрывает открытые списки статей (отложенные пересчёты отменяются) и соединение с redis.
func (a *App) close() {
	a.logger.Info("closing article views", slog.Int("mounted", a.views.Len()))
	a.views.CloseAll()
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", slog.Any("err", err))
		}
	}
}
