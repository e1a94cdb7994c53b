// Package blogportal собирает HTTP-приложение портала: маршруты, middleware и зависимости.
package blogportal

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/blog-portal/internal/config"
	"github.com/magabrotheeeer/blog-portal/internal/discovery"
	"github.com/magabrotheeeer/blog-portal/internal/guard"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/account"
	adminarticles "github.com/magabrotheeeer/blog-portal/internal/http/handlers/admin/articles"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/admin/categories"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/articles/detail"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/articles/list"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/health"
	"github.com/magabrotheeeer/blog-portal/internal/http/handlers/home"
	"github.com/magabrotheeeer/blog-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/blog-portal/internal/metrics"
	articleservice "github.com/magabrotheeeer/blog-portal/internal/services/articles"
	authservice "github.com/magabrotheeeer/blog-portal/internal/services/auth"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	cfg *config.Config,
	authService *authservice.Service,
	articleService *articleservice.Service,
	sessions session.Repository,
	views *discovery.Registry,
) {
	policy := guard.NewPolicy(cfg.Guard)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		metrics.HTTPMetrics,
	)

	// Служебные маршруты вне guard
	r.Get("/healthz", health.New(logger).ServeHTTP)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(guard.Edge(policy, logger))
		r.Use(middlewarectx.SessionMiddleware(sessions, logger))

		r.Get("/", home.New(logger, policy, cfg.LoginPath).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst))
			r.Post(cfg.LoginPath, login.New(logger, authService, sessions, policy).ServeHTTP)
			r.Post("/register", register.New(logger, authService, cfg.LoginPath).ServeHTTP)
		})

		logoutHandler := logout.New(logger, sessions, views, cfg.LoginPath)
		r.Get("/logout", logoutHandler.ServeHTTP)
		r.Post("/logout", logoutHandler.ServeHTTP)

		// Страницы пользователя
		r.Route("/user", func(r chi.Router) {
			r.Use(guard.RequireLogin(policy, sessions, logger))

			articleList := list.New(logger, views, articleService)
			r.Get("/articles", articleList.Mount)
			r.Get("/articles/view", articleList.View)
			r.Put("/articles/view/search", articleList.Search)
			r.Put("/articles/view/category", articleList.Category)
			r.Put("/articles/view/page", articleList.Page)
			r.Get("/articles/{id}", detail.New(logger, articleService).ServeHTTP)
			r.Get("/account", account.New(logger).ServeHTTP)
		})

		// Страницы администратора
		r.Route(cfg.AdminPrefix, func(r chi.Router) {
			r.Use(guard.RequireAdmin(policy, sessions, logger))
			r.Get("/articles", adminarticles.New(logger, articleService).ServeHTTP)
			r.Get("/categories", categories.New(logger, articleService).ServeHTTP)
		})
	})
}
