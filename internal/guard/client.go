package guard

import (
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// credentialsFrom сессия из хранилища; ошибка чтения означает отсутствие входа.
func credentialsFrom(repo session.Repository, r *http.Request, log *slog.Logger) Credentials {
	s, err := repo.Load(r)
	if err != nil {
		log.Warn("failed to load session", sl.Err(err))
		return Credentials{}
	}
	return Credentials{LoggedIn: s.LoggedIn, Role: s.Role}
}

// clearStale удаляет cookie сессии, которой больше нет в хранилище.
// Иначе edge guard по оставшемуся флагу isLoggedIn вернёт клиента со страницы входа обратно.
func clearStale(repo session.Repository, w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	if err := repo.Clear(w, r); err != nil {
		log.Warn("failed to clear session", sl.Err(err))
	}
}

// RequireLogin обёртка страниц пользователя: без входа — на страницу входа.
func RequireLogin(p Policy, repo session.Repository, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := sl.ForRequest(log, "guard.RequireLogin", r)
			if !credentialsFrom(repo, r, l).LoggedIn {
				clearStale(repo, w, r, l)
				l.Debug("redirect", slog.String("to", p.LoginPath))
				http.Redirect(w, r, p.LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin обёртка страниц администратора. Решение принимает та же политика,
// что и edge guard, поэтому без входа это страница входа, без роли admin — стартовая страница пользователя.
func RequireAdmin(p Policy, repo session.Repository, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := sl.ForRequest(log, "guard.RequireAdmin", r)
			creds := credentialsFrom(repo, r, l)
			path := r.URL.Path
			if !p.IsAdminPath(path) {
				path = p.AdminPrefix
			}
			if d := p.Evaluate(path, creds); !d.Allow {
				if !creds.LoggedIn {
					clearStale(repo, w, r, l)
				}
				l.Debug("redirect", slog.String("to", d.Redirect))
				http.Redirect(w, r, d.Redirect, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
