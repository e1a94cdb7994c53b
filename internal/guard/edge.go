package guard

import (
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/models"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// EdgeCredentials читает флаг входа и роль напрямую из cookie запроса.
// Всё, кроме isLoggedIn == "true", считается отсутствием входа.
func EdgeCredentials(r *http.Request) Credentials {
	c, err := r.Cookie(session.KeyLoggedIn)
	if err != nil || c.Value != "true" {
		return Credentials{}
	}
	creds := Credentials{LoggedIn: true}
	if rc, err := r.Cookie(session.KeyRole); err == nil {
		if role, ok := models.ParseRole(rc.Value); ok {
			creds.Role = role
		}
	}
	return creds
}

// Edge middleware, которое применяет политику до обработчика страницы.
func Edge(p Policy, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := p.Evaluate(r.URL.Path, EdgeCredentials(r))
			if !d.Allow {
				sl.ForRequest(log, "guard.Edge", r).Debug("redirect",
					slog.String("path", r.URL.Path),
					slog.String("to", d.Redirect),
				)
				http.Redirect(w, r, d.Redirect, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
