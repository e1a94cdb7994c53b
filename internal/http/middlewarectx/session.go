// Package middlewarectx содержит HTTP middleware портала: загрузку сессии
// в контекст запроса и ограничение частоты запросов.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// SessionMiddleware читает сессию через repo и кладёт её в контекст запроса.
// Ошибка хранилища не прерывает запрос: обработчик увидит нулевую сессию.
func SessionMiddleware(repo session.Repository, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := repo.Load(r)
			if err != nil {
				sl.ForRequest(log, "middlewarectx.Session", r).Error("failed to load session", sl.Err(err))
			}
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}
