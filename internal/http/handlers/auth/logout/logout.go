// Package logout реализует выход пользователя: очистку сессии и закрытие
// открытого списка статей пользователя.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// Views закрывает состояние страниц пользователя.
type Views interface {
	Drop(key string)
}

// Handler обрабатывает выход.
type Handler struct {
	log       *slog.Logger
	sessions  session.Repository
	views     Views
	loginPath string
}

// New создает новый Handler.
func New(log *slog.Logger, sessions session.Repository, views Views, loginPath string) *Handler {
	return &Handler{
		log:       log,
		sessions:  sessions,
		views:     views,
		loginPath: loginPath,
	}
}

// ServeHTTP godoc
// @Summary Выход
// @Description Очищает сессию. GET перенаправляет на страницу входа, POST возвращает её в data.redirect.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response
// @Success 302 "Перенаправление на страницу входа"
// @Failure 500 {object} response.ErrorResponse
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := sl.ForRequest(h.log, op, r)

	if s := session.FromContext(r.Context()); s.LoggedIn {
		h.views.Drop(s.Key())
	}

	if err := h.sessions.Clear(w, r); err != nil {
		log.Error("failed to clear session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Something went wrong. Please try again."))
		return
	}
	log.Info("logged out")

	if r.Method == http.MethodGet {
		http.Redirect(w, r, h.loginPath, http.StatusFound)
		return
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"redirect": h.loginPath,
	}))
}
