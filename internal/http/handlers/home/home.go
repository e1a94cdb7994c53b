// Package home реализует стартовую страницу портала.
package home

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/models"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// Landing выбирает стартовую страницу по роли.
type Landing interface {
	Landing(role models.Role) string
}

// Page данные стартовой страницы. Next — куда вести посетителя дальше.
type Page struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
	Initial  string `json:"initial,omitempty"`
	Next     string `json:"next"`
}

// Handler обрабатывает GET /.
type Handler struct {
	log       *slog.Logger
	landing   Landing
	loginPath string
}

// New создает новый Handler.
func New(log *slog.Logger, landing Landing, loginPath string) *Handler {
	return &Handler{
		log:       log,
		landing:   landing,
		loginPath: loginPath,
	}
}

// ServeHTTP godoc
// @Summary Стартовая страница
// @Tags Service
// @Produce  json
// @Success 200 {object} response.Response{data=Page}
// @Router / [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.LoggedIn {
		render.JSON(w, r, response.StatusOKWithData(Page{Next: h.loginPath}))
		return
	}
	render.JSON(w, r, response.StatusOKWithData(Page{
		LoggedIn: true,
		Username: s.Username,
		Initial:  s.Initial(),
		Next:     h.landing.Landing(s.Role),
	}))
}
