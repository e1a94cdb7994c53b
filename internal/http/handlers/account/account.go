// Package account реализует страницу профиля пользователя.
package account

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// Profile данные профиля. Пароль отдаётся как есть, так его хранит сессия.
type Profile struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Initial  string `json:"initial"`
}

// Handler отдаёт профиль из сессии запроса.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Профиль
// @Tags Account
// @Produce  json
// @Success 200 {object} response.Response{data=Profile}
// @Failure 401 {object} response.ErrorResponse
// @Router /user/account [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account"

	s, err := session.Require(r.Context())
	if err != nil {
		sl.ForRequest(h.log, op, r).Info("no session", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("not logged in"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(Profile{
		UserID:   s.UserID,
		Username: s.Username,
		Password: s.Password,
		Role:     string(s.Role),
		Initial:  s.Initial(),
	}))
}
