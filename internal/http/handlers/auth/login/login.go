// Package login реализует HTTP-обработчик входа пользователя.
//
// Обработчик декодирует и валидирует форму, проверяет учётные данные через
// сервис аутентификации и при успехе сохраняет сессию через session.Repository.
// В ответе приходит стартовая страница, соответствующая роли пользователя.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/metrics"
	"github.com/magabrotheeeer/blog-portal/internal/models"
	"github.com/magabrotheeeer/blog-portal/internal/services/auth"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// Request — структура входных данных формы входа.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"min=8"`
}

var messages = response.Messages{
	"username.required": "Username field cannot be empty",
	"password.min":      "Password must be at least 8 characters long",
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// Landing выбирает стартовую страницу по роли.
type Landing interface {
	Landing(role models.Role) string
}

// Handler обрабатывает HTTP-запросы на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions session.Repository
	landing  Landing
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, sessions session.Repository, landing Landing) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
		landing:  landing,
		validate: response.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Проверяет имя и пароль по записи пользователя во внешнем API и сохраняет сессию.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Успешный вход, data.redirect — стартовая страница"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.Response "Ошибка валидации, fields — ошибки по полям"
// @Failure 404 {object} response.ErrorResponse "Username not found"
// @Failure 401 {object} response.ErrorResponse "Incorrect password"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} response.ErrorResponse "Something went wrong. Please try again."
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := sl.ForRequest(h.log, op, r)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("username", req.Username))

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors), messages))
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrUsernameNotFound):
		log.Info("username not found")
		metrics.LoginAttempts.WithLabelValues("not_found").Inc()
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Username not found"))
		return
	case errors.Is(err, auth.ErrIncorrectPassword):
		log.Info("incorrect password")
		metrics.LoginAttempts.WithLabelValues("bad_password").Inc()
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Incorrect password"))
		return
	case err != nil:
		log.Error("login failed", sl.Err(err))
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Something went wrong. Please try again."))
		return
	}

	if err := h.sessions.Save(w, r, models.NewSession(*user)); err != nil {
		log.Error("failed to save session", sl.Err(err))
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Something went wrong. Please try again."))
		return
	}

	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	log.Info("login success", slog.String("username", user.Username), slog.String("role", string(user.Role)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":  "Login successful!",
		"redirect": h.landing.Landing(user.Role),
		"username": user.Username,
		"role":     user.Role,
	}))
}
