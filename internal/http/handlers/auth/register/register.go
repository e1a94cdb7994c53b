// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Роль из формы ("User"/"Admin") приводится к роли портала. Если имя уже занято,
// пользователь не создаётся. После успешной регистрации клиент отправляется на страницу входа.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/metrics"
	"github.com/magabrotheeeer/blog-portal/internal/models"
	"github.com/magabrotheeeer/blog-portal/internal/services/auth"
)

// Request — структура входных данных формы регистрации.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"min=8"`
	Role     string `json:"role" validate:"required,role"`
}

var messages = response.Messages{
	"username.required": "Username is required",
	"password.min":      "Password must be at least 8 characters",
	"role.required":     "Role is required",
	"role.role":         "Role is required",
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, password string, role models.Role) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы на регистрацию.
type Handler struct {
	log       *slog.Logger
	service   Service
	loginPath string
	validate  *validator.Validate
}

// New создает новый Handler. loginPath — куда отправить клиента после регистрации.
func New(log *slog.Logger, service Service, loginPath string) *Handler {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return &Handler{
		log:       log,
		service:   service,
		loginPath: loginPath,
		validate:  v,
	}
}

// newValidator валидатор формы регистрации с тегом role.
func newValidator() (*validator.Validate, error) {
	const op = "handlers.auth.register.newValidator"

	v := response.NewValidator()
	err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseRole(fl.Field().String())
		return ok
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя во внешнем API, если имя свободно.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные нового пользователя"
// @Success 201 {object} response.Response "Пользователь создан, data.redirect — страница входа"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Failure 409 {object} response.ErrorResponse "Username already exists"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} response.ErrorResponse "Register failed!"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := sl.ForRequest(h.log, op, r)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("username", req.Username), slog.String("role", req.Role))

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors), messages))
		return
	}
	role, _ := models.ParseRole(req.Role)

	user, err := h.service.Register(r.Context(), req.Username, req.Password, role)
	if errors.Is(err, auth.ErrUsernameExists) {
		log.Info("username already exists")
		metrics.Registrations.WithLabelValues("exists").Inc()
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("Username already exists"))
		return
	}
	if err != nil {
		log.Error("register failed", sl.Err(err))
		metrics.Registrations.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Register failed!"))
		return
	}

	metrics.Registrations.WithLabelValues("ok").Inc()
	log.Info("user registered", slog.String("id", user.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":  "Register successful!",
		"redirect": h.loginPath,
	}))
}
