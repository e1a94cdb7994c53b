// Package articles реализует таблицу статей в админке.
package articles

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// Service описывает получение строк таблицы статей.
type Service interface {
	AdminArticles(ctx context.Context, category, search string) (*models.AdminArticles, error)
}

// Handler обрабатывает GET /admin/articles.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статьи (админка)
// @Description Таблица статей с фильтром по категории и поиском по заголовку.
// @Tags Admin
// @Produce  json
// @Param category query string false "Категория, all — без ограничения"
// @Param search query string false "Поиск по заголовку"
// @Success 200 {object} response.Response{data=models.AdminArticles}
// @Failure 502 {object} response.ErrorResponse "Failed to fetch articles"
// @Router /admin/articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.articles"

	log := sl.ForRequest(h.log, op, r)
	q := r.URL.Query()

	res, err := h.service.AdminArticles(r.Context(), q.Get("category"), q.Get("search"))
	if err != nil {
		log.Error("failed to fetch articles", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("Failed to fetch articles"))
		return
	}

	log.Info("admin articles listed", slog.Int("rows", len(res.Rows)))
	render.JSON(w, r, response.StatusOKWithData(res))
}
