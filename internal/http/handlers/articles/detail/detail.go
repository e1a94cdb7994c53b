// Package detail реализует страницу статьи с похожими статьями.
package detail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-portal/internal/gateway"
	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// Service описывает получение данных страницы статьи.
type Service interface {
	Detail(ctx context.Context, id string) (*models.ArticleDetail, error)
}

// Handler обрабатывает запросы страницы статьи.
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
// @Summary Статья
// @Description Статья, её абзацы и до трёх похожих статей из первой категории.
// @Tags Articles
// @Produce  json
// @Param id path string true "ID статьи"
// @Success 200 {object} response.Response{data=models.ArticleDetail}
// @Failure 404 {object} response.ErrorResponse "Article not found"
// @Failure 502 {object} response.ErrorResponse "Failed to fetch articles"
// @Router /user/articles/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.articles.detail"

	log := sl.ForRequest(h.log, op, r)
	id := chi.URLParam(r, "id")

	res, err := h.service.Detail(r.Context(), id)
	if errors.Is(err, gateway.ErrNotFound) {
		log.Info("article not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Article not found"))
		return
	}
	if err != nil {
		log.Error("failed to fetch article", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("Failed to fetch articles"))
		return
	}

	log.Info("article fetched", slog.String("id", id), slog.Int("related", len(res.Related)))
	render.JSON(w, r, response.StatusOKWithData(res))
}
