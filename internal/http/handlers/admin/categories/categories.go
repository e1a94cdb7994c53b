// Package categories реализует список категорий в админке.
package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// Service описывает получение категорий.
type Service interface {
	Categories(ctx context.Context, search string) ([]models.Category, error)
}

// Page данные страницы категорий.
type Page struct {
	Total      int               `json:"total"`
	Categories []models.Category `json:"categories"`
	NoResults  bool              `json:"no_results"`
}

// Handler обрабатывает GET /admin/categories.
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
// @Summary Категории (админка)
// @Description Категории, имя которых содержит search без учёта регистра. Total считает отфильтрованный список.
// @Tags Admin
// @Produce  json
// @Param search query string false "Поиск по имени"
// @Success 200 {object} response.Response{data=Page}
// @Failure 502 {object} response.ErrorResponse
// @Router /admin/categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.categories"

	log := sl.ForRequest(h.log, op, r)

	list, err := h.service.Categories(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		log.Error("failed to fetch categories", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("Failed to fetch categories"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(Page{
		Total:      len(list),
		Categories: list,
		NoResults:  len(list) == 0,
	}))
}
