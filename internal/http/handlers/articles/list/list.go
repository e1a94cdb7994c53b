// Package list реализует страницу списка статей пользователя.
//
// Открытие страницы (GET /user/articles) монтирует для пользователя новый
// discovery.Engine и один раз загружает полную коллекцию. Дальнейшие
// изменения поиска, категории и страницы работают с уже загруженной коллекцией.
package list

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-portal/internal/discovery"
	"github.com/magabrotheeeer/blog-portal/internal/http/response"
	"github.com/magabrotheeeer/blog-portal/internal/lib/sl"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

// Views хранит смонтированные страницы списка по пользователям.
type Views interface {
	Mount(key string) *discovery.Engine
	Get(key string) (*discovery.Engine, bool)
}

// SearchRequest ввод строки поиска.
type SearchRequest struct {
	Search string `json:"search"`
}

// CategoryRequest выбор категории, "all" или пустая строка снимают ограничение.
type CategoryRequest struct {
	Category string `json:"category"`
}

// PageRequest переход на страницу.
type PageRequest struct {
	Page int `json:"page"`
}

// Handler обрабатывает запросы страницы списка статей.
type Handler struct {
	log    *slog.Logger
	views  Views
	source discovery.Source
}

// New создает новый Handler.
func New(log *slog.Logger, views Views, source discovery.Source) *Handler {
	return &Handler{
		log:    log,
		views:  views,
		source: source,
	}
}

// Mount godoc
// @Summary Открыть список статей
// @Description Монтирует новое состояние списка и загружает все статьи. При ошибке загрузки состояние failed отдаётся вместе с ошибкой.
// @Tags Articles
// @Produce  json
// @Success 200 {object} response.Response{data=discovery.View}
// @Failure 502 {object} response.Response{data=discovery.View} "Failed to fetch articles"
// @Router /user/articles [get]
func (h *Handler) Mount(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.articles.list.Mount"

	log := sl.ForRequest(h.log, op, r)
	s := session.FromContext(r.Context())

	e := h.views.Mount(s.Key())
	if err := e.Load(r.Context(), h.source); err != nil {
		log.Error("failed to load articles", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.ErrorWithData(discovery.LoadFailedMessage, e.Snapshot()))
		return
	}

	v := e.Snapshot()
	log.Info("articles view mounted", slog.Int("total", v.Total))
	render.JSON(w, r, response.StatusOKWithData(v))
}

// View godoc
// @Summary Текущее состояние списка статей
// @Tags Articles
// @Produce  json
// @Success 200 {object} response.Response{data=discovery.View}
// @Failure 409 {object} response.ErrorResponse "Список не открыт"
// @Router /user/articles/view [get]
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r, "handlers.articles.list.View")
	if !ok {
		return
	}
	render.JSON(w, r, response.StatusOKWithData(e.Snapshot()))
}

// Search godoc
// @Summary Ввод строки поиска
// @Description Поиск применяется после периода тишины; частые изменения объединяются, применяется последнее.
// @Tags Articles
// @Accept  json
// @Produce  json
// @Param request body SearchRequest true "Строка поиска"
// @Success 202 {object} response.Response{data=discovery.View}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Список не открыт"
// @Router /user/articles/view/search [put]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.articles.list.Search"

	e, ok := h.engine(w, r, op)
	if !ok {
		return
	}

	var req SearchRequest
	if !decode(w, r, sl.ForRequest(h.log, op, r), &req) {
		return
	}

	e.SetSearch(req.Search)
	w.WriteHeader(http.StatusAccepted)
	render.JSON(w, r, response.StatusOKWithData(e.Snapshot()))
}

// Category godoc
// @Summary Выбор категории
// @Description Категория применяется сразу вместе с последним введённым поиском, страница сбрасывается на первую.
// @Tags Articles
// @Accept  json
// @Produce  json
// @Param request body CategoryRequest true "Категория"
// @Success 200 {object} response.Response{data=discovery.View}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Список не открыт"
// @Router /user/articles/view/category [put]
func (h *Handler) Category(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.articles.list.Category"

	e, ok := h.engine(w, r, op)
	if !ok {
		return
	}

	var req CategoryRequest
	if !decode(w, r, sl.ForRequest(h.log, op, r), &req) {
		return
	}

	render.JSON(w, r, response.StatusOKWithData(e.SetCategory(req.Category)))
}

// Page godoc
// @Summary Переход на страницу
// @Description Страницы вне диапазона игнорируются, текущая страница не меняется.
// @Tags Articles
// @Accept  json
// @Produce  json
// @Param request body PageRequest true "Номер страницы"
// @Success 200 {object} response.Response{data=discovery.View}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Список не открыт"
// @Router /user/articles/view/page [put]
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.articles.list.Page"

	e, ok := h.engine(w, r, op)
	if !ok {
		return
	}

	log := sl.ForRequest(h.log, op, r)
	var req PageRequest
	if !decode(w, r, log, &req) {
		return
	}

	if !e.GoTo(req.Page) {
		log.Debug("page out of range", slog.Int("page", req.Page))
	}
	render.JSON(w, r, response.StatusOKWithData(e.Snapshot()))
}

func (h *Handler) engine(w http.ResponseWriter, r *http.Request, op string) (*discovery.Engine, bool) {
	s := session.FromContext(r.Context())
	e, ok := h.views.Get(s.Key())
	if !ok {
		sl.ForRequest(h.log, op, r).Info("articles view is not mounted")
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("articles view is not open"))
		return nil, false
	}
	return e, true
}

func decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return false
	}
	return true
}
