package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/magabrotheeeer/blog-portal/internal/lib/debounce"
	"github.com/magabrotheeeer/blog-portal/internal/metrics"
	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// State состояние загрузки коллекции.
type State string

const (
	// StateLoading коллекция ещё не получена.
	StateLoading State = "loading"
	// StateReady коллекция загружена, выборка актуальна.
	StateReady State = "ready"
	// StateFailed загрузка не удалась. Это не то же самое, что пустая выборка.
	StateFailed State = "failed"
)

// LoadFailedMessage текст ошибки для состояния StateFailed.
const LoadFailedMessage = "Failed to fetch articles"

// Source отдаёт полную коллекцию статей.
type Source interface {
	All(ctx context.Context) ([]models.Article, error)
}

// View снимок состояния страницы списка статей.
type View struct {
	State          State            `json:"state"`
	Error          string           `json:"error,omitempty"`
	Search         string           `json:"search"`
	Category       string           `json:"category"`
	Categories     []string         `json:"categories"`
	Page           int              `json:"page"`
	PageSize       int              `json:"page_size"`
	TotalPages     int              `json:"total_pages"`
	Filtered       int              `json:"filtered"`
	Total          int              `json:"total"`
	NoResults      bool             `json:"no_results"`
	ShowPagination bool             `json:"show_pagination"`
	Items          []models.Article `json:"items"`
}

// Option настройка Engine.
type Option func(*Engine)

// WithPassHook вызывает fn после каждого пересчёта выборки.
func WithPassHook(fn func(View)) Option {
	return func(e *Engine) {
		e.onPass = fn
	}
}

// Engine держит состояние одной страницы списка: полную коллекцию,
// применённые фильтры, текущую страницу. Ввод поиска проходит через debounce,
// смена категории применяется сразу.
type Engine struct {
	mu        sync.Mutex
	pageSize  int
	debouncer *debounce.Debouncer
	onPass    func(View)

	state    State
	loadErr  string
	all      []models.Article
	filtered []models.Article
	search   string // применённый поиск
	input    string // последний введённый поиск
	category string
	page     int
	closed   bool
}

// NewEngine создаёт Engine с размером страницы pageSize и периодом тишины quiet для поиска.
func NewEngine(pageSize int, quiet time.Duration, opts ...Option) *Engine {
	if pageSize < 1 {
		pageSize = 1
	}
	e := &Engine{
		pageSize:  pageSize,
		debouncer: debounce.New(quiet),
		state:     StateLoading,
		page:      1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load получает полную коллекцию из src и применяет текущие фильтры.
// При ошибке Engine переходит в StateFailed.
func (e *Engine) Load(ctx context.Context, src Source) error {
	const op = "discovery.Engine.Load"

	articles, err := src.All(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.state = StateFailed
		e.loadErr = LoadFailedMessage
		e.all = nil
		e.filtered = nil
		e.page = 1
		return fmt.Errorf("%s: %w", op, err)
	}

	e.state = StateReady
	e.loadErr = ""
	e.all = articles
	e.filtered = Filter(e.all, e.search, e.category)
	e.page = 1
	return nil
}

// SetSearch запоминает ввод и планирует пересчёт после периода тишины.
// Возвращает false, если ввод не изменился или Engine закрыт.
func (e *Engine) SetSearch(q string) bool {
	e.mu.Lock()
	if e.closed || q == e.input {
		e.mu.Unlock()
		return false
	}
	e.input = q
	e.mu.Unlock()

	e.debouncer.Call(e.applyInput)
	return true
}

// SetCategory сразу применяет категорию вместе с последним введённым поиском,
// отложенный пересчёт поиска при этом больше не нужен и отменяется.
func (e *Engine) SetCategory(c string) View {
	c = normalizeCategory(c)

	e.mu.Lock()
	if e.closed || (c == e.category && e.input == e.search) {
		v := e.viewLocked()
		e.mu.Unlock()
		return v
	}
	e.debouncer.Cancel()
	e.category = c
	e.search = e.input
	v := e.recomputeLocked()
	e.mu.Unlock()

	e.notify(v)
	return v
}

// GoTo переходит на страницу page. Страницы вне [1, TotalPages] игнорируются.
func (e *Engine) GoTo(page int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if page < 1 || page > TotalPages(len(e.filtered), e.pageSize) {
		return false
	}
	e.page = page
	return true
}

// Snapshot возвращает текущее состояние страницы.
func (e *Engine) Snapshot() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewLocked()
}

// Pending сообщает, ждёт ли ввод поиска пересчёта.
func (e *Engine) Pending() bool {
	return e.debouncer.Pending()
}

// Close отменяет отложенный пересчёт. После Close изменения фильтров игнорируются.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.debouncer.Stop()
}

func (e *Engine) applyInput() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.search = e.input
	v := e.recomputeLocked()
	e.mu.Unlock()

	e.notify(v)
}

// recomputeLocked фильтрует всегда от полной коллекции и сбрасывает страницу на первую.
func (e *Engine) recomputeLocked() View {
	e.filtered = Filter(e.all, e.search, e.category)
	e.page = 1
	metrics.FilterPasses.Inc()
	return e.viewLocked()
}

func (e *Engine) notify(v View) {
	if e.onPass != nil {
		e.onPass(v)
	}
}

func (e *Engine) viewLocked() View {
	totalPages := TotalPages(len(e.filtered), e.pageSize)
	items := Paginate(e.filtered, e.page, e.pageSize)

	v := View{
		State:          e.state,
		Error:          e.loadErr,
		Search:         e.search,
		Category:       e.category,
		Categories:     Categories(e.all),
		Page:           e.page,
		PageSize:       e.pageSize,
		TotalPages:     totalPages,
		Filtered:       len(e.filtered),
		Total:          len(e.all),
		NoResults:      e.state == StateReady && len(e.filtered) == 0,
		ShowPagination: totalPages > 1,
		Items:          make([]models.Article, len(items)),
	}
	copy(v.Items, items)
	return v
}
