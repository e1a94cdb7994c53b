// Package gateway реализует клиент внешнего REST API с коллекциями
// users, articles и categories.
//
// Клиент делает ровно один HTTP-запрос на одно логическое чтение или запись:
// без повторов, без кеширования и без пагинации на уровне транспорта.
// Любая ошибка сети, неожиданный статус или ошибка разбора JSON
// возвращается как ErrUnavailable.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magabrotheeeer/blog-portal/internal/metrics"
	"github.com/magabrotheeeer/blog-portal/internal/models"
)

var (
	// ErrNotFound ресурс не найден (404).
	ErrNotFound = errors.New("resource not found")
	// ErrUnavailable запрос не удался: сеть, статус ответа или разбор тела.
	ErrUnavailable = errors.New("remote api request failed")
)

// Client клиент внешнего REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для baseURL. Нулевой timeout не ограничивает время запроса.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do выполняет запрос и декодирует ответ в out.
func (c *Client) do(ctx context.Context, resource, method, path string, query url.Values, body, out any) error {
	op := "gateway." + resource
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GatewayRequests.WithLabelValues(resource, "transport_error").Inc()
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.GatewayRequests.WithLabelValues(resource, "not_found").Inc()
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		metrics.GatewayRequests.WithLabelValues(resource, "bad_status").Inc()
		return fmt.Errorf("%s: %w: unexpected status: %s", op, ErrUnavailable, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			metrics.GatewayRequests.WithLabelValues(resource, "decode_error").Inc()
			return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
		}
	}
	metrics.GatewayRequests.WithLabelValues(resource, "ok").Inc()
	return nil
}

// FindUsersByUsername GET /users?username=<q>.
// Хост отвечает 404, когда совпадений нет; это пустой результат, а не ошибка.
func (c *Client) FindUsersByUsername(ctx context.Context, username string) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, "users", http.MethodGet, "/users", url.Values{"username": {username}}, nil, &users)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser GET /users/:id.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, "users", http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser POST /users.
func (c *Client) CreateUser(ctx context.Context, u models.NewUser) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, "users", http.MethodPost, "/users", nil, u, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListArticles GET /articles, всегда вся коллекция.
func (c *Client) ListArticles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := c.do(ctx, "articles", http.MethodGet, "/articles", nil, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle GET /articles/:id.
func (c *Client) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	if err := c.do(ctx, "articles", http.MethodGet, "/articles/"+url.PathEscape(id), nil, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// ListArticlesByCategory GET /articles?category=<c>. Пустой результат хоста (404) — пустой список.
func (c *Client) ListArticlesByCategory(ctx context.Context, category string) ([]models.Article, error) {
	var articles []models.Article
	err := c.do(ctx, "articles", http.MethodGet, "/articles", url.Values{"category": {category}}, nil, &articles)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// ListCategories GET /categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, "categories", http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
