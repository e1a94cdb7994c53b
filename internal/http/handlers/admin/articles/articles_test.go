package articles

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/blog-portal/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) AdminArticles(ctx context.Context, category, search string) (*models.AdminArticles, error) {
	args := m.Called(ctx, category, search)
	res, _ := args.Get(0).(*models.AdminArticles)
	return res, args.Error(1)
}

func TestAdminArticlesHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	t.Run("query forwarded", func(t *testing.T) {
		m := new(MockService)
		m.On("AdminArticles", mock.Anything, "Health", "sleep").Return(&models.AdminArticles{
			Total:      3,
			Categories: []string{"Health"},
			Rows:       []models.AdminArticleRow{{ID: "2", Title: "Sleep well", Category: "Health"}},
		}, nil).Once()

		rec := httptest.NewRecorder()
		New(logger, m).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/articles?category=Health&search=sleep", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":3`)
		assert.Contains(t, rec.Body.String(), `"title":"Sleep well"`)
		m.AssertExpectations(t)
	})

	t.Run("gateway error", func(t *testing.T) {
		m := new(MockService)
		m.On("AdminArticles", mock.Anything, "", "").Return(nil, errors.New("boom")).Once()

		rec := httptest.NewRecorder()
		New(logger, m).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/articles", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"status":"Error","error":"Failed to fetch articles"}`, rec.Body.String())
	})
}
