package home

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/blog-portal/internal/models"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

type landingFunc func(models.Role) string

func (f landingFunc) Landing(role models.Role) string { return f(role) }

func TestHomeHandler(t *testing.T) {
	landing := landingFunc(func(role models.Role) string {
		if role == models.RoleAdmin {
			return "/admin/articles"
		}
		return "/user/articles"
	})
	h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), landing, "/login")

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.JSONEq(t, `{"status":"OK","data":{"logged_in":false,"next":"/login"}}`, rec.Body.String())
	})

	t.Run("admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(session.WithSession(req.Context(), models.Session{Username: "root", Role: models.RoleAdmin, LoggedIn: true}))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.JSONEq(t, `{"status":"OK","data":{"logged_in":true,"username":"root","initial":"R","next":"/admin/articles"}}`, rec.Body.String())
	})
}
