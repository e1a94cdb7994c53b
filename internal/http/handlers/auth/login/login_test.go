package login

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/blog-portal/internal/config"
	"github.com/magabrotheeeer/blog-portal/internal/gateway"
	"github.com/magabrotheeeer/blog-portal/internal/guard"
	"github.com/magabrotheeeer/blog-portal/internal/models"
	"github.com/magabrotheeeer/blog-portal/internal/services/auth"
	"github.com/magabrotheeeer/blog-portal/internal/session"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newPolicy() guard.Policy {
	return guard.NewPolicy(config.Guard{
		LoginPath:    "/login",
		AdminPrefix:  "/admin",
		UserLanding:  "/user/articles",
		AdminLanding: "/admin/articles",
	})
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	admin := &models.User{ID: "1", Username: "root", Password: "password123", Role: models.RoleAdmin}
	reader := &models.User{ID: "2", Username: "reader", Password: "password123", Role: models.RoleUser}

	tests := []struct {
		name           string
		requestBody    any
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantStatus     string
		wantError      string
		wantFields     map[string]any
		wantData       map[string]any
		wantSession    bool
	}{
		{
			name:           "admin login",
			requestBody:    Request{Username: "root", Password: "password123"},
			mockUser:       admin,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
			wantData: map[string]any{
				"redirect": "/admin/articles",
				"username": "root",
				"role":     "admin",
			},
			wantSession: true,
		},
		{
			name:           "user login",
			requestBody:    Request{Username: "reader", Password: "password123"},
			mockUser:       reader,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
			wantData: map[string]any{
				"redirect": "/user/articles",
				"role":     "user",
			},
			wantSession: true,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "invalid request body",
		},
		{
			name:           "validation errors",
			requestBody:    Request{Password: "short"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     "Error",
			wantError:      "Username field cannot be empty, Password must be at least 8 characters long",
			wantFields: map[string]any{
				"username": "Username field cannot be empty",
				"password": "Password must be at least 8 characters long",
			},
		},
		{
			name:           "unknown username",
			requestBody:    Request{Username: "ghost", Password: "password123"},
			mockErr:        auth.ErrUsernameNotFound,
			wantStatusCode: http.StatusNotFound,
			wantStatus:     "Error",
			wantError:      "Username not found",
		},
		{
			name:           "wrong password",
			requestBody:    Request{Username: "reader", Password: "password999"},
			mockErr:        auth.ErrIncorrectPassword,
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     "Error",
			wantError:      "Incorrect password",
		},
		{
			name:           "gateway down",
			requestBody:    Request{Username: "reader", Password: "password123"},
			mockErr:        gateway.ErrUnavailable,
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     "Error",
			wantError:      "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			store := session.NewCookieStore(session.CookieOptions{})
			handler := New(newNoopLogger(), authMock, store, newPolicy())

			if req, ok := tt.requestBody.(Request); ok && (tt.mockUser != nil || tt.mockErr != nil) {
				authMock.On("Login", mock.Anything, req.Username, req.Password).
					Return(tt.mockUser, tt.mockErr).Once()
			}

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Nil(t, got["error"])
			}

			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, got["fields"])
			}

			if tt.wantData != nil {
				data, ok := got["data"].(map[string]any)
				require.True(t, ok)
				for k, v := range tt.wantData {
					assert.Equal(t, v, data[k], k)
				}
			} else {
				assert.Nil(t, got["data"])
			}

			loggedIn := false
			for _, c := range rec.Result().Cookies() {
				if c.Name == session.KeyLoggedIn && c.Value == "true" {
					loggedIn = true
				}
			}
			assert.Equal(t, tt.wantSession, loggedIn, "session written")

			authMock.AssertExpectations(t)
		})
	}
}
