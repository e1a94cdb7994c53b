package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/blog-portal/internal/cache"
	"github.com/magabrotheeeer/blog-portal/internal/config"
	"github.com/magabrotheeeer/blog-portal/internal/models"
)

var alice = models.Session{
	UserID:   "1",
	Username: "alice",
	Password: "secret123",
	Role:     models.RoleAdmin,
	LoggedIn: true,
}

// carryCookies переносит выставленные ответом cookie в новый запрос, как это делает браузер.
func carryCookies(rec *httptest.ResponseRecorder, prev *http.Request) *http.Request {
	jar := map[string]*http.Cookie{}
	if prev != nil {
		for _, c := range prev.Cookies() {
			jar[c.Name] = c
		}
	}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(jar, c.Name)
			continue
		}
		jar[c.Name] = c
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range jar {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return req
}

func cookieNames(rec *httptest.ResponseRecorder) map[string]string {
	out := map[string]string{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c.Value
	}
	return out
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, models.Session{}, FromContext(ctx))
	_, err := Require(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	ctx = WithSession(ctx, alice)
	assert.Equal(t, alice, FromContext(ctx))
	got, err := Require(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

func TestCookieStore_RoundTrip(t *testing.T) {
	store := NewCookieStore(CookieOptions{TTL: time.Hour})

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodPost, "/login", nil), alice))

	assert.Equal(t, map[string]string{
		KeyLoggedIn: "true",
		KeyRole:     "admin",
		KeyUserID:   "1",
		KeyUsername: "alice",
		KeyPassword: "secret123",
	}, cookieNames(rec))

	req := carryCookies(rec, nil)
	got, err := store.Load(req)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	rec = httptest.NewRecorder()
	require.NoError(t, store.Clear(rec, req))
	got, err = store.Load(carryCookies(rec, req))
	require.NoError(t, err)
	assert.False(t, got.LoggedIn)
}

func TestCookieStore_MissingOrPartial(t *testing.T) {
	store := NewCookieStore(CookieOptions{})

	tests := []struct {
		name    string
		cookies map[string]string
		want    models.Session
	}{
		{name: "no cookies", want: models.Session{}},
		{
			name:    "flag not true",
			cookies: map[string]string{KeyLoggedIn: "yes", KeyUsername: "alice", KeyRole: "admin"},
			want:    models.Session{},
		},
		{
			name:    "unknown role",
			cookies: map[string]string{KeyLoggedIn: "true", KeyUsername: "alice", KeyRole: "root"},
			want:    models.Session{Username: "alice", LoggedIn: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.cookies {
				req.AddCookie(&http.Cookie{Name: k, Value: v})
			}
			got, err := store.Load(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCookieStore_SaveLoggedOutClears(t *testing.T) {
	store := NewCookieStore(CookieOptions{})

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), models.Session{}))

	for _, c := range rec.Result().Cookies() {
		assert.Less(t, c.MaxAge, 0, c.Name)
	}
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	kv, err := cache.InitServer(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	return NewRedisStore(kv, CookieOptions{TTL: time.Hour}), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := newRedisStore(t)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodPost, "/login", nil), alice))

	cookies := cookieNames(rec)
	assert.Equal(t, "true", cookies[KeyLoggedIn])
	assert.Equal(t, "admin", cookies[KeyRole])
	require.NotEmpty(t, cookies[KeySessionID])
	assert.NotContains(t, cookies, KeyPassword, "password stays on the server")
	assert.True(t, mr.Exists("session:"+cookies[KeySessionID]))

	req := carryCookies(rec, nil)
	got, err := store.Load(req)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	rec = httptest.NewRecorder()
	require.NoError(t, store.Clear(rec, req))
	assert.False(t, mr.Exists("session:"+cookies[KeySessionID]))

	got, err = store.Load(req)
	require.NoError(t, err)
	assert.False(t, got.LoggedIn)
}

func TestRedisStore_ExpiredSession(t *testing.T) {
	store, mr := newRedisStore(t)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodPost, "/login", nil), alice))
	mr.FastForward(2 * time.Hour)

	got, err := store.Load(carryCookies(rec, nil))
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, got)
}

func TestRedisStore_UnknownSID(t *testing.T) {
	store, _ := newRedisStore(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: KeySessionID, Value: "does-not-exist"})

	got, err := store.Load(req)
	require.NoError(t, err)
	assert.False(t, got.LoggedIn)
}

func TestRedisStore_BackendDown(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: KeySessionID, Value: "abc"})

	_, err := store.Load(req)
	assert.Error(t, err)
}

// brokenKV хранилище, которое не может удалить запись.
type brokenKV struct {
	KV
	err error
}

func (b brokenKV) Invalidate(context.Context, string) error { return b.err }

func TestRedisStore_SaveReportsStaleInvalidateError(t *testing.T) {
	kvErr := errors.New("READONLY You can't write against a read only replica")
	store := NewRedisStore(brokenKV{err: kvErr}, CookieOptions{TTL: time.Hour})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(&http.Cookie{Name: KeySessionID, Value: "previous"})
	rec := httptest.NewRecorder()

	err := store.Save(rec, req, alice)
	assert.ErrorIs(t, err, kvErr)
	assert.Empty(t, rec.Result().Cookies(), "no session cookies on failure")
}
