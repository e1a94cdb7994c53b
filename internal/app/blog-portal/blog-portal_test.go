package blogportal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/blog-portal/internal/config"
)

func testConfig(store string) *config.Config {
	cfg := &config.Config{APIBaseURL: "http://127.0.0.1:1"}
	cfg.Store = store
	cfg.Guard = config.Guard{
		LoginPath:    "/login",
		AdminPrefix:  "/admin",
		UserLanding:  "/user/articles",
		AdminLanding: "/admin/articles",
	}
	cfg.Discovery = config.Discovery{PageSize: 9, RelatedLimit: 3}
	cfg.RateLimit = config.RateLimit{RPS: 1, Burst: 1}
	return cfg
}

func TestNew_SessionStores(t *testing.T) {
	t.Run("cookie", func(t *testing.T) {
		app, err := New(context.Background(), testConfig(storeCookie), newNoopLogger())
		require.NoError(t, err)
		assert.Nil(t, app.cache)

		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		app.close()
	})

	t.Run("redis", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(mr.Close)

		cfg := testConfig(storeRedis)
		cfg.AddressRedis = mr.Addr()

		app, err := New(context.Background(), cfg, newNoopLogger())
		require.NoError(t, err)
		require.NotNil(t, app.cache)
		app.close()
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		cfg := testConfig(storeRedis)
		cfg.AddressRedis = addr

		_, err = New(context.Background(), cfg, newNoopLogger())
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New(context.Background(), testConfig("memcached"), newNoopLogger())
		assert.Error(t, err)
	})
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := testConfig(storeCookie)
	cfg.AddressHTTP = "127.0.0.1:0"

	app, err := New(context.Background(), cfg, newNoopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, app.Run(ctx))
}
