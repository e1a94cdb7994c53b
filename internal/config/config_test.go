package config

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput перехватывает вывод log.Fatal
func captureOutput(f func()) (string, bool) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	oldFlags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(oldFlags)
	}()

	panicked := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		f()
	}()

	return buf.String(), panicked
}

func writeConfig(t *testing.T, content string) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Remove(tmpFile.Name()))
	})

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	t.Setenv("CONFIG_PATH", tmpFile.Name())
}

func TestMustLoad_ValidConfig(t *testing.T) {
	writeConfig(t, `
env: prod
api_base_url: "https://example.mockapi.io/api/v1"
http_server:
  addresshttp: ":9090"
  timeouthttp: 30s
  idle_timeout: 90s
gateway:
  timeout: 5s
session:
  store: redis
  ttl: 24h
  secure_cookies: true
  redis_connection:
    addressredis: "localhost:6380"
    password: "redis_pass"
    user: "redis_user"
    db: 2
    max_retries: 1
    dial_timeout: 2s
    timeoutredis: 1s
discovery:
  page_size: 12
  debounce: 300ms
  related_limit: 4
  view_ttl: 10m
  max_views: 500
guard:
  login_path: "/signin"
  admin_prefix: "/backoffice"
  user_landing: "/user/feed"
  admin_landing: "/backoffice/articles"
rate_limit:
  rps: 5
  burst: 10
`)

	output, panicked := captureOutput(func() {
		cfg := MustLoad()

		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "https://example.mockapi.io/api/v1", cfg.APIBaseURL)
		assert.Equal(t, ":9090", cfg.AddressHTTP)
		assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
		assert.Equal(t, 90*time.Second, cfg.IdleTimeout)
		assert.Equal(t, 5*time.Second, cfg.GatewayTimeout)
		assert.Equal(t, "redis", cfg.Store)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.True(t, cfg.SecureCookies)
		assert.Equal(t, "localhost:6380", cfg.AddressRedis)
		assert.Equal(t, "redis_pass", cfg.Password)
		assert.Equal(t, "redis_user", cfg.User)
		assert.Equal(t, 2, cfg.DB)
		assert.Equal(t, 1, cfg.MaxRetries)
		assert.Equal(t, 2*time.Second, cfg.DialTimeout)
		assert.Equal(t, time.Second, cfg.TimeoutRedis)
		assert.Equal(t, 12, cfg.PageSize)
		assert.Equal(t, 300*time.Millisecond, cfg.Debounce)
		assert.Equal(t, 4, cfg.RelatedLimit)
		assert.Equal(t, 10*time.Minute, cfg.ViewTTL)
		assert.Equal(t, 500, cfg.MaxViews)
		assert.Equal(t, "/signin", cfg.LoginPath)
		assert.Equal(t, "/backoffice", cfg.AdminPrefix)
		assert.Equal(t, "/user/feed", cfg.UserLanding)
		assert.Equal(t, "/backoffice/articles", cfg.AdminLanding)
		assert.Equal(t, 5.0, cfg.RPS)
		assert.Equal(t, 10, cfg.Burst)
	})

	assert.Empty(t, output)
	assert.False(t, panicked)
}

func TestConfig_DefaultValues(t *testing.T) {
	writeConfig(t, `
api_base_url: "https://example.mockapi.io/api/v1"
`)

	output, panicked := captureOutput(func() {
		cfg := MustLoad()

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, ":8080", cfg.AddressHTTP)
		assert.Equal(t, 10*time.Second, cfg.TimeoutHTTP)
		assert.Equal(t, time.Duration(0), cfg.GatewayTimeout)
		assert.Equal(t, "cookie", cfg.Store)
		assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
		assert.False(t, cfg.SecureCookies)
		assert.Equal(t, 9, cfg.PageSize)
		assert.Equal(t, 500*time.Millisecond, cfg.Debounce)
		assert.Equal(t, 3, cfg.RelatedLimit)
		assert.Equal(t, 30*time.Minute, cfg.ViewTTL)
		assert.Equal(t, 10000, cfg.MaxViews)
		assert.Equal(t, "/login", cfg.LoginPath)
		assert.Equal(t, "/admin", cfg.AdminPrefix)
		assert.Equal(t, "/user/articles", cfg.UserLanding)
		assert.Equal(t, "/admin/articles", cfg.AdminLanding)
		assert.Equal(t, 1.0, cfg.RPS)
		assert.Equal(t, 3, cfg.Burst)
	})

	assert.Empty(t, output)
	assert.False(t, panicked)
}

func TestConfig_String(t *testing.T) {
	cfg := Config{Env: "local", APIBaseURL: "http://api"}
	cfg.PageSize = 9

	s := cfg.String()

	assert.Contains(t, s, "Env: local")
	assert.Contains(t, s, "APIBaseURL: http://api")
	assert.Contains(t, s, "PageSize: 9")
}
