// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	APIBaseURL string `yaml:"api_base_url" env:"API_BASE_URL" env-required:"true"`
	HTTPServer `yaml:"http_server"`
	Gateway    `yaml:"gateway"`
	Session    `yaml:"session"`
	Discovery  `yaml:"discovery"`
	Guard      `yaml:"guard"`
	RateLimit  `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Gateway настройки HTTP-клиента внешнего REST API.
// Нулевой таймаут означает, что клиент ждёт ответа без ограничения.
type Gateway struct {
	GatewayTimeout time.Duration `yaml:"timeout" env:"GATEWAY_TIMEOUT" env-default:"0s"`
}

// Session настройки хранилища сессии.
// Store принимает значения "cookie" или "redis".
type Session struct {
	Store           string        `yaml:"store" env:"SESSION_STORE" env-default:"cookie"`
	SessionTTL      time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"720h"`
	SecureCookies   bool          `yaml:"secure_cookies" env:"SESSION_SECURE_COOKIES" env-default:"false"`
	RedisConnection `yaml:"redis_connection"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env:"REDIS_TIMEOUT" env-default:"3s"`
}

// Discovery настройки поиска и пагинации статей.
// Открытый список статей закрывается, если к нему не обращались дольше ViewTTL.
type Discovery struct {
	PageSize     int           `yaml:"page_size" env:"DISCOVERY_PAGE_SIZE" env-default:"9"`
	Debounce     time.Duration `yaml:"debounce" env:"DISCOVERY_DEBOUNCE" env-default:"500ms"`
	RelatedLimit int           `yaml:"related_limit" env:"DISCOVERY_RELATED_LIMIT" env-default:"3"`
	ViewTTL      time.Duration `yaml:"view_ttl" env:"DISCOVERY_VIEW_TTL" env-default:"30m"`
	MaxViews     int           `yaml:"max_views" env:"DISCOVERY_MAX_VIEWS" env-default:"10000"`
}

// Guard пути, которые использует политика доступа.
type Guard struct {
	LoginPath    string `yaml:"login_path" env:"GUARD_LOGIN_PATH" env-default:"/login"`
	AdminPrefix  string `yaml:"admin_prefix" env:"GUARD_ADMIN_PREFIX" env-default:"/admin"`
	UserLanding  string `yaml:"user_landing" env:"GUARD_USER_LANDING" env-default:"/user/articles"`
	AdminLanding string `yaml:"admin_landing" env:"GUARD_ADMIN_LANDING" env-default:"/admin/articles"`
}

// RateLimit ограничение частоты запросов к /login и /register.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"1"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"3"`
}

// MustLoad функция для загрузки конфига, путь к файлу берётся из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"APIBaseURL: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Gateway:\n"+
			"  Timeout: %s\n"+
			"Session:\n"+
			"  Store: %s\n"+
			"  TTL: %s\n"+
			"  SecureCookies: %t\n"+
			"  Redis: %s (db %d)\n"+
			"Discovery:\n"+
			"  PageSize: %d\n"+
			"  Debounce: %s\n"+
			"  RelatedLimit: %d\n"+
			"  ViewTTL: %s\n"+
			"  MaxViews: %d\n"+
			"Guard:\n"+
			"  LoginPath: %s\n"+
			"  AdminPrefix: %s\n"+
			"  UserLanding: %s\n"+
			"  AdminLanding: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n",
		c.Env,
		c.APIBaseURL,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.GatewayTimeout,
		c.Store,
		c.SessionTTL,
		c.SecureCookies,
		c.AddressRedis,
		c.DB,
		c.PageSize,
		c.Debounce,
		c.RelatedLimit,
		c.ViewTTL,
		c.MaxViews,
		c.LoginPath,
		c.AdminPrefix,
		c.UserLanding,
		c.AdminLanding,
		c.RPS,
		c.Burst,
	)
}
