// Package session — единственная точка чтения и записи клиентской сессии.
//
// Обработчики получают сессию из контекста запроса (FromContext), а сохраняют
// и очищают её только через Repository. Значения хранятся открытым текстом,
// включая пароль: так устроена модель аутентификации внешнего API.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// Ключи, под которыми сессия хранится на клиенте.
const (
	KeyLoggedIn  = "isLoggedIn"
	KeyUsername  = "username"
	KeyPassword  = "password"
	KeyRole      = "role"
	KeyUserID    = "userId"
	KeySessionID = "sid"
)

// ErrNoSession запрос выполнен без активной сессии.
var ErrNoSession = errors.New("no active session")

// Repository читает, сохраняет и удаляет сессию запроса.
// Отсутствующая или неполная сессия читается как нулевая (не залогинен).
type Repository interface {
	Load(r *http.Request) (models.Session, error)
	Save(w http.ResponseWriter, r *http.Request, s models.Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type ctxKey struct{}

// WithSession кладёт сессию в контекст.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext возвращает сессию из контекста или нулевую сессию.
func FromContext(ctx context.Context) models.Session {
	s, _ := ctx.Value(ctxKey{}).(models.Session)
	return s
}

// Require возвращает активную сессию или ErrNoSession.
func Require(ctx context.Context) (models.Session, error) {
	s := FromContext(ctx)
	if !s.LoggedIn {
		return models.Session{}, ErrNoSession
	}
	return s, nil
}

// CookieOptions параметры cookie сессии.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

func (o CookieOptions) cookie(name, value string) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if o.TTL > 0 {
		c.MaxAge = int(o.TTL.Seconds())
	}
	return c
}

func (o CookieOptions) expired(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// writeEdgeCookies выставляет флаг входа и роль, которые читает edge guard.
func (o CookieOptions) writeEdgeCookies(w http.ResponseWriter, s models.Session) {
	http.SetCookie(w, o.cookie(KeyLoggedIn, "true"))
	http.SetCookie(w, o.cookie(KeyRole, string(s.Role)))
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func parseRole(s string) models.Role {
	role, ok := models.ParseRole(s)
	if !ok {
		return ""
	}
	return role
}
