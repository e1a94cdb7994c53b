package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// KV хранилище значений с временем жизни, его реализует cache.Cache.
type KV interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

type record struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// RedisStore хранит сессию на сервере под непрозрачным идентификатором из cookie sid.
// Флаг входа и роль дополнительно пишутся в cookie для edge guard.
type RedisStore struct {
	kv   KV
	opts CookieOptions
}

// NewRedisStore создаёт RedisStore.
func NewRedisStore(kv KV, opts CookieOptions) *RedisStore {
	return &RedisStore{kv: kv, opts: opts}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Load читает сессию по sid. Неизвестный или истёкший sid — нулевая сессия.
func (s *RedisStore) Load(r *http.Request) (models.Session, error) {
	const op = "session.RedisStore.Load"

	id := cookieValue(r, KeySessionID)
	if id == "" {
		return models.Session{}, nil
	}
	var rec record
	found, err := s.kv.Get(r.Context(), sessionKey(id), &rec)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.Session{}, nil
	}
	return models.Session{
		UserID:   rec.UserID,
		Username: rec.Username,
		Password: rec.Password,
		Role:     parseRole(string(rec.Role)),
		LoggedIn: true,
	}, nil
}

// Save создаёт новую запись сессии и выставляет cookie. Прежняя запись клиента удаляется.
func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, sess models.Session) error {
	const op = "session.RedisStore.Save"

	if !sess.LoggedIn {
		return s.Clear(w, r)
	}
	if old := cookieValue(r, KeySessionID); old != "" {
		if err := s.kv.Invalidate(r.Context(), sessionKey(old)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	id := uuid.NewString()
	rec := record{
		UserID:   sess.UserID,
		Username: sess.Username,
		Password: sess.Password,
		Role:     sess.Role,
	}
	if err := s.kv.Set(r.Context(), sessionKey(id), rec, s.opts.TTL); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	http.SetCookie(w, s.opts.cookie(KeySessionID, id))
	s.opts.writeEdgeCookies(w, sess)
	return nil
}

// Clear удаляет запись сессии и cookie.
func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	const op = "session.RedisStore.Clear"

	for _, name := range []string{KeySessionID, KeyLoggedIn, KeyRole} {
		http.SetCookie(w, s.opts.expired(name))
	}
	if id := cookieValue(r, KeySessionID); id != "" {
		if err := s.kv.Invalidate(r.Context(), sessionKey(id)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
