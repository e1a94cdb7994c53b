package session

import (
	"net/http"

	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// CookieStore хранит все поля сессии в отдельных cookie.
type CookieStore struct {
	opts CookieOptions
}

// NewCookieStore создаёт CookieStore.
func NewCookieStore(opts CookieOptions) *CookieStore {
	return &CookieStore{opts: opts}
}

// Load читает сессию из cookie. Сессия активна только при isLoggedIn == "true".
func (s *CookieStore) Load(r *http.Request) (models.Session, error) {
	if cookieValue(r, KeyLoggedIn) != "true" {
		return models.Session{}, nil
	}
	return models.Session{
		UserID:   cookieValue(r, KeyUserID),
		Username: cookieValue(r, KeyUsername),
		Password: cookieValue(r, KeyPassword),
		Role:     parseRole(cookieValue(r, KeyRole)),
		LoggedIn: true,
	}, nil
}

// Save записывает сессию. Неактивная сессия очищает cookie.
func (s *CookieStore) Save(w http.ResponseWriter, r *http.Request, sess models.Session) error {
	if !sess.LoggedIn {
		return s.Clear(w, r)
	}
	s.opts.writeEdgeCookies(w, sess)
	http.SetCookie(w, s.opts.cookie(KeyUserID, sess.UserID))
	http.SetCookie(w, s.opts.cookie(KeyUsername, sess.Username))
	http.SetCookie(w, s.opts.cookie(KeyPassword, sess.Password))
	return nil
}

// Clear удаляет все cookie сессии.
func (s *CookieStore) Clear(w http.ResponseWriter, _ *http.Request) error {
	for _, name := range []string{KeyLoggedIn, KeyRole, KeyUserID, KeyUsername, KeyPassword} {
		http.SetCookie(w, s.opts.expired(name))
	}
	return nil
}
