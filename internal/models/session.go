package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Session проекция пользователя, которая живёт на стороне клиента между запросами.
type Session struct {
	UserID   string
	Username string
	Password string
	Role     Role
	LoggedIn bool
}

// NewSession создаёт сессию для пользователя, прошедшего проверку пароля.
func NewSession(u User) Session {
	return Session{
		UserID:   u.ID,
		Username: u.Username,
		Password: u.Password,
		Role:     u.Role,
		LoggedIn: true,
	}
}

// IsAdmin сообщает, что сессия активна и принадлежит администратору.
func (s Session) IsAdmin() bool {
	return s.LoggedIn && s.Role == RoleAdmin
}

// Initial первая буква имени в верхнем регистре, "?" если имени нет.
func (s Session) Initial() string {
	name := strings.TrimSpace(s.Username)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// Key идентификатор владельца сессии: ID пользователя, а если его нет, имя.
func (s Session) Key() string {
	if s.UserID != "" {
		return s.UserID
	}
	return s.Username
}
