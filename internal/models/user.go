// Package models содержит доменные структуры портала: пользователя, сессию,
// статью и категорию. Пароли хранятся и сравниваются в открытом виде,
// так их отдаёт внешний REST API.
package models

import "strings"

// Role роль пользователя, определяет доступное поддерево маршрутов.
type Role string

const (
	// RoleUser обычный читатель.
	RoleUser Role = "user"
	// RoleAdmin администратор.
	RoleAdmin Role = "admin"
)

// ParseRole приводит значение к одной из известных ролей без учёта регистра.
// Форма регистрации присылает "User"/"Admin", внешний API и guard работают с нижним регистром.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User представляет пользователя, как его хранит внешний API.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"` // Имя пользователя (уникальное, регистр важен)
	Password string `json:"password"` // Пароль в открытом виде
	Role     Role   `json:"role"`
}

// NewUser тело запроса на создание пользователя.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
