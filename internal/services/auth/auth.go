// Package auth содержит логику входа и регистрации поверх внешнего REST API пользователей.
//
// Идентичность устанавливается сравнением полей с записью пользователя:
// пароль хранится и сравнивается в открытом виде, токенов нет.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/blog-portal/internal/models"
)

var (
	// ErrUsernameNotFound пользователь с таким именем не найден.
	ErrUsernameNotFound = errors.New("username not found")
	// ErrIncorrectPassword пароль не совпал с сохранённым.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrUsernameExists имя уже занято.
	ErrUsernameExists = errors.New("username already exists")
)

// UserGateway описывает обращения к коллекции пользователей внешнего API.
type UserGateway interface {
	// FindUsersByUsername ищет пользователей по имени; хост может вернуть и неточные совпадения.
	FindUsersByUsername(ctx context.Context, username string) ([]models.User, error)

	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// CreateUser создаёт пользователя и возвращает сохранённую запись.
	CreateUser(ctx context.Context, u models.NewUser) (*models.User, error)
}

// Service отвечает за вход и регистрацию.
type Service struct {
	users UserGateway
}

// NewService создает новый экземпляр Service.
func NewService(users UserGateway) *Service {
	return &Service{users: users}
}

// findExact ищет пользователя с точным (регистрозависимым) совпадением имени.
func (s *Service) findExact(ctx context.Context, username string) (*models.User, error) {
	users, err := s.users.FindUsersByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Login находит пользователя по имени, перечитывает его запись по ID и сравнивает пароль.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	const op = "services.auth.Login"

	found, err := s.findExact(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if found == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUsernameNotFound)
	}

	user, err := s.users.GetUser(ctx, found.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.Password != password {
		return nil, fmt.Errorf("%s: %w", op, ErrIncorrectPassword)
	}
	return user, nil
}

// Register создаёт пользователя, если имя ещё не занято. При занятом имени POST не выполняется.
func (s *Service) Register(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	const op = "services.auth.Register"

	existing, err := s.findExact(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUsernameExists)
	}

	created, err := s.users.CreateUser(ctx, models.NewUser{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}
