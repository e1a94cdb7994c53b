// Package guard содержит единую политику доступа к маршрутам портала
// и два слоя, которые её применяют: edge guard по cookie запроса
// и клиентские обёртки по сессии из хранилища.
package guard

import (
	"strings"

	"github.com/magabrotheeeer/blog-portal/internal/config"
	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// Credentials то, что guard знает о посетителе.
type Credentials struct {
	LoggedIn bool
	Role     models.Role
}

// Decision результат проверки: пропустить или перенаправить.
type Decision struct {
	Allow    bool
	Redirect string
}

// Policy правила доступа.
type Policy struct {
	LoginPath    string
	AdminPrefix  string
	UserLanding  string
	AdminLanding string
	PublicPaths  []string
}

// NewPolicy собирает Policy из конфига. Публичные пути: "/", страница входа и "/register".
func NewPolicy(cfg config.Guard) Policy {
	return Policy{
		LoginPath:    cfg.LoginPath,
		AdminPrefix:  cfg.AdminPrefix,
		UserLanding:  cfg.UserLanding,
		AdminLanding: cfg.AdminLanding,
		PublicPaths:  []string{"/", cfg.LoginPath, "/register"},
	}
}

// Landing стартовая страница для роли.
func (p Policy) Landing(role models.Role) string {
	if role == models.RoleAdmin {
		return p.AdminLanding
	}
	return p.UserLanding
}

// IsPublic путь доступен без входа.
func (p Policy) IsPublic(path string) bool {
	for _, public := range p.PublicPaths {
		if path == public {
			return true
		}
	}
	return false
}

// IsAdminPath путь относится к поддереву администратора.
func (p Policy) IsAdminPath(path string) bool {
	return path == p.AdminPrefix || strings.HasPrefix(path, p.AdminPrefix+"/")
}

// Evaluate решает, можно ли открыть path.
//
//   - публичные пути открыты; вошедший пользователь с /login и /register
//     отправляется на стартовую страницу своей роли, "/" открыт всем;
//   - остальные пути требуют входа, иначе перенаправление на страницу входа;
//   - поддерево администратора требует роль admin, иначе стартовая страница пользователя.
func (p Policy) Evaluate(path string, c Credentials) Decision {
	if p.IsPublic(path) {
		if c.LoggedIn && path != "/" {
			return Decision{Redirect: p.Landing(c.Role)}
		}
		return Decision{Allow: true}
	}
	if !c.LoggedIn {
		return Decision{Redirect: p.LoginPath}
	}
	if p.IsAdminPath(path) && c.Role != models.RoleAdmin {
		return Decision{Redirect: p.UserLanding}
	}
	return Decision{Allow: true}
}
