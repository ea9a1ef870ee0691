// Package models содержит доменные модели сервиса объявлений:
// пользователей, объявления и связанные вспомогательные типы.
package models

import "time"

// Роли пользователей.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    `json:"id"`        // Уникальный идентификатор пользователя
	FullName     string    `json:"fullName"`  // Полное имя
	Email        string    `json:"email"`     // Электронная почта (хранится в нижнем регистре)
	PasswordHash string    `json:"-"`         // Хэш пароля, наружу не отдается
	Role         string    `json:"role"`      // Роль: user или moderator
	CreatedAt    time.Time `json:"createdAt"` // Дата регистрации
}

// Identity описывает аутентифицированного пользователя запроса,
// восстановленного из сессионного токена.
type Identity struct {
	UID   string
	Email string
	Role  string
}

// IsModerator сообщает, имеет ли идентичность роль модератора.
func (i Identity) IsModerator() bool {
	return i.Role == RoleModerator
}
