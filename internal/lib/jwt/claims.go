// Package jwt реализует генерацию и парсинг сессионных JWT токенов
// с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки токенов, привязанных
// к идентификатору пользователя, его email и роли.
// MakerImpl — конкретная реализация на секретном ключе HS256 и сроке жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает токен для пользователя с указанными uid, email и ролью.
	GenerateToken(uid, email, role string) (string, error)
	// ParseToken возвращает *CustomClaims, если токен валиден и не истек.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
