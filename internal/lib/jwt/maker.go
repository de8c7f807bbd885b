// Package jwt реализует выпуск и проверку подписанных сессионных токенов.
//
// Maker определяет интерфейс для создания и проверки токена, несущего
// идентификатор пользователя. MakerImpl — конкретная реализация с
// использованием секретного ключа и срока жизни.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для выпуска и парсинга сессионных токенов.
type Maker interface {
	// GenerateToken выпускает токен с зашитым идентификатором пользователя.
	GenerateToken(userUID string) (string, error)
	// ParseToken проверяет подпись и срок токена, возвращает *CustomClaims.
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
