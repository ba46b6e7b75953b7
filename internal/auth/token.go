package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateTokenKey генерирует непрозрачный ключ токена доступа:
// 20 случайных байт в hex (40 символов).
func GenerateTokenKey() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
