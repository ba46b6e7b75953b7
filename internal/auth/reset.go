package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const resetPurpose = "password_reset"

// ResetClaims - claims короткоживущего токена сброса пароля
type ResetClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateResetToken выпускает подписанный токен сброса пароля.
// Токен stateless: ничего не пишем в БД, проверяем подпись и срок.
func GenerateResetToken(userID, secret string, ttl time.Duration) (string, error) {
	claims := &ResetClaims{
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseResetToken проверяет токен сброса и возвращает userID.
func ParseResetToken(tokenStr, secret string) (string, error) {
	claims := &ResetClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired reset token")
	}
	if claims.Purpose != resetPurpose {
		return "", errors.New("invalid token purpose")
	}
	if claims.Subject == "" {
		return "", errors.New("invalid token subject")
	}
	return claims.Subject, nil
}
