package repositories

import (
	"errors"

	"droppcv_backend/internal/auth"
	"droppcv_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("token not found")

type TokenRepository interface {
	// GetOrCreate возвращает существующий токен пользователя либо создает
	// новый. Повторный логин получает тот же ключ (ротации нет).
	GetOrCreate(db *gorm.DB, userID string) (*models.AuthToken, error)
	FindByKey(db *gorm.DB, key string) (*models.AuthToken, error)
	DeleteByUserID(db *gorm.DB, userID string) error
}

type TokenRepositoryImpl struct{}

func NewTokenRepository() TokenRepository {
	return &TokenRepositoryImpl{}
}

func (r *TokenRepositoryImpl) GetOrCreate(db *gorm.DB, userID string) (*models.AuthToken, error) {
	var token models.AuthToken
	err := db.First(&token, "user_id = ?", userID).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := auth.GenerateTokenKey()
	if err != nil {
		return nil, err
	}

	token = models.AuthToken{
		Key:    key,
		UserID: userID,
	}
	if err := db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepositoryImpl) FindByKey(db *gorm.DB, key string) (*models.AuthToken, error) {
	var token models.AuthToken
	err := db.Preload("User").First(&token, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// DeleteByUserID удаляет токен пользователя. Отсутствие токена не ошибка:
// logout идемпотентен.
func (r *TokenRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error
}
