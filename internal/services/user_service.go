package services

import (
	"droppcv_backend/internal/models"
	"droppcv_backend/internal/repositories"
	"droppcv_backend/internal/services/dto"
	"droppcv_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	Me(db *gorm.DB, userID string) (*dto.UserResponse, error)
	GetByID(db *gorm.DB, id string) (*dto.UserResponse, error)
	ListByType(db *gorm.DB, userType models.UserType) ([]dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// Me возвращает профиль текущего пользователя
func (s *UserServiceImpl) Me(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	return s.GetByID(db, userID)
}

// GetByID возвращает пользователя с подгруженными анкетами
func (s *UserServiceImpl) GetByID(db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ListByType возвращает всех пользователей заданного типа
func (s *UserServiceImpl) ListByType(db *gorm.DB, userType models.UserType) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindByType(db, userType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponseList(users), nil
}
