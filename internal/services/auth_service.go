package services

import (
	"fmt"
	"time"

	"droppcv_backend/internal/auth"
	"droppcv_backend/internal/config"
	"droppcv_backend/internal/email"
	"droppcv_backend/internal/logger"
	"droppcv_backend/internal/models"
	"droppcv_backend/internal/repositories"
	"droppcv_backend/internal/services/dto"
	"droppcv_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, userID string) error
	ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
	RequestPasswordReset(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	tokenRepo     repositories.TokenRepository
	emailProvider email.Provider
	cfg           *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	tokenRepo repositories.TokenRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		tokenRepo:     tokenRepo,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

// Register - регистрация нового пользователя.
// Пользователь, анкета и токен создаются в одной транзакции.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// Совпадение паролей проверяем до любых запросов к БД
	if req.Password != req.Password2 {
		return nil, apperrors.ErrPasswordMismatch
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	userType := models.UserType(req.UserType)
	if !userType.Valid() {
		return nil, apperrors.ErrInvalidUserType
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		UserType:     userType,
		IsActive:     true,
		Avatar:       req.Avatar,
	}

	var token *models.AuthToken

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}

		switch userType {
		case models.UserTypeEmployee:
			if err := s.profileRepo.CreateEmployeeProfile(tx, &models.EmployeeProfile{UserID: user.ID}); err != nil {
				return apperrors.InternalError(err)
			}
		case models.UserTypeEmployer:
			if err := s.profileRepo.CreateEmployerProfile(tx, &models.EmployerProfile{UserID: user.ID}); err != nil {
				return apperrors.InternalError(err)
			}
		}
		// UserTypeOther живет без анкеты

		token, err = s.tokenRepo.GetOrCreate(tx, user.ID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(user.Email, user.Name)

	created, err := s.userRepo.FindByID(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RegisterResponse{
		User:  dto.NewUserResponse(created),
		Token: token.Key,
	}, nil
}

// Login - аутентификация пользователя. Повторный вход возвращает
// тот же токен (get-or-create).
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenRepo.GetOrCreate(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token:    token.Key,
		UserType: string(user.UserType),
	}, nil
}

// Logout удаляет токен пользователя. Повторный вызов не ошибка.
func (s *AuthServiceImpl) Logout(db *gorm.DB, userID string) error {
	if err := s.tokenRepo.DeleteByUserID(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ChangePassword - смена пароля с проверкой текущего
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashed
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset отправляет письмо со ссылкой для сброса.
// Ответ одинаков для существующих и несуществующих адресов.
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	ttl := time.Duration(s.cfg.Auth.ResetTTLMinutes) * time.Minute
	token, err := auth.GenerateResetToken(user.ID, s.cfg.Auth.ResetSecret, ttl)
	if err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.BaseURL, token)

	go func() {
		if err := s.emailProvider.SendPasswordReset(user.Email, resetURL); err != nil {
			logger.WithError(err).Error("failed to send password reset email", "email", user.Email)
		}
	}()

	return nil
}

// ResetPassword проверяет токен сброса, устанавливает новый пароль
// и отзывает токен доступа пользователя.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	userID, err := auth.ParseResetToken(token, s.cfg.Auth.ResetSecret)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(tx, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrInvalidToken
			}
			return apperrors.InternalError(err)
		}

		user.PasswordHash = hashed
		if err := s.userRepo.Update(tx, user); err != nil {
			return apperrors.InternalError(err)
		}

		// Смена пароля разлогинивает активную сессию
		if err := s.tokenRepo.DeleteByUserID(tx, user.ID); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
}

func (s *AuthServiceImpl) sendWelcomeEmail(to, name string) {
	go func() {
		if err := s.emailProvider.SendWelcome(to, name); err != nil {
			logger.WithError(err).Error("failed to send welcome email", "email", to)
		}
	}()
}
