package services

import (
	"droppcv_backend/internal/models"
	"droppcv_backend/internal/repositories"
	"droppcv_backend/internal/services/dto"
	"droppcv_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	UpdateUserCore(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdateEmployee(db *gorm.DB, userID string, req *dto.UpdateEmployeeProfileRequest) (*dto.UserResponse, error)
	UpdateEmployer(db *gorm.DB, userID string, req *dto.UpdateEmployerProfileRequest) (*dto.UserResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	serviceRepo repositories.ServiceRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	serviceRepo repositories.ServiceRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		serviceRepo: serviceRepo,
	}
}

// UpdateUserCore - частичное обновление базовых полей пользователя.
// Обновляются только переданные поля, остальные не трогаются.
func (s *ProfileServiceImpl) UpdateUserCore(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var updated *models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(tx, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.InternalError(err)
		}

		if err := s.applyUserPatch(tx, user, req); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.freshResponse(db, updated.ID)
}

// UpdateEmployee обновляет анкету соискателя и, опционально, вложенные
// базовые поля пользователя. Оба шага в одной транзакции: сбой на
// анкете откатывает и изменения пользователя.
func (s *ProfileServiceImpl) UpdateEmployee(db *gorm.DB, userID string, req *dto.UpdateEmployeeProfileRequest) (*dto.UserResponse, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(tx, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.InternalError(err)
		}

		profile, err := s.profileRepo.FindEmployeeProfileByUserID(tx, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return apperrors.ErrEmployeeProfileNotFound
			}
			return apperrors.InternalError(err)
		}

		if req.User != nil {
			if err := s.applyUserPatch(tx, user, req.User); err != nil {
				return err
			}
		}

		if req.CV != nil {
			profile.CV = *req.CV
		}
		if req.Location != nil {
			profile.Location = *req.Location
		}
		if req.Country != nil {
			profile.Country = *req.Country
		}
		if req.ServiceID != nil {
			if *req.ServiceID == "" {
				profile.ServiceID = nil
			} else {
				if _, err := s.serviceRepo.FindByID(tx, *req.ServiceID); err != nil {
					if apperrors.Is(err, repositories.ErrServiceNotFound) {
						return apperrors.ErrServiceNotFound
					}
					return apperrors.InternalError(err)
				}
				profile.ServiceID = req.ServiceID
			}
		}
		if req.WorkExperience != nil {
			profile.WorkExperience = *req.WorkExperience
		}
		if req.SalaryExpectation != nil {
			profile.SalaryExpectation = *req.SalaryExpectation
		}

		if err := s.profileRepo.UpdateEmployeeProfile(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.freshResponse(db, userID)
}

// UpdateEmployer обновляет анкету работодателя, симметрично UpdateEmployee
func (s *ProfileServiceImpl) UpdateEmployer(db *gorm.DB, userID string, req *dto.UpdateEmployerProfileRequest) (*dto.UserResponse, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(tx, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.InternalError(err)
		}

		profile, err := s.profileRepo.FindEmployerProfileByUserID(tx, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return apperrors.ErrEmployerProfileNotFound
			}
			return apperrors.InternalError(err)
		}

		if req.User != nil {
			if err := s.applyUserPatch(tx, user, req.User); err != nil {
				return err
			}
		}

		if p := req.EmployerProfile; p != nil {
			if p.CompanyName != nil {
				profile.CompanyName = *p.CompanyName
			}
			if p.CurrentPosition != nil {
				profile.CurrentPosition = *p.CurrentPosition
			}
			if p.Certificate != nil {
				profile.Certificate = *p.Certificate
			}
			if p.WorkExperience != nil {
				profile.WorkExperience = *p.WorkExperience
			}
			if p.Location != nil {
				profile.Location = *p.Location
			}

			if err := s.profileRepo.UpdateEmployerProfile(tx, profile); err != nil {
				return apperrors.InternalError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.freshResponse(db, userID)
}

// applyUserPatch переносит переданные поля в модель и сохраняет.
// Смена email заново проверяет уникальность.
func (s *ProfileServiceImpl) applyUserPatch(tx *gorm.DB, user *models.User, req *dto.UpdateUserRequest) error {
	if req.Empty() {
		return nil
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailTaken(tx, *req.Email, user.ID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if taken {
			return apperrors.ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.UserType != nil {
		userType := models.UserType(*req.UserType)
		if !userType.Valid() {
			return apperrors.ErrInvalidUserType
		}
		user.UserType = userType
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := s.userRepo.Update(tx, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) freshResponse(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
