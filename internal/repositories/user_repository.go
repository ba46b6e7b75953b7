package repositories

import (
	"errors"
	"time"

	"droppcv_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	EmailTaken(db *gorm.DB, email, excludeUserID string) (bool, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	FindByType(db *gorm.DB, userType models.UserType) ([]models.User, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.User, error)
	Delete(db *gorm.DB, userID string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("EmployeeProfile").Preload("EmployerProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("EmployeeProfile").Preload("EmployerProfile").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// EmailTaken проверяет занятость email. excludeUserID нужен при смене
// email в профиле: свой собственный адрес занятым не считается.
func (r *UserRepositoryImpl) EmailTaken(db *gorm.DB, email, excludeUserID string) (bool, error) {
	var count int64
	query := db.Model(&models.User{}).Where("email = ?", email)
	if excludeUserID != "" {
		query = query.Where("id <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	result := db.Model(user).Updates(map[string]interface{}{
		"email":         user.Email,
		"name":          user.Name,
		"user_type":     user.UserType,
		"avatar":        user.Avatar,
		"password_hash": user.PasswordHash,
		"is_active":     user.IsActive,
		"is_staff":      user.IsStaff,
		"is_superuser":  user.IsSuperuser,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindByType(db *gorm.DB, userType models.UserType) ([]models.User, error) {
	var users []models.User
	err := db.Preload("EmployeeProfile").Preload("EmployerProfile").
		Where("user_type = ?", userType).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	var users []models.User
	err := db.Preload("EmployeeProfile").Preload("EmployerProfile").
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	// Удаляем токен и профили вместе с пользователем
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.EmployeeProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.EmployerProfile{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
