package repositories

import (
	"errors"
	"strings"

	"droppcv_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

// EmployeeSearchCriteria - фильтры поиска по анкетам соискателей.
// Все поля опциональны, активные условия соединяются через AND.
// salary_expectation сюда не входит: он вычисляется в сервисе поверх выборки.
type EmployeeSearchCriteria struct {
	Location       string
	Country        string
	ServiceID      string
	WorkExperience string
}

type ProfileRepository interface {
	// EmployeeProfile operations
	CreateEmployeeProfile(db *gorm.DB, profile *models.EmployeeProfile) error
	FindEmployeeProfileByUserID(db *gorm.DB, userID string) (*models.EmployeeProfile, error)
	UpdateEmployeeProfile(db *gorm.DB, profile *models.EmployeeProfile) error
	FilterEmployeeProfiles(db *gorm.DB, criteria EmployeeSearchCriteria) ([]models.EmployeeProfile, error)

	// EmployerProfile operations
	CreateEmployerProfile(db *gorm.DB, profile *models.EmployerProfile) error
	FindEmployerProfileByUserID(db *gorm.DB, userID string) (*models.EmployerProfile, error)
	UpdateEmployerProfile(db *gorm.DB, profile *models.EmployerProfile) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// EmployeeProfile operations

func (r *ProfileRepositoryImpl) CreateEmployeeProfile(db *gorm.DB, profile *models.EmployeeProfile) error {
	var existing models.EmployeeProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}

	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindEmployeeProfileByUserID(db *gorm.DB, userID string) (*models.EmployeeProfile, error) {
	var profile models.EmployeeProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateEmployeeProfile(db *gorm.DB, profile *models.EmployeeProfile) error {
	// Updates через карту, чтобы service_id мог быть сброшен в NULL
	result := db.Model(profile).Updates(map[string]interface{}{
		"cv":                 profile.CV,
		"location":           profile.Location,
		"country":            profile.Country,
		"service_id":         profile.ServiceID,
		"work_experience":    profile.WorkExperience,
		"salary_expectation": profile.SalaryExpectation,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) FilterEmployeeProfiles(db *gorm.DB, criteria EmployeeSearchCriteria) ([]models.EmployeeProfile, error) {
	var profiles []models.EmployeeProfile
	query := db.Model(&models.EmployeeProfile{})

	// LOWER(...) LIKE вместо ILIKE, чтобы запрос работал на любом драйвере
	if criteria.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", contains(criteria.Location))
	}
	if criteria.Country != "" {
		query = query.Where("LOWER(country) LIKE ?", contains(criteria.Country))
	}
	if criteria.ServiceID != "" {
		query = query.Where("service_id = ?", criteria.ServiceID)
	}
	if criteria.WorkExperience != "" {
		query = query.Where("LOWER(work_experience) LIKE ?", contains(criteria.WorkExperience))
	}

	err := query.Find(&profiles).Error
	return profiles, err
}

func contains(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// EmployerProfile operations

func (r *ProfileRepositoryImpl) CreateEmployerProfile(db *gorm.DB, profile *models.EmployerProfile) error {
	var existing models.EmployerProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}

	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindEmployerProfileByUserID(db *gorm.DB, userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateEmployerProfile(db *gorm.DB, profile *models.EmployerProfile) error {
	result := db.Model(profile).Updates(map[string]interface{}{
		"company_name":     profile.CompanyName,
		"current_position": profile.CurrentPosition,
		"certificate":      profile.Certificate,
		"work_experience":  profile.WorkExperience,
		"location":         profile.Location,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
