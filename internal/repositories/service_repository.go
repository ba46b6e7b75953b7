package repositories

import (
	"errors"

	"droppcv_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository - CRUD справочника услуг.
type ServiceRepository interface {
	FindAll(db *gorm.DB) ([]models.Service, error)
	FindByID(db *gorm.DB, id string) (*models.Service, error)
	Create(db *gorm.DB, service *models.Service) error
	Update(db *gorm.DB, service *models.Service) error
	Delete(db *gorm.DB, id string) error
}

type ServiceRepositoryImpl struct{}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{}
}

func (r *ServiceRepositoryImpl) FindAll(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Order("name ASC").Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) Create(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

func (r *ServiceRepositoryImpl) Update(db *gorm.DB, service *models.Service) error {
	result := db.Model(service).Updates(map[string]interface{}{
		"name":        service.Name,
		"description": service.Description,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// Delete удаляет услугу. У анкет, ссылавшихся на нее, service_id
// обнуляется (ON DELETE SET NULL на уровне схемы, плюс явное
// обновление для драйверов без включенных внешних ключей).
func (r *ServiceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.EmployeeProfile{}).
			Where("service_id = ?", id).
			Update("service_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Service{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrServiceNotFound
		}
		return nil
	})
}
