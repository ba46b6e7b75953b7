package services

import (
	"droppcv_backend/internal/models"
	"droppcv_backend/internal/repositories"
	"droppcv_backend/internal/services/dto"
	"droppcv_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CatalogService - справочник услуг. Чтение публичное,
// изменения доступны только персоналу (проверяется в middleware).
type CatalogService interface {
	List(db *gorm.DB) ([]models.Service, error)
	Get(db *gorm.DB, id string) (*models.Service, error)
	Create(db *gorm.DB, req *dto.ServiceRequest) (*models.Service, error)
	Update(db *gorm.DB, id string, req *dto.ServiceRequest) (*models.Service, error)
	Delete(db *gorm.DB, id string) error
}

type CatalogServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &CatalogServiceImpl{
		serviceRepo: serviceRepo,
	}
}

func (s *CatalogServiceImpl) List(db *gorm.DB) ([]models.Service, error) {
	services, err := s.serviceRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return services, nil
}

func (s *CatalogServiceImpl) Get(db *gorm.DB, id string) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) Create(db *gorm.DB, req *dto.ServiceRequest) (*models.Service, error) {
	service := &models.Service{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.serviceRepo.Create(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) Update(db *gorm.DB, id string, req *dto.ServiceRequest) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	service.Name = req.Name
	service.Description = req.Description
	if err := s.serviceRepo.Update(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := s.serviceRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
