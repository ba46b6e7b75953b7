package services

import (
	"droppcv_backend/internal/config"
	"droppcv_backend/internal/email"
	"droppcv_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ProfileService ProfileService
	SearchService  SearchService
	CatalogService CatalogService
	EmailService   email.Provider
}

// NewServiceContainer собирает сервисы из репозиториев и провайдеров.
func NewServiceContainer(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	serviceRepo repositories.ServiceRepository,
	tokenRepo repositories.TokenRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) *ServiceContainer {
	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo, profileRepo, tokenRepo, emailProvider, cfg),
		UserService:    NewUserService(userRepo),
		ProfileService: NewProfileService(userRepo, profileRepo, serviceRepo),
		SearchService:  NewSearchService(userRepo, profileRepo),
		CatalogService: NewCatalogService(serviceRepo),
		EmailService:   emailProvider,
	}
}
