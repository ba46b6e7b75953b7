package handlers

import (
	"droppcv_backend/internal/services"
	"droppcv_backend/internal/storage"
	"droppcv_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ProfileHandler *ProfileHandler
	SearchHandler  *SearchHandler
	ServiceHandler *ServiceHandler
	UploadHandler  *UploadHandler
}

// NewAppHandlers собирает хэндлеры из контейнера сервисов.
func NewAppHandlers(sc *services.ServiceContainer, st storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService),
		UserHandler:    NewUserHandler(base, sc.UserService),
		ProfileHandler: NewProfileHandler(base, sc.ProfileService),
		SearchHandler:  NewSearchHandler(base, sc.SearchService),
		ServiceHandler: NewServiceHandler(base, sc.CatalogService),
		UploadHandler:  NewUploadHandler(base, st),
	}
}

// RegisterAll регистрирует маршруты всех хэндлеров.
func (h *AppHandlers) RegisterAll(public, protected *gin.RouterGroup) {
	h.AuthHandler.RegisterRoutes(public, protected)
	h.UserHandler.RegisterRoutes(public, protected)
	h.ProfileHandler.RegisterRoutes(public, protected)
	h.SearchHandler.RegisterRoutes(public, protected)
	h.ServiceHandler.RegisterRoutes(public, protected)
	h.UploadHandler.RegisterRoutes(public, protected)
}
