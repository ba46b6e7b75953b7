package handlers

import (
	"net/http"

	"droppcv_backend/internal/middleware"
	"droppcv_backend/internal/services"
	"droppcv_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewServiceHandler(base *BaseHandler, catalogService services.CatalogService) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

// RegisterRoutes: чтение справочника публичное, изменения только для персонала
func (h *ServiceHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/services", h.List)

	staff := protected.Group("")
	staff.Use(middleware.StaffMiddleware())
	{
		staff.POST("/services", h.Create)
		staff.PUT("/services/:id", h.Update)
		staff.DELETE("/services/:id", h.Delete)
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	services, err := h.catalogService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	service, err := h.catalogService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.ServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	service, err := h.catalogService.Update(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.catalogService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
