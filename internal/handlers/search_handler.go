package handlers

import (
	"net/http"

	"droppcv_backend/internal/middleware"
	"droppcv_backend/internal/services"
	"droppcv_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.GET("/employee/search", h.SearchEmployees)
}

// SearchEmployees - поиск соискателей. Тип аккаунта проверяет сервис,
// поэтому не-работодатель получает 403 при любых параметрах.
func (h *SearchHandler) SearchEmployees(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.SearchEmployeesRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	responses, err := h.searchService.SearchEmployees(db, middleware.GetUserType(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}
