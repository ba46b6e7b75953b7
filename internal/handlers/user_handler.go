package handlers

import (
	"net/http"

	"droppcv_backend/internal/models"
	"droppcv_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.GET("/me", h.Me)
	protected.GET("/user/:id", h.GetByID)
	protected.GET("/employees", h.ListEmployees)
	protected.GET("/employers", h.ListEmployers)
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.userService.Me(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.userService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) ListEmployees(c *gin.Context) {
	h.listByType(c, models.UserTypeEmployee)
}

func (h *UserHandler) ListEmployers(c *gin.Context) {
	h.listByType(c, models.UserTypeEmployer)
}

func (h *UserHandler) listByType(c *gin.Context, userType models.UserType) {
	db := h.GetDB(c)

	responses, err := h.userService.ListByType(db, userType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}
