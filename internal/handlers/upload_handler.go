package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"droppcv_backend/internal/storage"
	"droppcv_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Максимальный размер загружаемого файла (10 MB)
const maxUploadSize = 10 << 20

type UploadHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewUploadHandler(base *BaseHandler, st storage.Storage) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		storage:     st,
	}
}

func (h *UploadHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.POST("/uploads", h.Upload)
}

// Upload принимает multipart-файл и возвращает ссылку на него.
// Клиент кладет ее в avatar, cv или qualification_certificate.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing 'file' form field"))
		return
	}

	if fileHeader.Size > maxUploadSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File exceeds the 10 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	path := fmt.Sprintf("%s/%d_%s%s", userID, time.Now().Unix(), uuid.NewString(), ext)

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.storage.Save(c.Request.Context(), path, file, contentType); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	url, err := h.storage.GetURL(c.Request.Context(), path)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": path,
		"url":  url,
	})
}
