package middleware

import (
	"net/http"
	"strings"

	"droppcv_backend/internal/logger"
	"droppcv_backend/internal/models"
	"droppcv_backend/internal/repositories"
	"droppcv_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware - проверка непрозрачного токена из заголовка Authorization.
// Токен ищется в БД; ставится после DBMiddleware.
func AuthMiddleware(tokenRepo repositories.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")

		dbVal, exists := c.Get(string(contextkeys.DBContextKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		db := dbVal.(*gorm.DB)

		token, err := tokenRepo.FindByKey(db, key)
		if err != nil || token.User == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Сохраняем данные пользователя в контекст
		c.Set("userID", token.UserID)
		c.Set("userType", token.User.UserType)
		c.Set("isStaff", token.User.IsStaff)

		ctx := logger.WithUserID(c.Request.Context(), token.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware - ограничение по типу аккаунта
func RoleMiddleware(requiredType models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		typeVal, exists := c.Get("userType")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no user type"})
			return
		}

		userType, ok := typeVal.(models.UserType)
		if !ok {
			typeStr, isString := typeVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid user type"})
				return
			}
			userType = models.UserType(typeStr)
		}

		if userType != requiredType {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// StaffMiddleware - только для персонала
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isStaff, exists := c.Get("isStaff")
		if !exists || isStaff != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetUserType извлекает тип аккаунта из контекста
func GetUserType(c *gin.Context) models.UserType {
	typeVal, exists := c.Get("userType")
	if !exists {
		return ""
	}

	userType, ok := typeVal.(models.UserType)
	if !ok {
		return ""
	}

	return userType
}
