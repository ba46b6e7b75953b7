package dto

import (
	"time"

	"droppcv_backend/internal/models"
)

// UpdateUserRequest - частичное обновление базовых полей пользователя.
// nil означает "поле не передано, не трогать".
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	UserType *string `json:"user_type" validate:"omitempty,is-user-type"`
	Avatar   *string `json:"avatar"`
}

// Empty сообщает, что запрос не содержит ни одного поля.
func (r *UpdateUserRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.UserType == nil && r.Avatar == nil
}

// UserResponse - публичное представление пользователя
type UserResponse struct {
	ID              string                  `json:"id"`
	Email           string                  `json:"email"`
	Name            string                  `json:"name"`
	UserType        string                  `json:"user_type"`
	Avatar          string                  `json:"avatar,omitempty"`
	IsActive        bool                    `json:"is_active"`
	CreatedAt       time.Time               `json:"created_at"`
	EmployeeProfile *models.EmployeeProfile `json:"employee_profile,omitempty"`
	EmployerProfile *models.EmployerProfile `json:"employer_profile,omitempty"`
}

// NewUserResponse строит ответ из модели с подгруженными профилями.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		UserType:        string(user.UserType),
		Avatar:          user.Avatar,
		IsActive:        user.IsActive,
		CreatedAt:       user.CreatedAt,
		EmployeeProfile: user.EmployeeProfile,
		EmployerProfile: user.EmployerProfile,
	}
}

// NewUserResponseList строит список ответов
func NewUserResponseList(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}
	return responses
}
