package dto

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
	Name      string `json:"name" validate:"required"`
	UserType  string `json:"user_type" validate:"required,is-user-type"`
	Avatar    string `json:"avatar"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ на вход: непрозрачный токен и тип аккаунта
type LoginResponse struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
}

// RegisterResponse - ответ на регистрацию
type RegisterResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ChangePasswordRequest - смена пароля авторизованным пользователем
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// PasswordResetRequest - запрос письма для сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm - подтверждение сброса пароля по токену из письма
type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}
