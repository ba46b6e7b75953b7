package apperrors

import "net/http"

/*
Предопределенные доменные ошибки. Хендлеры и сервисы возвращают их
как есть либо через WithDetails, маппинг в HTTP-статусы зашит здесь.
*/

// --- Auth ---

// ErrEmailAlreadyExists - email уже занят. По контракту регистрации это
// ошибка валидации (400 с сообщением по полю), а не конфликт.
var ErrEmailAlreadyExists = New(
	CodeValidationFailed,
	"auth",
	"Validation failed",
	http.StatusBadRequest,
).WithDetails(map[string]string{"email": "A user with this email already exists"})

// ErrPasswordMismatch - password и password2 не совпали
var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"auth",
	"Validation failed",
	http.StatusBadRequest,
).WithDetails(map[string]string{"password": "Password fields didn't match"})

// ErrWeakPassword - пароль не прошел политику сложности
var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Validation failed",
	http.StatusBadRequest,
).WithDetails(map[string]string{"password": "Password is too weak: minimum 8 characters, not entirely numeric"})

// ErrInvalidCredentials - неверный email или пароль
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен (auth или reset)
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInvalidUserType - недопустимое значение user_type
var ErrInvalidUserType = New(
	CodeValidationFailed,
	"auth",
	"Validation failed",
	http.StatusBadRequest,
).WithDetails(map[string]string{"user_type": "Must be one of: employee, employer, other"})

// --- Permissions ---

// ErrEmployerOnly - операция доступна только работодателям
var ErrEmployerOnly = New(
	CodeForbidden,
	"auth",
	"Only employers can view this data",
	http.StatusForbidden,
)

// ErrStaffOnly - операция доступна только персоналу
var ErrStaffOnly = New(
	CodeForbidden,
	"auth",
	"Staff access required",
	http.StatusForbidden,
)

// --- Not found ---

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrEmployeeProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Employee profile not found",
	http.StatusNotFound,
)

var ErrEmployerProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Employer profile not found",
	http.StatusNotFound,
)

var ErrServiceNotFound = New(
	CodeNotFound,
	"service",
	"Service not found",
	http.StatusNotFound,
)

// --- Search ---

// ErrInvalidSalaryQuery - salary_expectation не целое число и не диапазон "min-max"
var ErrInvalidSalaryQuery = New(
	CodeValidationFailed,
	"search",
	"Validation failed",
	http.StatusBadRequest,
).WithDetails(map[string]string{"salary_expectation": "Must be an integer or a range like 90000-100000"})
