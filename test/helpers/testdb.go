package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"droppcv_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя, хешируя сырой пароль из PasswordHash
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	user.IsActive = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, name, email, password string, userType models.UserType) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password, // Сырой пароль, CreateUser хеширует
		UserType:     userType,
	}
	err := CreateUser(t, db, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	// Возвращаем сырой пароль в объект для удобства тестов
	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreateAndLoginEmployee создает соискателя с анкетой и уникальным email
func CreateAndLoginEmployee(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User, *models.EmployeeProfile) {
	email := fmt.Sprintf("employee_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, db, "Test Employee", email, "password123", models.UserTypeEmployee)

	profile := &models.EmployeeProfile{
		UserID:            user.ID,
		Location:          "Almaty",
		Country:           "Kazakhstan",
		WorkExperience:    "3 years",
		SalaryExpectation: "250000",
	}
	result := db.Create(profile)
	assert.NoError(t, result.Error, "Не удалось создать анкету соискателя")

	return token, user, profile
}

// CreateAndLoginEmployer создает работодателя с анкетой и уникальным email
func CreateAndLoginEmployer(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User, *models.EmployerProfile) {
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, db, "Test Employer", email, "password123", models.UserTypeEmployer)

	profile := &models.EmployerProfile{
		UserID:      user.ID,
		CompanyName: "Test Company Inc.",
		Location:    "Almaty",
	}
	result := db.Create(profile)
	assert.NoError(t, result.Error, "Не удалось создать анкету работодателя")

	return token, user, profile
}

// CreateService создает услугу в справочнике
func CreateService(t *testing.T, db *gorm.DB, name string) *models.Service {
	service := &models.Service{
		Name:        name,
		Description: "Test service",
	}
	if err := db.Create(service).Error; err != nil {
		t.Fatalf("Не удалось создать услугу: %v", err)
	}
	return service
}

// CreateStaffUser создает пользователя с правами персонала
func CreateStaffUser(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("staff_%d@test.com", time.Now().UnixNano())
	user := &models.User{
		Name:         "Test Staff",
		Email:        email,
		PasswordHash: "password123",
		UserType:     models.UserTypeOther,
		IsStaff:      true,
	}
	err := CreateUser(t, db, user)
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "password123",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин персонала должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))

	user.PasswordHash = "password123"
	return loginResponse.Token, user
}
