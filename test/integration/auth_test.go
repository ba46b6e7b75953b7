package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"droppcv_backend/internal/auth"
	"droppcv_backend/internal/models"
	"droppcv_backend/internal/repositories"
	"droppcv_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEmployee(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	body := map[string]interface{}{
		"email":     "newemployee@test.com",
		"password":  "strongpass1",
		"password2": "strongpass1",
		"name":      "New Employee",
		"user_type": "employee",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var response struct {
		User struct {
			ID              string                  `json:"id"`
			Email           string                  `json:"email"`
			UserType        string                  `json:"user_type"`
			EmployeeProfile *models.EmployeeProfile `json:"employee_profile"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "newemployee@test.com", response.User.Email)
	assert.Equal(t, "employee", response.User.UserType)
	assert.NotNil(t, response.User.EmployeeProfile, "анкета соискателя создается при регистрации")
	assert.NotContains(t, bodyStr, "password", "пароль не должен попадать в ответ")

	// У соискателя ровно одна анкета и она нужного типа
	var employeeCount, employerCount int64
	ts.DB.Model(&models.EmployeeProfile{}).Where("user_id = ?", response.User.ID).Count(&employeeCount)
	ts.DB.Model(&models.EmployerProfile{}).Where("user_id = ?", response.User.ID).Count(&employerCount)
	assert.Equal(t, int64(1), employeeCount)
	assert.Equal(t, int64(0), employerCount)
}

func TestRegisterEmployerAndOther(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	body := map[string]interface{}{
		"email":     "newemployer@test.com",
		"password":  "strongpass1",
		"password2": "strongpass1",
		"name":      "New Employer",
		"user_type": "employer",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var response struct {
		User struct {
			ID              string                  `json:"id"`
			EmployerProfile *models.EmployerProfile `json:"employer_profile"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.NotNil(t, response.User.EmployerProfile)

	// Тип "other" живет без анкеты
	body["email"] = "other@test.com"
	body["user_type"] = "other"
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var otherResponse struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &otherResponse))

	var count int64
	ts.DB.Model(&models.EmployeeProfile{}).Where("user_id = ?", otherResponse.User.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	ts.DB.Model(&models.EmployerProfile{}).Where("user_id = ?", otherResponse.User.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, existing := helpers.CreateAndLoginUser(t, ts, ts.DB, "Existing", "taken@test.com", "password123", models.UserTypeEmployee)
	require.NotNil(t, existing)

	body := map[string]interface{}{
		"email":     "taken@test.com",
		"password":  "strongpass1",
		"password2": "strongpass1",
		"name":      "Dup",
		"user_type": "employee",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "email")
}

func TestRegisterPasswordMismatch(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	body := map[string]interface{}{
		"email":     "mismatch@test.com",
		"password":  "strongpass1",
		"password2": "different1",
		"name":      "Mismatch",
		"user_type": "employee",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "password")

	// Проверка совпадения идет до любых записей в БД
	var count int64
	ts.DB.Model(&models.User{}).Where("email = ?", "mismatch@test.com").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterWeakPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	for _, password := range []string{"short1", "12345678"} {
		body := map[string]interface{}{
			"email":     "weak@test.com",
			"password":  password,
			"password2": password,
			"name":      "Weak",
			"user_type": "employee",
		}
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/register", "", body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "пароль %q должен отклоняться", password)
	}
}

func TestRegisterInvalidUserType(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	body := map[string]interface{}{
		"email":     "badtype@test.com",
		"password":  "strongpass1",
		"password2": "strongpass1",
		"name":      "Bad Type",
		"user_type": "manager",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "user_type")
}

func TestLoginInvalidCredentials(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.CreateAndLoginUser(t, ts, ts.DB, "Login User", "login@test.com", "password123", models.UserTypeEmployee)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", map[string]interface{}{
		"email":    "login@test.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLoginReturnsSameToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token1, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Repeat", "repeat@test.com", "password123", models.UserTypeEmployer)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var second struct {
		Token    string `json:"token"`
		UserType string `json:"user_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &second))

	assert.Equal(t, token1, second.Token, "повторный вход возвращает тот же токен")
	assert.Equal(t, "employer", second.UserType)
}

func TestLogout(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/logout", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Токен отозван
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Повторное удаление токена не ошибка
	tokenRepo := repositories.NewTokenRepository()
	assert.NoError(t, tokenRepo.DeleteByUserID(ts.DB, user.ID))
	assert.NoError(t, tokenRepo.DeleteByUserID(ts.DB, user.ID))
}

func TestChangePassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/password/change", token, map[string]interface{}{
		"current_password": "password123",
		"new_password":     "newpassword1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	// Старый пароль больше не работает
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "newpassword1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/password/change", token, map[string]interface{}{
		"current_password": "wrongpassword",
		"new_password":     "newpassword1",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestPasswordResetFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, user, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	// Запрос не раскрывает существование адреса
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/password-reset/request", "", map[string]interface{}{
		"email": user.Email,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/password-reset/request", "", map[string]interface{}{
		"email": "unknown@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Подтверждение с валидным токеном
	resetToken, err := auth.GenerateResetToken(user.ID, ts.Config.Auth.ResetSecret, 30*time.Minute)
	require.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/password-reset/confirm", "", map[string]interface{}{
		"token":        resetToken,
		"new_password": "resetpass123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "resetpass123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPasswordResetBadToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, user, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	// Просроченный токен
	expired, err := auth.GenerateResetToken(user.ID, ts.Config.Auth.ResetSecret, -time.Minute)
	require.NoError(t, err)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/password-reset/confirm", "", map[string]interface{}{
		"token":        expired,
		"new_password": "resetpass123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Мусорный токен
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/password-reset/confirm", "", map[string]interface{}{
		"token":        "garbage",
		"new_password": "resetpass123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
