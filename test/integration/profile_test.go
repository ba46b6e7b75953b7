package integration_test

import (
	"net/http"
	"testing"

	"droppcv_backend/internal/models"
	"droppcv_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserCore(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/update", token, map[string]interface{}{
		"name": "Renamed",
	})
	require.Equal(t, http.StatusAccepted, res.StatusCode, "Ответ: "+bodyStr)

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, "Renamed", updated.Name)
	// Непереданные поля не трогаются
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, models.UserTypeEmployee, updated.UserType)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	_, other, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/update", token, map[string]interface{}{
		"email": other.Email,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Ответ: "+bodyStr)
}

func TestUpdateEmployeeProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	service := helpers.CreateService(t, ts.DB, "Plumbing")

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/employee/profile/edit", token, map[string]interface{}{
		"user": map[string]interface{}{
			"name": "Updated Employee",
		},
		"location":           "Astana",
		"service_type":       service.ID,
		"salary_expectation": "300000",
	})
	require.Equal(t, http.StatusAccepted, res.StatusCode, "Ответ: "+bodyStr)

	var profile models.EmployeeProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, "Astana", profile.Location)
	assert.Equal(t, "300000", profile.SalaryExpectation)
	require.NotNil(t, profile.ServiceID)
	assert.Equal(t, service.ID, *profile.ServiceID)
	// Непереданное поле осталось прежним
	assert.Equal(t, "Kazakhstan", profile.Country)

	var updatedUser models.User
	require.NoError(t, ts.DB.First(&updatedUser, "id = ?", user.ID).Error)
	assert.Equal(t, "Updated Employee", updatedUser.Name)
}

func TestUpdateEmployeeProfileUnknownService(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/employee/profile/edit", token, map[string]interface{}{
		"service_type": "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateEmployeeProfileClearsService(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, profile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	service := helpers.CreateService(t, ts.DB, "Cleaning")
	require.NoError(t, ts.DB.Model(profile).Update("service_id", service.ID).Error)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/employee/profile/edit", token, map[string]interface{}{
		"service_type": "",
	})
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	var reloaded models.EmployeeProfile
	require.NoError(t, ts.DB.First(&reloaded, "user_id = ?", user.ID).Error)
	assert.Nil(t, reloaded.ServiceID)
}

func TestUpdateEmployeeProfileTransactional(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	// Сбой на шаге анкеты (несуществующая услуга) откатывает
	// уже примененное изменение имени пользователя
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/employee/profile/edit", token, map[string]interface{}{
		"user": map[string]interface{}{
			"name": "Should Not Persist",
		},
		"service_type": "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, "Test Employee", reloaded.Name)
}

func TestUpdateEmployeeProfileWithoutProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	// У работодателя нет анкеты соискателя
	token, _, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/employee/profile/edit", token, map[string]interface{}{
		"location": "Astana",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateEmployeeProfileMalformedUser(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	// Вложенный user не объект: ошибка формата до любых изменений
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/employee/profile/edit", token, map[string]interface{}{
		"user":     "not-an-object",
		"location": "Astana",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var profile models.EmployeeProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, "Almaty", profile.Location)
}

func TestUpdateEmployerProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/employer/profile/edit", token, map[string]interface{}{
		"user": map[string]interface{}{
			"name": "Updated Employer",
		},
		"employer_profile": map[string]interface{}{
			"company_name":     "New Company LLP",
			"current_position": "CTO",
		},
	})
	require.Equal(t, http.StatusAccepted, res.StatusCode, "Ответ: "+bodyStr)

	var profile models.EmployerProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, "New Company LLP", profile.CompanyName)
	assert.Equal(t, "CTO", profile.CurrentPosition)
	// Непереданное поле осталось прежним
	assert.Equal(t, "Almaty", profile.Location)

	var updatedUser models.User
	require.NoError(t, ts.DB.First(&updatedUser, "id = ?", user.ID).Error)
	assert.Equal(t, "Updated Employer", updatedUser.Name)
}

func TestUpdateEmployerProfileTransactional(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, user, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	_, other, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	// Конфликт email во вложенном user откатывает весь запрос:
	// имя и компания не должны измениться
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/employer/profile/edit", token, map[string]interface{}{
		"user": map[string]interface{}{
			"email": other.Email,
			"name":  "Should Not Persist",
		},
		"employer_profile": map[string]interface{}{
			"company_name": "Should Not Persist LLP",
		},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var reloadedUser models.User
	require.NoError(t, ts.DB.First(&reloadedUser, "id = ?", user.ID).Error)
	assert.Equal(t, "Test Employer", reloadedUser.Name)
	assert.Equal(t, user.Email, reloadedUser.Email)

	var profile models.EmployerProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, "Test Company Inc.", profile.CompanyName)
}
