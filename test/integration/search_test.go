package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"droppcv_backend/internal/models"
	"droppcv_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEmployeeProfile перезаписывает поля анкеты напрямую в БД
func setEmployeeProfile(t *testing.T, ts *helpers.TestServer, profile *models.EmployeeProfile, fields map[string]interface{}) {
	require.NoError(t, ts.DB.Model(&models.EmployeeProfile{}).
		Where("user_id = ?", profile.UserID).
		Updates(fields).Error)
}

func searchEmployees(t *testing.T, ts *helpers.TestServer, token, query string) (*http.Response, []struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}) {
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/employee/search"+query, token, nil)
	if res.StatusCode != http.StatusOK {
		return res, nil
	}

	var results []struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &results), "Ответ: "+bodyStr)
	return res, results
}

func TestSearchEmployerOnly(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	employeeToken, _, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	// Не-работодатель получает 403 при любых параметрах
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/employee/search", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/employee/search?location=Almaty", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	otherToken, _ := helpers.CreateStaffUser(t, ts, ts.DB)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/employee/search", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestSearchByTextFilters(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, almatyUser, almatyProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, almatyProfile, map[string]interface{}{
		"location": "Almaty", "work_experience": "5 years in construction",
	})

	_, _, astanaProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, astanaProfile, map[string]interface{}{
		"location": "Astana", "work_experience": "junior",
	})

	employerToken, _, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	// Подстрока без учета регистра
	res, results := searchEmployees(t, ts, employerToken, "?location=almat")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, results, 1)
	assert.Equal(t, almatyUser.ID, results[0].ID)

	// Фильтры соединяются через AND
	res, results = searchEmployees(t, ts, employerToken, "?location=astana&work_experience=construction")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, results, 0)

	// Без фильтров возвращаются все анкеты
	res, results = searchEmployees(t, ts, employerToken, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, results, 2)
}

func TestSearchByService(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	service := helpers.CreateService(t, ts.DB, "Welding")

	_, welder, welderProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, welderProfile, map[string]interface{}{"service_id": service.ID})

	_, _, otherProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	_ = otherProfile

	employerToken, _, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	res, results := searchEmployees(t, ts, employerToken, "?service_type="+service.ID)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, results, 1)
	assert.Equal(t, welder.ID, results[0].ID)
}

func TestSearchBySalarySingleNumber(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, exact, exactProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, exactProfile, map[string]interface{}{"salary_expectation": "90000"})

	_, ranged, rangedProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, rangedProfile, map[string]interface{}{"salary_expectation": "90000-100000"})

	_, _, unrelatedProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, unrelatedProfile, map[string]interface{}{"salary_expectation": "150000"})

	employerToken, _, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	// Число ловит и точное значение, и границу диапазона
	res, results := searchEmployees(t, ts, employerToken, "?salary_expectation=90000")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, results, 2)

	ids := []string{results[0].ID, results[1].ID}
	assert.Contains(t, ids, exact.ID)
	assert.Contains(t, ids, ranged.ID)
}

func TestSearchBySalaryRange(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, inRange, inRangeProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, inRangeProfile, map[string]interface{}{"salary_expectation": "95000"})

	_, literal, literalProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, literalProfile, map[string]interface{}{"salary_expectation": "90000-100000"})

	_, _, outProfile := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	setEmployeeProfile(t, ts, outProfile, map[string]interface{}{"salary_expectation": "150000"})

	employerToken, _, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	// Диапазон ловит число внутри границ и дословно совпавший диапазон
	res, results := searchEmployees(t, ts, employerToken, "?salary_expectation=90000-100000")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, results, 2)

	ids := []string{results[0].ID, results[1].ID}
	assert.Contains(t, ids, inRange.ID)
	assert.Contains(t, ids, literal.ID)
}

func TestSearchBySalaryInvalid(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	employerToken, _, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	for _, query := range []string{"abc", "100k", "100-", "-100", "100-200-300"} {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/employee/search?salary_expectation="+query, employerToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "запрос %q должен отклоняться", query)
	}
}
