package dto

// SearchEmployeesRequest - параметры поиска соискателей (query string).
// Все фильтры опциональны и соединяются через AND.
type SearchEmployeesRequest struct {
	Location          string `form:"location" json:"location"`
	Country           string `form:"country" json:"country"`
	ServiceID         string `form:"service_type" json:"service_type"`
	WorkExperience    string `form:"work_experience" json:"work_experience"`
	SalaryExpectation string `form:"salary_expectation" json:"salary_expectation"`
}

// ServiceRequest - создание/обновление услуги из справочника
type ServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
