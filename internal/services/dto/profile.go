package dto

// UpdateEmployeeProfileRequest - частичное обновление анкеты соискателя.
// Поля анкеты лежат на верхнем уровне запроса, рядом с вложенным user.
type UpdateEmployeeProfileRequest struct {
	User *UpdateUserRequest `json:"user"`

	CV                *string `json:"cv"`
	Location          *string `json:"location"`
	Country           *string `json:"country"`
	ServiceID         *string `json:"service_type"`
	WorkExperience    *string `json:"work_experience"`
	SalaryExpectation *string `json:"salary_expectation"`
}

// UpdateEmployerProfileRequest - частичное обновление анкеты работодателя.
// В отличие от анкеты соискателя, поля анкеты приходят вложенным объектом.
type UpdateEmployerProfileRequest struct {
	User            *UpdateUserRequest            `json:"user"`
	EmployerProfile *EmployerProfileUpdateRequest `json:"employer_profile"`
}

// EmployerProfileUpdateRequest - поля анкеты работодателя
type EmployerProfileUpdateRequest struct {
	CompanyName     *string `json:"company_name"`
	CurrentPosition *string `json:"current_position"`
	Certificate     *string `json:"qualification_certificate"`
	WorkExperience  *string `json:"work_experience"`
	Location        *string `json:"location"`
}
