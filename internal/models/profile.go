package models

// EmployeeProfile - анкета соискателя. PK совпадает с users.id,
// поэтому у пользователя не может быть больше одной анкеты.
type EmployeeProfile struct {
	UserID            string   `gorm:"type:uuid;primaryKey" json:"user_id"`
	CV                string   `json:"cv,omitempty"`
	Location          string   `gorm:"type:varchar(255)" json:"location"`
	Country           string   `gorm:"type:varchar(255)" json:"country"`
	ServiceID         *string  `gorm:"type:uuid" json:"service_type"`
	Service           *Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL" json:"-"`
	WorkExperience    string   `gorm:"type:varchar(255)" json:"work_experience"`
	SalaryExpectation string   `gorm:"type:varchar(255)" json:"salary_expectation"`
}

// EmployerProfile - анкета работодателя, тоже 1:1 с пользователем.
type EmployerProfile struct {
	UserID          string `gorm:"type:uuid;primaryKey" json:"user_id"`
	CompanyName     string `gorm:"type:varchar(255)" json:"company_name"`
	CurrentPosition string `gorm:"type:varchar(255)" json:"current_position"`
	Certificate     string `json:"qualification_certificate,omitempty"`
	WorkExperience  string `gorm:"type:varchar(255)" json:"work_experience"`
	Location        string `gorm:"type:varchar(255)" json:"location"`
}
