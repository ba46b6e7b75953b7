package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"type:varchar(150)" json:"name"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"user_type"`
	IsActive     bool     `gorm:"default:false" json:"is_active"`
	IsStaff      bool     `gorm:"default:false" json:"is_staff"`
	IsSuperuser  bool     `gorm:"default:false" json:"is_superuser"`
	Avatar       string   `json:"avatar,omitempty"`

	// Relations
	EmployeeProfile *EmployeeProfile `gorm:"foreignKey:UserID" json:"employee_profile,omitempty"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID" json:"employer_profile,omitempty"`
}

// AuthToken - непрозрачный токен доступа, привязанный 1:1 к пользователю.
// Выдается при регистрации/логине (get-or-create), удаляется при logout,
// при повторном логине НЕ ротируется.
type AuthToken struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
