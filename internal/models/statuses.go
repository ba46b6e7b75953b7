package models

// UserType - тип аккаунта
type UserType string

const (
	UserTypeEmployee UserType = "employee"
	UserTypeEmployer UserType = "employer"
	UserTypeOther    UserType = "other"
)

// Valid проверяет, что значение входит в список допустимых типов
func (t UserType) Valid() bool {
	switch t {
	case UserTypeEmployee, UserTypeEmployer, UserTypeOther:
		return true
	default:
		return false
	}
}
