package email

// Email - простое письмо
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// SMTPConfig - настройки SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
