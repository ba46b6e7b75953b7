package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to, name string) error

	// SendPasswordReset отправляет ссылку для сброса пароля
	SendPasswordReset(to, resetURL string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}
