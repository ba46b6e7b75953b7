package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх SMTP
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	return &SMTPProvider{
		config: config,
		dialer: dialer,
	}
}

// Send отправляет email сообщение
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = m.FormatAddress(p.config.FromEmail, p.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendWelcome отправляет приветственное письмо после регистрации
func (p *SMTPProvider) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"Hello %s!\n\nYour account has been created. You can now sign in and fill out your profile.\n",
		name,
	)

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Welcome to DroppCV",
		Body:    body,
	})
}

// SendPasswordReset отправляет ссылку для сброса пароля
func (p *SMTPProvider) SendPasswordReset(to, resetURL string) error {
	body := fmt.Sprintf(
		"You requested a password reset.\n\nFollow the link to set a new password: %s\n\nIf you did not request a reset, ignore this message.\n",
		resetURL,
	)

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Password reset",
		Body:    body,
	})
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}

// Close закрывает соединение (gomail открывает его на каждую отправку)
func (p *SMTPProvider) Close() error {
	return nil
}
