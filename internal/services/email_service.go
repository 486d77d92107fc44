package services

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"pereval/internal/models"
)

// mailSender: то, что нужно от *gomail.Dialer; в тестах подменяется.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService отправляет автору квитанцию о принятой заявке.
type EmailService struct {
	dialer mailSender
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) *EmailService {
	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
	}
}

func (s *EmailService) NotifySubmitted(ctx context.Context, p *models.Pereval) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.SendSubmissionReceipt(p)
}

func (s *EmailService) SendSubmissionReceipt(p *models.Pereval) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", p.User.Email)
	m.SetHeader("Subject", fmt.Sprintf("Перевал «%s» принят, № %d", p.Title, p.ID))

	body := fmt.Sprintf(`
		<h2>Здравствуйте, %s!</h2>
		<p>Ваша заявка на перевал <strong>%s</strong> сохранена под номером <strong>%d</strong>.</p>
		<p>Пока статус заявки «new», её можно исправить. После того как модератор возьмёт её в работу, изменения будут недоступны.</p>
		<p>С уважением,<br>ФСТР</p>
	`, html.EscapeString(p.User.Name), html.EscapeString(p.Title), p.ID)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send submission receipt: %w", err)
	}
	return nil
}
