package util

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer отправляет уведомления по электронной почте.
// Все отправки best-effort: ошибка никогда не влияет на основную операцию.
type Mailer interface {
	Send(ctx context.Context, subject, body, recipient string) error
}

type smtpMailer struct {
	addr string
	host string
	from string
	auth smtp.Auth
}

// NewSMTPMailer создает Mailer поверх SMTP сервера.
// При пустом user аутентификация не используется (локальный relay).
func NewSMTPMailer(addr, host, user, password, from string) Mailer {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}

	return &smtpMailer{
		addr: addr,
		host: host,
		from: from,
		auth: auth,
	}
}

// Send отправляет письмо одному получателю
func (m *smtpMailer) Send(ctx context.Context, subject, body, recipient string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", m.from),
		fmt.Sprintf("To: %s", recipient),
		fmt.Sprintf("Subject: %s", subject),
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
