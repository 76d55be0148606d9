// Package mail implementa ports.Mailer: SMTP con gomail y un emisor que sólo registra en el log.
package mail

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
)

// SMTPMailer envía correos por SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer construye el emisor. from es el remitente (ej. "Cold Stock <no-reply@coldstock.co>").
func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, user, password), from: from}
}

// Send arma el mensaje y lo entrega. gomail no acepta contexto: se corta la espera si ctx termina.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	gm, err := BuildMessage(m.from, msg)
	if err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(gm) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail.Send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mail.Send: %w", ctx.Err())
	}
}

// BuildMessage convierte un ports.MailMessage en un mensaje gomail.
func BuildMessage(from string, msg ports.MailMessage) (*gomail.Message, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("mail: sin destinatarios")
	}
	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetBody("text/plain", msg.Body)
	for _, a := range msg.Attachments {
		data := a.Data
		gm.Attach(a.Name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}
	return gm, nil
}
