package ports

import "context"

// Attachment adjunto de un correo saliente.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// MailMessage correo en texto plano.
type MailMessage struct {
	To          []string
	ReplyTo     string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer define el puerto de salida para el envío de correos.
// Los adaptadores (SMTP, log en desarrollo) deben respetar la cancelación del contexto.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
