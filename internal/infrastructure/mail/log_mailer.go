package mail

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
)

// LogMailer registra los correos en vez de enviarlos (desarrollo o SMTP sin configurar).
type LogMailer struct {
	log zerolog.Logger
}

var _ ports.Mailer = (*LogMailer)(nil)

// NewLogMailer construye el emisor.
func NewLogMailer(log zerolog.Logger) *LogMailer { return &LogMailer{log: log} }

func (m *LogMailer) Send(_ context.Context, msg ports.MailMessage) error {
	m.log.Info().
		Str("to", strings.Join(msg.To, ",")).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("correo no enviado (SMTP deshabilitado)")
	return nil
}
