package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/auth"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
)

// MaxMessageLength tope de caracteres del mensaje del formulario.
const MaxMessageLength = 5000

// UseCase formulario público de contacto.
type UseCase struct {
	mailer     ports.Mailer
	adminEmail string
	log        zerolog.Logger
}

// NewUseCase construye el caso de uso. adminEmail recibe las notificaciones.
func NewUseCase(mailer ports.Mailer, adminEmail string, log zerolog.Logger) *UseCase {
	return &UseCase{mailer: mailer, adminEmail: adminEmail, log: log}
}

// Submit notifica al administrador y luego envía un acuse al remitente.
// Si falla la notificación se devuelve error; si falla el acuse sólo se registra.
func (uc *UseCase) Submit(ctx context.Context, in dto.ContactRequest) error {
	name := strings.TrimSpace(in.Name)
	message := strings.TrimSpace(in.Message)
	email, err := auth.NormalizeEmail(in.Email)
	if err != nil || name == "" || message == "" || len([]rune(message)) > MaxMessageLength {
		return domain.ErrInvalidInput
	}
	phone := strings.TrimSpace(in.Phone)

	uc.log.Info().Str("name", name).Str("email", email).Str("phone", phone).Msg("enviando correo de contacto")

	admin := ports.MailMessage{
		To:      []string{uc.adminEmail},
		ReplyTo: email,
		Subject: "Nuevo contacto de " + name,
		Body: fmt.Sprintf(
			"Nuevo contacto desde Cold Stock\n\nNombre: %s\nEmail: %s\nTeléfono: %s\n\nMensaje:\n%s\n\n--\nEste mensaje fue enviado desde el formulario de contacto de Cold Stock\n",
			name, email, phone, message,
		),
	}
	if err := uc.mailer.Send(ctx, admin); err != nil {
		return fmt.Errorf("contact.Submit: correo al administrador: %w", err)
	}

	ack := ports.MailMessage{
		To:      []string{email},
		Subject: "¡Gracias por contactarnos!",
		Body: fmt.Sprintf(
			"¡Gracias por tu interés en Cold Stock, %s!\n\nHemos recibido tu mensaje y nos pondremos en contacto contigo pronto.\n\nTu mensaje:\n%s\n\nSaludos,\nEl equipo de Cold Stock\n",
			name, message,
		),
	}
	if err := uc.mailer.Send(ctx, ack); err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("no se pudo enviar el acuse al remitente")
	}
	return nil
}
