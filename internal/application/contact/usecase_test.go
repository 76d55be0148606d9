package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/contact"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
)

// fakeMailer falla en el envío número failOn (1-based); 0 nunca falla.
type fakeMailer struct {
	sent   []ports.MailMessage
	failOn int
}

func (f *fakeMailer) Send(_ context.Context, msg ports.MailMessage) error {
	f.sent = append(f.sent, msg)
	if f.failOn == len(f.sent) {
		return errors.New("smtp caído")
	}
	return nil
}

func request() dto.ContactRequest {
	return dto.ContactRequest{Name: "Carlos", Email: "carlos@ejemplo.com", Phone: "3001234567", Message: "Quiero una demo"}
}

func TestSubmit_EnviaNotificacionYAcuse(t *testing.T) {
	m := &fakeMailer{}
	uc := contact.NewUseCase(m, "admin@coldstock.co", zerolog.Nop())

	require.NoError(t, uc.Submit(context.Background(), request()))
	require.Len(t, m.sent, 2)

	assert.Equal(t, []string{"admin@coldstock.co"}, m.sent[0].To)
	assert.Equal(t, "Nuevo contacto de Carlos", m.sent[0].Subject)
	assert.Equal(t, "carlos@ejemplo.com", m.sent[0].ReplyTo)
	assert.Contains(t, m.sent[0].Body, "3001234567")

	assert.Equal(t, []string{"carlos@ejemplo.com"}, m.sent[1].To)
	assert.Contains(t, m.sent[1].Body, "Quiero una demo")
}

func TestSubmit_FalloNotificacionEsError(t *testing.T) {
	m := &fakeMailer{failOn: 1}
	uc := contact.NewUseCase(m, "admin@coldstock.co", zerolog.Nop())

	err := uc.Submit(context.Background(), request())
	require.Error(t, err)
	assert.Len(t, m.sent, 1)
}

func TestSubmit_FalloAcuseSoloSeRegistra(t *testing.T) {
	m := &fakeMailer{failOn: 2}
	uc := contact.NewUseCase(m, "admin@coldstock.co", zerolog.Nop())

	assert.NoError(t, uc.Submit(context.Background(), request()))
	assert.Len(t, m.sent, 2)
}

func TestSubmit_EntradaInvalida(t *testing.T) {
	uc := contact.NewUseCase(&fakeMailer{}, "admin@coldstock.co", zerolog.Nop())

	in := request()
	in.Email = "sin-arroba"
	assert.ErrorIs(t, uc.Submit(context.Background(), in), domain.ErrInvalidInput)

	in = request()
	in.Message = "  "
	assert.ErrorIs(t, uc.Submit(context.Background(), in), domain.ErrInvalidInput)
}
