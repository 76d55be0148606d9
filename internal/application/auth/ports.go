package auth

import (
	"context"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// RegistrationTxRunner crea organización y administrador en una sola transacción.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}
