package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
	"github.com/fonceappsupa-gif/cold-stock-blue/pkg/jwt"
)

// MinPasswordLength longitud mínima aceptada al registrar credenciales.
const MinPasswordLength = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	txRunner    RegistrationTxRunner
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner RegistrationTxRunner, profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Register crea la organización y su perfil administrador; devuelve la sesión ya iniciada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	orgName := strings.TrimSpace(in.OrganizationName)
	email, err := NormalizeEmail(in.Email)
	if err != nil || orgName == "" || strings.TrimSpace(in.FirstName) == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	org := &entity.Organization{ID: uuid.NewString(), Name: orgName, CreatedAt: now}
	admin := &entity.Profile{
		ID:             uuid.NewString(),
		OrganizationID: org.ID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          email,
		PasswordHash:   hash,
		Role:           entity.RoleAdmin,
		CreatedAt:      now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(orgRepo repository.OrganizationRepository, profileRepo repository.ProfileRepository) error {
		if err := orgRepo.Create(ctx, org); err != nil {
			return err
		}
		return profileRepo.Create(ctx, admin)
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}
	return uc.session(admin)
}

// Login verifica correo/password y emite un JWT con user_id, organization_id y role.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.profileRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.session(profile)
}

func (uc *AuthUseCase) session(p *entity.Profile) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, p.ID, p.OrganizationID, p.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      ToProfileResponse(p),
	}, nil
}

// HashPassword valida la longitud mínima y devuelve el hash bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NormalizeEmail recorta, pasa a minúsculas y valida el formato del correo.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domain.ErrInvalidInput
	}
	return email, nil
}

// ToProfileResponse mapea un perfil sin exponer el hash.
func ToProfileResponse(p *entity.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Role:           p.Role,
	}
}
