package entity

import "time"

// Roles válidos para Profile (columna perfil.tipo).
const (
	RoleAdmin    = "admin"
	RoleOperator = "operario"
)

// Profile representa un usuario de la organización (tabla perfil).
type Profile struct {
	ID             string
	OrganizationID string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string // bcrypt; nunca se expone en DTOs
	Role           string // admin, operario
	CreatedAt      time.Time
}

// FullName devuelve "Nombre Apellido" sin espacios sobrantes.
func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}
