package dto

import "time"

// OrganizationResponse organización expuesta por la API.
type OrganizationResponse struct {
	ID        string    `json:"organizacion_id"`
	Name      string    `json:"nombre"`
	PhotoURL  string    `json:"foto,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateOrganizationRequest renombrado de la organización.
type UpdateOrganizationRequest struct {
	Name string `json:"nombre"`
}

// ProfileResponse perfil sin datos sensibles.
type ProfileResponse struct {
	ID             string `json:"perfil_id"`
	OrganizationID string `json:"organizacion_id"`
	FirstName      string `json:"nombre"`
	LastName       string `json:"apellido"`
	Email          string `json:"correo"`
	Role           string `json:"tipo"`
}

// CreateOperatorRequest alta de operario por parte del administrador.
type CreateOperatorRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"correo"`
	Password  string `json:"password"`
}

// UpdateOperatorRequest datos editables de un operario. La contraseña no se cambia aquí.
type UpdateOperatorRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"correo"`
}

// ContactRequest formulario público de contacto.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}
