package dto

// RegisterRequest alta de organización junto con su administrador.
type RegisterRequest struct {
	OrganizationName string `json:"organizacion"`
	FirstName        string `json:"nombre"`
	LastName         string `json:"apellido"`
	Email            string `json:"correo"`
	Password         string `json:"password"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// LoginResponse token emitido y datos básicos de la sesión.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expires_in"` // segundos
	User      ProfileResponse `json:"user"`
}
