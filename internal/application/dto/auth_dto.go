package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=60"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginResponse token emitido y datos básicos del usuario.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

// RegistrarUsuarioRequest alta de usuario (solo admin).
type RegistrarUsuarioRequest struct {
	Username string `json:"username" validate:"required,max=60"`
	Nombre   string `json:"nombre" validate:"required,max=150"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Rol      string `json:"rol" validate:"required,oneof=admin bodeguero vendedor"`
}
