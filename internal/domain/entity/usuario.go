package entity

import "time"

// Roles de usuario.
const (
	RolAdmin     = "admin"
	RolBodeguero = "bodeguero"
	RolVendedor  = "vendedor"
)

// Usuario de la aplicación. PasswordHash nunca se serializa.
type Usuario struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Nombre       string    `json:"nombre"`
	PasswordHash string    `json:"-"`
	Rol          string    `json:"rol"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
}
