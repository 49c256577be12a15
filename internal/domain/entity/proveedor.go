package entity

import "time"

// Proveedor de mercancía para órdenes de compra.
type Proveedor struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	NIT       string    `json:"nit,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Email     string    `json:"email,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}
