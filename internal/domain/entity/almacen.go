package entity

// Almacen representa una bodega o punto de venta con stock propio.
type Almacen struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Ubicacion string `json:"ubicacion,omitempty"`
	Capacidad *int64 `json:"capacidad,omitempty"`
}
