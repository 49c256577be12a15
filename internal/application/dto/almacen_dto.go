package dto

// AlmacenRequest alta o edición de almacén.
type AlmacenRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Ubicacion string `json:"ubicacion,omitempty" validate:"omitempty,max=200"`
	Capacidad *int64 `json:"capacidad,omitempty" validate:"omitempty,gt=0"`
}

// ProveedorRequest alta o edición de proveedor.
type ProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=150"`
	NIT       string `json:"nit,omitempty" validate:"omitempty,max=30"`
	Telefono  string `json:"telefono,omitempty" validate:"omitempty,max=30"`
	Email     string `json:"email,omitempty" validate:"omitempty,email,max=150"`
	Direccion string `json:"direccion,omitempty" validate:"omitempty,max=200"`
}
