package entity

// Unidad de medida de un producto (pieza, caja, gramo, kilo, etc.).
type Unidad struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Abreviatura string `json:"abreviatura"`
}
