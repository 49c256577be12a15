package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/domain/inventory"
)

// Producto del catálogo. El borrado es lógico: Activo=false retira el producto
// de búsquedas y operaciones pero conserva su historial de movimientos.
type Producto struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Categoria   string          `json:"categoria,omitempty"`
	Barcode     *string         `json:"barcode,omitempty"`
	UnidadID    int64           `json:"unidad_id"`
	PrecioBase  decimal.Decimal `json:"precio_base"`
	Activo      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// PrecioFinal es el precio resuelto para un almacén concreto (override si
	// existe, precio base si no). Solo viene poblado en búsquedas por almacén.
	PrecioFinal *decimal.Decimal `json:"precio_final,omitempty"`

	// Unidad viene poblada por las consultas que hacen JOIN con unidades.
	Unidad *Unidad `json:"unidad,omitempty"`
}

// PorGramos indica si el stock del producto se mide en gramos (campo
// cantidad_gramos autoritativo) o en piezas. Requiere Unidad poblada.
func (p *Producto) PorGramos() bool {
	if p.Unidad == nil {
		return false
	}
	return inventory.EsPorGramos(p.Unidad.Abreviatura, p.Unidad.Nombre)
}
