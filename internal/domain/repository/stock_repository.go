package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// TotalProducto total agregado de un producto dentro de un almacén, separado
// por unidad autoritativa.
type TotalProducto struct {
	ProductoID     int64           `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre"`
	TotalPiezas    int64           `json:"total_piezas"`
	TotalGramos    decimal.Decimal `json:"total_gramos"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// StockRepository acceso a saldos de stock. GetForUpdate solo tiene sentido
// dentro de una transacción; los repos fuera de transacción lo implementan
// pero ningún orquestador lo invoca ahí.
type StockRepository interface {
	// EnsureFila crea la fila (producto, almacén) en cero si no existe.
	// Idempotente bajo concurrencia (ON CONFLICT DO NOTHING).
	EnsureFila(ctx context.Context, productoID, almacenID int64) error
	// GetForUpdate carga la fila tomando bloqueo de escritura hasta el commit.
	GetForUpdate(ctx context.Context, productoID, almacenID int64) (*entity.StockActual, error)
	Update(ctx context.Context, s *entity.StockActual) error
	Get(ctx context.Context, productoID, almacenID int64) (*entity.StockActual, error)
	List(ctx context.Context, almacenID *int64) ([]*entity.StockActual, error)
	TotalesPorAlmacen(ctx context.Context, almacenID int64) ([]*TotalProducto, error)
	// CrearFila inserta una fila con saldo inicial explícito; falla si ya existe.
	CrearFila(ctx context.Context, s *entity.StockActual) error
	EliminarFila(ctx context.Context, productoID, almacenID int64) error
}
