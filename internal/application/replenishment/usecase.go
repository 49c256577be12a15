// Package replenishment administra los niveles de reposición por producto y
// calcula la lista de compra sugerida a partir del stock agregado.
package replenishment

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/inventory"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

type UseCase struct {
	parametros repository.ParametroReordenRepository
	productos  repository.ProductoRepository
	log        *logger.Logger
}

func NewUseCase(parametros repository.ParametroReordenRepository, productos repository.ProductoRepository, log *logger.Logger) *UseCase {
	return &UseCase{parametros: parametros, productos: productos, log: log}
}

// Guardar crea o actualiza los niveles de reposición de un producto. El nivel
// óptimo nunca puede quedar por debajo del mínimo.
func (u *UseCase) Guardar(ctx context.Context, in dto.ParametroReordenRequest) (*entity.ParametroReorden, error) {
	if in.NivelMinimo.IsNegative() {
		return nil, fmt.Errorf("nivel_minimo no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if in.NivelOptimo.LessThan(in.NivelMinimo) {
		return nil, fmt.Errorf("nivel_optimo debe ser mayor o igual a nivel_minimo: %w", domain.ErrInvalidInput)
	}
	p, err := u.productos.GetByID(ctx, in.ProductoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductoID, domain.ErrNotFound)
	}

	parametro := &entity.ParametroReorden{
		ProductoID:  in.ProductoID,
		NivelMinimo: in.NivelMinimo,
		NivelOptimo: in.NivelOptimo,
	}
	if err := u.parametros.Upsert(ctx, parametro); err != nil {
		return nil, err
	}
	parametro.ProductoNombre = p.Nombre
	parametro.ProductoSKU = p.SKU
	u.log.Info().Int64("producto_id", in.ProductoID).Msg("parámetro de reorden guardado")
	return parametro, nil
}

// Listar devuelve todos los parámetros de reorden.
func (u *UseCase) Listar(ctx context.Context) ([]*entity.ParametroReorden, error) {
	return u.parametros.List(ctx)
}

// Obtener devuelve el parámetro de un producto.
func (u *UseCase) Obtener(ctx context.Context, productoID int64) (*entity.ParametroReorden, error) {
	p, err := u.parametros.GetByProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Eliminar borra el parámetro de un producto.
func (u *UseCase) Eliminar(ctx context.Context, productoID int64) error {
	return u.parametros.Delete(ctx, productoID)
}

// Sugerencias arma la lista de compra: productos cuyo saldo agregado quedó por
// debajo de su nivel mínimo, ordenados del déficit mayor al menor. La cantidad
// sugerida lleva el saldo hasta el nivel óptimo.
func (u *UseCase) Sugerencias(ctx context.Context) ([]*dto.SugerenciaReposicion, error) {
	filas, err := u.parametros.ListConStock(ctx)
	if err != nil {
		return nil, err
	}

	var out []*dto.SugerenciaReposicion
	for _, fila := range filas {
		actual := decimal.NewFromInt(fila.TotalPiezas)
		unidad := "piezas"
		if inventory.EsPorGramos(fila.UnidadAbreviatura, fila.UnidadNombre) {
			actual = fila.TotalGramos
			unidad = "gramos"
		}
		if actual.GreaterThanOrEqual(fila.Parametro.NivelMinimo) {
			continue
		}
		out = append(out, &dto.SugerenciaReposicion{
			ProductoID:     fila.Parametro.ProductoID,
			ProductoNombre: fila.Parametro.ProductoNombre,
			ProductoSKU:    fila.Parametro.ProductoSKU,
			Unidad:         unidad,
			Actual:         actual,
			NivelMinimo:    fila.Parametro.NivelMinimo,
			NivelOptimo:    fila.Parametro.NivelOptimo,
			Deficit:        fila.Parametro.NivelMinimo.Sub(actual),
			Sugerido:       fila.Parametro.NivelOptimo.Sub(actual),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Deficit.GreaterThan(out[j].Deficit)
	})
	for i, s := range out {
		s.Prioridad = i + 1
	}
	return out, nil
}
