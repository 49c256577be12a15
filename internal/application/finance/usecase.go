// Package finance administra el dinero que entra y sale de la operación:
// ingresos generados por ventas, extracciones por origen y gastos operativos.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

type UseCase struct {
	ingresos     repository.IngresoRepository
	extracciones repository.ExtraccionRepository
	gastos       repository.GastoRepository
	log          *logger.Logger
}

func NewUseCase(ingresos repository.IngresoRepository, extracciones repository.ExtraccionRepository, gastos repository.GastoRepository, log *logger.Logger) *UseCase {
	return &UseCase{ingresos: ingresos, extracciones: extracciones, gastos: gastos, log: log}
}

func origenValido(s string) bool {
	return s == entity.IngresoEfectivo || s == entity.IngresoBancarizado
}

// ListarIngresos devuelve los ingresos de venta paginados.
func (u *UseCase) ListarIngresos(ctx context.Context, f repository.FiltroIngresos) ([]*entity.IngresoVenta, int64, error) {
	if f.Tipo != "" && !origenValido(f.Tipo) {
		return nil, 0, fmt.Errorf("tipo de ingreso desconocido %q: %w", f.Tipo, domain.ErrInvalidInput)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	return u.ingresos.ListConFiltros(ctx, f)
}

// Saldos devuelve el saldo disponible de cada origen: lo ingresado por ventas
// menos lo extraído.
func (u *UseCase) Saldos(ctx context.Context) ([]*entity.SaldoOrigen, error) {
	out := make([]*entity.SaldoOrigen, 0, 2)
	for _, origen := range []string{entity.IngresoEfectivo, entity.IngresoBancarizado} {
		ingresado, err := u.ingresos.TotalPorTipo(ctx, origen)
		if err != nil {
			return nil, err
		}
		extraido, err := u.extracciones.TotalPorOrigen(ctx, origen)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.SaldoOrigen{
			Origen:       origen,
			Ingresos:     ingresado,
			Extracciones: extraido,
			Saldo:        ingresado.Sub(extraido),
		})
	}
	return out, nil
}

// RegistrarExtraccion retira dinero de un origen. El retiro no puede superar
// el saldo disponible del origen.
func (u *UseCase) RegistrarExtraccion(ctx context.Context, in dto.ExtraccionRequest) (*entity.ExtraccionIngreso, error) {
	if !origenValido(in.Origen) {
		return nil, fmt.Errorf("origen desconocido %q: %w", in.Origen, domain.ErrInvalidInput)
	}
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("el monto debe ser positivo: %w", domain.ErrInvalidInput)
	}

	ingresado, err := u.ingresos.TotalPorTipo(ctx, in.Origen)
	if err != nil {
		return nil, err
	}
	extraido, err := u.extracciones.TotalPorOrigen(ctx, in.Origen)
	if err != nil {
		return nil, err
	}
	saldo := ingresado.Sub(extraido)
	if in.Monto.GreaterThan(saldo) {
		return nil, fmt.Errorf("saldo insuficiente en %s: disponible %s: %w",
			in.Origen, saldo.StringFixed(2), domain.ErrConflict)
	}

	e := &entity.ExtraccionIngreso{
		Origen: in.Origen,
		Monto:  in.Monto,
		Motivo: in.Motivo,
		Fecha:  time.Now(),
	}
	if err := u.extracciones.Create(ctx, e); err != nil {
		return nil, err
	}
	u.log.Info().Str("origen", e.Origen).Str("monto", e.Monto.String()).Msg("extracción registrada")
	return e, nil
}

// ListarExtracciones devuelve los retiros paginados.
func (u *UseCase) ListarExtracciones(ctx context.Context, page, limit int) ([]*entity.ExtraccionIngreso, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return u.extracciones.List(ctx, page, limit)
}

// RegistrarGasto da de alta un gasto operativo. Sin fecha explícita se usa el
// día actual.
func (u *UseCase) RegistrarGasto(ctx context.Context, in dto.GastoRequest) (*entity.Gasto, error) {
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("el monto debe ser positivo: %w", domain.ErrInvalidInput)
	}
	fecha := time.Now()
	if in.Fecha != "" {
		parsed, err := time.Parse("2006-01-02", in.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida %q, se espera YYYY-MM-DD: %w", in.Fecha, domain.ErrInvalidInput)
		}
		fecha = parsed
	}

	g := &entity.Gasto{
		Fecha:       fecha,
		Monto:       in.Monto,
		Descripcion: in.Descripcion,
		Notas:       in.Notas,
	}
	if err := u.gastos.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ListarGastos devuelve los gastos no eliminados, paginados.
func (u *UseCase) ListarGastos(ctx context.Context, f repository.FiltroGastos) ([]*entity.Gasto, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	return u.gastos.List(ctx, f)
}

// EliminarGasto marca un gasto como eliminado.
func (u *UseCase) EliminarGasto(ctx context.Context, id int64) error {
	return u.gastos.Delete(ctx, id)
}
