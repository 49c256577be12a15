package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// AlmacenUseCase gestión de almacenes.
type AlmacenUseCase struct {
	almacenes repository.AlmacenRepository
}

func NewAlmacenUseCase(almacenes repository.AlmacenRepository) *AlmacenUseCase {
	return &AlmacenUseCase{almacenes: almacenes}
}

func (u *AlmacenUseCase) Crear(ctx context.Context, in dto.AlmacenRequest) (*entity.Almacen, error) {
	a := &entity.Almacen{
		Nombre:    strings.TrimSpace(in.Nombre),
		Ubicacion: in.Ubicacion,
		Capacidad: in.Capacidad,
	}
	if err := u.almacenes.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *AlmacenUseCase) Obtener(ctx context.Context, id int64) (*entity.Almacen, error) {
	a, err := u.almacenes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("almacén %d: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

func (u *AlmacenUseCase) Listar(ctx context.Context) ([]*entity.Almacen, error) {
	return u.almacenes.List(ctx)
}

func (u *AlmacenUseCase) Actualizar(ctx context.Context, id int64, in dto.AlmacenRequest) (*entity.Almacen, error) {
	a, err := u.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Nombre = strings.TrimSpace(in.Nombre)
	a.Ubicacion = in.Ubicacion
	a.Capacidad = in.Capacidad
	if err := u.almacenes.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
