package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
)

// paramInt64 lee un parámetro de ruta numérico.
func paramInt64(c *fiber.Ctx, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("parámetro %s inválido: %w", name, domain.ErrInvalidInput)
	}
	return v, nil
}

// queryInt64Ptr lee un query param numérico opcional.
func queryInt64Ptr(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("query param %s inválido: %w", name, domain.ErrInvalidInput)
	}
	return &v, nil
}

// queryTimePtr lee un query param de fecha opcional, en RFC3339 o 2006-01-02.
func queryTimePtr(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("query param %s debe ser fecha RFC3339 o YYYY-MM-DD: %w", name, domain.ErrInvalidInput)
}

func queryInt(c *fiber.Ctx, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
