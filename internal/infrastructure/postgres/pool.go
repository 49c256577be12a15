package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acuellar-dev/inventario-pos/pkg/config"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

// NewPool crea el pool de conexiones. Registra el codec de shopspring/decimal
// en cada conexión para que numeric se lea y escriba como decimal.Decimal sin
// pasar por float64.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parseando configuración de postgres: %w", err)
	}
	pc.MaxConns = 25
	pc.MinConns = 2
	pc.MaxConnLifetime = time.Hour
	pc.MaxConnIdleTime = 30 * time.Minute
	pc.HealthCheckPeriod = time.Minute
	pc.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("creando pool de postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("verificando conexión a postgres: %w", err)
	}

	log.Info().Str("host", pc.ConnConfig.Host).Str("db", pc.ConnConfig.Database).Msg("conexión a postgres establecida")
	return pool, nil
}
