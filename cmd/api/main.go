package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/acuellar-dev/inventario-pos/internal/application/auth"
	"github.com/acuellar-dev/inventario-pos/internal/application/catalog"
	"github.com/acuellar-dev/inventario-pos/internal/application/finance"
	"github.com/acuellar-dev/inventario-pos/internal/application/purchasing"
	"github.com/acuellar-dev/inventario-pos/internal/application/replenishment"
	"github.com/acuellar-dev/inventario-pos/internal/application/sales"
	"github.com/acuellar-dev/inventario-pos/internal/application/stock"
	"github.com/acuellar-dev/inventario-pos/internal/application/usecase"
	infrapdf "github.com/acuellar-dev/inventario-pos/internal/infrastructure/pdf"
	"github.com/acuellar-dev/inventario-pos/internal/infrastructure/postgres"
	httpRouter "github.com/acuellar-dev/inventario-pos/internal/interfaces/http"
	"github.com/acuellar-dev/inventario-pos/pkg/config"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	unidadRepo := postgres.NewUnidadRepository(pool)
	almacenRepo := postgres.NewAlmacenRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	ordenRepo := postgres.NewOrdenCompraRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	precioRepo := postgres.NewPrecioAlmacenRepository(pool)
	ingresoRepo := postgres.NewIngresoRepository(pool)
	extraccionRepo := postgres.NewExtraccionRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	reordenRepo := postgres.NewParametroReordenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewUseCase(txRunner, stockRepo, productoRepo, almacenRepo, log)
	movementLog := stock.NewMovementLog(movimientoRepo)
	catalogUC := catalog.NewUseCase(productoRepo, unidadRepo, precioRepo, log)
	almacenUC := usecase.NewAlmacenUseCase(almacenRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	pdfGenerator := infrapdf.NewOrdenCompraPDFGenerator()
	comprasUC := purchasing.NewUseCase(txRunner, ordenRepo, proveedorRepo, almacenRepo, pdfGenerator, log)
	ventasUC := sales.NewUseCase(txRunner, ventaRepo, almacenRepo, log)
	finanzasUC := finance.NewUseCase(ingresoRepo, extraccionRepo, gastoRepo, log)
	reordenUC := replenishment.NewUseCase(reordenRepo, productoRepo, log)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.RegisterRoutes(app, httpRouter.RouterDeps{
		JWTSecret:  cfg.JWT.Secret,
		Auth:       httpRouter.NewAuthHandler(authUC),
		Productos:  httpRouter.NewProductoHandler(catalogUC),
		Almacenes:  httpRouter.NewAlmacenHandler(almacenUC),
		Proveedor:  httpRouter.NewProveedorHandler(proveedorUC),
		Stock:      httpRouter.NewStockHandler(stockUC),
		Movimiento: httpRouter.NewMovimientoHandler(movementLog),
		Ordenes:    httpRouter.NewOrdenCompraHandler(comprasUC),
		Ventas:     httpRouter.NewVentaHandler(ventasUC),
		Finanzas:   httpRouter.NewFinanzasHandler(finanzasUC),
		Reorden:    httpRouter.NewReordenHandler(reordenUC),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
