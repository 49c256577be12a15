package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// RouterDeps dependencias para registrar las rutas.
type RouterDeps struct {
	JWTSecret  string
	Auth       *AuthHandler
	Productos  *ProductoHandler
	Almacenes  *AlmacenHandler
	Proveedor  *ProveedorHandler
	Stock      *StockHandler
	Movimiento *MovimientoHandler
	Ordenes    *OrdenCompraHandler
	Ventas     *VentaHandler
	Finanzas   *FinanzasHandler
	Reorden    *ReordenHandler
}

// RegisterRoutes monta todas las rutas de la API bajo /api. Las rutas de
// escritura de inventario requieren rol admin o bodeguero; las ventas admiten
// también vendedor.
func RegisterRoutes(app *fiber.App, d RouterDeps) {
	api := app.Group("/api")

	api.Post("/auth/login", d.Auth.Login)

	protegido := api.Use(AuthMiddleware(d.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdmin)
	bodega := RequireRole(entity.RolAdmin, entity.RolBodeguero)
	venta := RequireRole(entity.RolAdmin, entity.RolVendedor)

	protegido.Post("/auth/register", soloAdmin, d.Auth.Register)

	protegido.Get("/unidades", d.Productos.ListarUnidades)

	protegido.Post("/productos", bodega, d.Productos.Crear)
	protegido.Get("/productos", d.Productos.Buscar)
	protegido.Get("/productos/barcode/:barcode", d.Productos.PorBarcode)
	protegido.Get("/productos/:id", d.Productos.Obtener)
	protegido.Put("/productos/:id", bodega, d.Productos.Actualizar)
	protegido.Delete("/productos/:id", bodega, d.Productos.Desactivar)
	protegido.Post("/productos/:id/reactivar", bodega, d.Productos.Reactivar)
	protegido.Get("/productos/:id/precios", d.Productos.ListarPrecios)
	protegido.Put("/productos/:id/precios", bodega, d.Productos.UpsertPrecio)
	protegido.Delete("/productos/:id/precios/:almacenId", bodega, d.Productos.EliminarPrecio)

	protegido.Post("/almacenes", soloAdmin, d.Almacenes.Crear)
	protegido.Get("/almacenes", d.Almacenes.Listar)
	protegido.Get("/almacenes/:id", d.Almacenes.Obtener)
	protegido.Put("/almacenes/:id", soloAdmin, d.Almacenes.Actualizar)

	protegido.Post("/proveedores", bodega, d.Proveedor.Crear)
	protegido.Get("/proveedores", d.Proveedor.Listar)
	protegido.Get("/proveedores/:id", d.Proveedor.Obtener)
	protegido.Put("/proveedores/:id", bodega, d.Proveedor.Actualizar)
	protegido.Delete("/proveedores/:id", bodega, d.Proveedor.Desactivar)

	protegido.Get("/stock", d.Stock.Listar)
	protegido.Get("/stock/totales/:almacenId", d.Stock.Totales)
	protegido.Get("/stock/:productoId/:almacenId", d.Stock.Obtener)
	protegido.Post("/stock/filas", bodega, d.Stock.CrearFila)
	protegido.Delete("/stock/filas/:productoId/:almacenId", soloAdmin, d.Stock.EliminarFila)
	protegido.Post("/stock/entradas", bodega, d.Stock.Entrada)
	protegido.Post("/stock/insumos", bodega, d.Stock.Insumo)
	protegido.Delete("/stock/insumos/:movimientoId", bodega, d.Stock.CancelarInsumo)
	protegido.Post("/stock/traspasos", bodega, d.Stock.Traspaso)
	protegido.Post("/stock/ajustes", bodega, d.Stock.Ajustar)

	protegido.Get("/movimientos", d.Movimiento.Listar)
	protegido.Get("/movimientos/insumos", d.Movimiento.ListarInsumos)
	protegido.Get("/movimientos/:id", d.Movimiento.Obtener)

	protegido.Post("/ordenes-compra", bodega, d.Ordenes.Crear)
	protegido.Get("/ordenes-compra", d.Ordenes.Listar)
	protegido.Get("/ordenes-compra/:id", d.Ordenes.Obtener)
	protegido.Get("/ordenes-compra/:id/pdf", d.Ordenes.PDF)

	protegido.Post("/ventas", venta, d.Ventas.Registrar)
	protegido.Get("/ventas", d.Ventas.Listar)
	protegido.Get("/ventas/:id", d.Ventas.Obtener)
	protegido.Patch("/ventas/:id/estado", venta, d.Ventas.ActualizarEstado)

	protegido.Get("/ingresos", d.Finanzas.ListarIngresos)
	protegido.Get("/ingresos/saldos", d.Finanzas.Saldos)
	protegido.Post("/extracciones", soloAdmin, d.Finanzas.RegistrarExtraccion)
	protegido.Get("/extracciones", d.Finanzas.ListarExtracciones)
	protegido.Post("/gastos", bodega, d.Finanzas.RegistrarGasto)
	protegido.Get("/gastos", d.Finanzas.ListarGastos)
	protegido.Delete("/gastos/:id", soloAdmin, d.Finanzas.EliminarGasto)

	protegido.Put("/reorden", bodega, d.Reorden.Guardar)
	protegido.Get("/reorden", d.Reorden.Listar)
	protegido.Get("/reorden/sugerencias", d.Reorden.Sugerencias)
	protegido.Get("/reorden/:productoId", d.Reorden.Obtener)
	protegido.Delete("/reorden/:productoId", bodega, d.Reorden.Eliminar)
}
