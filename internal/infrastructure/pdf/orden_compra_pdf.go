// Package pdf genera el comprobante imprimible de una orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Orden de Compra N° + Fecha                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre / NIT / contacto                         │
//	│  DESTINO: Almacén + ubicación                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Cantidad | P.Unit | Subtotal       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// OrdenCompraPDFGenerator implementa purchasing.PDFGenerator con Maroto v2.
type OrdenCompraPDFGenerator struct{}

func NewOrdenCompraPDFGenerator() *OrdenCompraPDFGenerator { return &OrdenCompraPDFGenerator{} }

// OrdenCompra genera el PDF y devuelve sus bytes.
func (g *OrdenCompraPDFGenerator) OrdenCompra(o *entity.OrdenCompra, proveedor *entity.Proveedor, almacen *entity.Almacen) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Orden de Compra #%d", o.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(proveedorRow(proveedor))
	m.AddRows(destinoRow(almacen))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(o.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(o))

	if o.Observacion != "" {
		m.AddRows(line.NewRow(2))
		m.AddRows(observacionRow(o.Observacion))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(o *entity.OrdenCompra) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", o.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+o.Fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func proveedorRow(p *entity.Proveedor) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(p.NIT, "—"),
				nonEmpty(p.Telefono, "—"),
				nonEmpty(p.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func destinoRow(a *entity.Almacen) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("ALMACÉN DESTINO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", a.Nombre, nonEmpty(a.Ubicacion, "—")),
				props.Text{Size: 9, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cantidad", 2, align.Right),
		h("P. Unitario", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func tableItemRows(items []*entity.OrdenCompraItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(it.ProductoSKU, props.Text{Size: 8})),
			col.New(4).Add(text.New(it.ProductoNombre, props.Text{Size: 8})),
			col.New(2).Add(text.New(cantidadLabel(it), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New("$ "+it.PrecioUnitario.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New("$ "+it.Subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func cantidadLabel(it *entity.OrdenCompraItem) string {
	if it.CantidadGramos != nil {
		return it.CantidadGramos.StringFixed(3) + " g"
	}
	if it.Cantidad != nil {
		return fmt.Sprintf("%d pzas", *it.Cantidad)
	}
	return "—"
}

func totalRow(o *entity.OrdenCompra) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
		col.New(2).Add(text.New("$ "+o.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
		})),
	)
}

func observacionRow(obs string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(obs, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
