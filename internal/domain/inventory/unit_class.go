package inventory

import "strings"

// EsPorGramos clasifica una unidad de medida como continua (gramos) o discreta
// (piezas). Es el único punto del sistema que decide qué campo de cantidad es
// autoritativo para un producto; ledger, bitácora de movimientos y
// orquestadores consultan este predicado en lugar de confiar en flags del
// cliente.
func EsPorGramos(abreviatura, nombre string) bool {
	abrev := strings.ToLower(strings.TrimSpace(abreviatura))
	if abrev == "g" || abrev == "gr" {
		return true
	}
	n := strings.ToLower(strings.TrimSpace(nombre))
	return n == "gramo" || strings.HasPrefix(n, "gram")
}
