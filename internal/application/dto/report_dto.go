package dto

import "github.com/shopspring/decimal"

// RankedCustomer fila del ranking de clientes: un cliente por fila, incluidos
// los que no tienen órdenes (orders=0, total=0).
type RankedCustomer struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Orders int             `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

// RankedProduct fila del ranking de productos. Solo aparecen productos
// observados en al menos una línea de orden.
type RankedProduct struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Sales   int64           `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopCustomersResponse respuesta paginada del reporte de clientes.
type TopCustomersResponse struct {
	Rows   []RankedCustomer `json:"rows"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// TopProductsResponse respuesta paginada del reporte de productos.
type TopProductsResponse struct {
	Rows   []RankedProduct `json:"rows"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
