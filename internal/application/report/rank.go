// Package report contiene la agregación de analítica que este servicio computa
// localmente: ranking de clientes por facturación y ranking de productos por
// ingreso. Son funciones puras sobre colecciones ya descargadas del backend.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panel-comercial/internal/application/dto"
	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
)

// RankCustomers agrupa las órdenes por cliente y devuelve una fila por cada
// cliente del input, ordenadas de mayor a menor total facturado.
//
// Reglas:
//   - Órdenes con borrado suave (deleted_at) quedan excluidas.
//   - Órdenes sin customer_id se descartan; montos no numéricos cuentan como 0.
//   - Clientes sin órdenes aparecen con orders=0, total=0.
//   - El orden es estable: empates conservan el orden relativo del input.
func RankCustomers(orders []entity.Order, customers []entity.Customer) []dto.RankedCustomer {
	type acc struct {
		count int
		total decimal.Decimal
	}
	sums := make(map[string]*acc, len(customers))

	for _, o := range orders {
		if o.DeletedAt != nil {
			continue
		}
		id := o.CustomerID.String()
		if id == "" {
			continue
		}
		a := sums[id]
		if a == nil {
			a = &acc{}
			sums[id] = a
		}
		a.count++
		a.total = a.total.Add(o.TotalAmount.Decimal())
	}

	rows := make([]dto.RankedCustomer, 0, len(customers))
	for _, c := range customers {
		row := dto.RankedCustomer{
			ID:    c.ID.String(),
			Name:  c.DisplayName(),
			Total: decimal.Zero,
		}
		if a, ok := sums[row.ID]; ok {
			row.Orders = a.count
			row.Total = a.total
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}

// RankProducts agrupa las líneas de orden por producto y devuelve una fila por
// cada producto observado, ordenadas de mayor a menor ingreso.
//
// Solo aparecen productos con al menos una línea; el catálogo de productos se
// usa únicamente para resolver nombres ("Product #<id>" si no se encuentra).
// Los ids se normalizan a string en ambos lados antes de comparar.
func RankProducts(orderItems []entity.OrderItem, products []entity.Product) []dto.RankedProduct {
	type acc struct {
		qty     int64
		revenue decimal.Decimal
	}
	sums := make(map[string]*acc)
	var seen []string // orden de primera aparición, para el sort estable

	for _, it := range orderItems {
		id := it.ProductID.String()
		if id == "" {
			continue
		}
		a := sums[id]
		if a == nil {
			a = &acc{}
			sums[id] = a
			seen = append(seen, id)
		}
		qty := it.Quantity.Int()
		a.qty += qty
		a.revenue = a.revenue.Add(it.UnitPrice.Decimal().Mul(decimal.NewFromInt(qty)))
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		if id := p.ID.String(); id != "" {
			names[id] = p.Name
		}
	}

	rows := make([]dto.RankedProduct, 0, len(seen))
	for _, id := range seen {
		name, ok := names[id]
		if !ok || name == "" {
			name = "Product #" + id
		}
		a := sums[id]
		rows = append(rows, dto.RankedProduct{
			ID:      id,
			Name:    name,
			Sales:   a.qty,
			Revenue: a.revenue,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	return rows
}
