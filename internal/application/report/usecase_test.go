package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panel-comercial/internal/application/dto"
	"github.com/tu-usuario/panel-comercial/internal/application/report"
	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
)

// fakeFetcher implementa report.Fetcher en memoria para los tests.
type fakeFetcher struct {
	orders    []entity.Order
	customers []entity.Customer
	items     []entity.OrderItem
	products  []entity.Product

	ordersErr    error
	customersErr error
	itemsErr     error
	productsErr  error

	lastLimit int
}

func (f *fakeFetcher) ListOrders(_ context.Context, limit int) ([]entity.Order, error) {
	f.lastLimit = limit
	return f.orders, f.ordersErr
}

func (f *fakeFetcher) ListCustomers(_ context.Context, limit int) ([]entity.Customer, error) {
	return f.customers, f.customersErr
}

func (f *fakeFetcher) ListOrderItems(_ context.Context, limit int) ([]entity.OrderItem, error) {
	return f.items, f.itemsErr
}

func (f *fakeFetcher) ListProducts(_ context.Context, limit int) ([]entity.Product, error) {
	return f.products, f.productsErr
}

func amount(s string) entity.FlexDecimal {
	return entity.NewFlexDecimal(decimal.RequireFromString(s))
}

// ──────────────────────────────────────────────────────────────────────────────
// TopCustomers
// ──────────────────────────────────────────────────────────────────────────────

func TestTopCustomers_AgregaYPagina(t *testing.T) {
	fetcher := &fakeFetcher{
		orders: []entity.Order{
			{CustomerID: "1", TotalAmount: amount("100")},
			{CustomerID: "2", TotalAmount: amount("300")},
			{CustomerID: "3", TotalAmount: amount("200")},
		},
		customers: []entity.Customer{
			{ID: "1", FirstName: "Uno"},
			{ID: "2", FirstName: "Dos"},
			{ID: "3", FirstName: "Tres"},
		},
	}
	uc := report.NewUseCase(fetcher, 500)

	res, err := uc.TopCustomers(context.Background(), dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total, "el total refleja el ranking completo, no la página")
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Dos", res.Rows[0].Name)
	assert.Equal(t, "Tres", res.Rows[1].Name)
	assert.Equal(t, 500, fetcher.lastLimit, "la descarga usa el fetch limit configurado")
}

func TestTopCustomers_FalloDeFetchPropaga(t *testing.T) {
	boom := errors.New("backend caído")
	uc := report.NewUseCase(&fakeFetcher{ordersErr: boom}, 100)

	_, err := uc.TopCustomers(context.Background(), dto.PageRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom, "el error de la descarga debe propagarse envuelto")
}

func TestTopCustomers_FalloEnClientesTambienPropaga(t *testing.T) {
	boom := errors.New("clientes no disponibles")
	uc := report.NewUseCase(&fakeFetcher{customersErr: boom}, 100)

	_, err := uc.TopCustomers(context.Background(), dto.PageRequest{})
	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// TopProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestTopProducts_AgregaYPagina(t *testing.T) {
	fetcher := &fakeFetcher{
		items: []entity.OrderItem{
			{ProductID: "a", Quantity: 2, UnitPrice: amount("10")},
			{ProductID: "b", Quantity: 1, UnitPrice: amount("50")},
		},
		products: []entity.Product{
			{ID: "a", Name: "Alfa"},
			{ID: "b", Name: "Beta"},
		},
	}
	uc := report.NewUseCase(fetcher, 100)

	res, err := uc.TopProducts(context.Background(), dto.PageRequest{Limit: 10, Offset: 0})
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Beta", res.Rows[0].Name, "50 > 20, Beta primero")
	assert.Equal(t, int64(2), res.Rows[1].Sales)
}

func TestTopProducts_FalloDeFetchPropaga(t *testing.T) {
	boom := errors.New("líneas no disponibles")
	uc := report.NewUseCase(&fakeFetcher{itemsErr: boom}, 100)

	_, err := uc.TopProducts(context.Background(), dto.PageRequest{})
	assert.ErrorIs(t, err, boom)
}
