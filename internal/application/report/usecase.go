package report

import (
	"context"
	"fmt"

	"github.com/tu-usuario/panel-comercial/internal/application/dto"
	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
)

// Fetcher descarga las colecciones crudas del backend. Cada método está
// acotado por limit; la implementación real vive en infrastructure/backend.
type Fetcher interface {
	ListOrders(ctx context.Context, limit int) ([]entity.Order, error)
	ListCustomers(ctx context.Context, limit int) ([]entity.Customer, error)
	ListOrderItems(ctx context.Context, limit int) ([]entity.OrderItem, error)
	ListProducts(ctx context.Context, limit int) ([]entity.Product, error)
}

// UseCase orquesta los reportes: descarga las colecciones en paralelo de a
// pares, agrega en memoria y pagina el resultado.
//
// Si cualquiera de las dos descargas falla, el reporte completo falla; no hay
// agregación parcial ni reintentos automáticos.
type UseCase struct {
	fetcher    Fetcher
	fetchLimit int
}

// NewUseCase construye el caso de uso. fetchLimit acota cuántos registros se
// piden al backend por colección (la agregación corre sobre todo lo recibido,
// nunca sobre un subconjunto filtrado por UI).
func NewUseCase(fetcher Fetcher, fetchLimit int) *UseCase {
	if fetchLimit <= 0 {
		fetchLimit = 1000
	}
	return &UseCase{fetcher: fetcher, fetchLimit: fetchLimit}
}

// TopCustomers descarga órdenes y clientes en paralelo, agrega y pagina.
func (uc *UseCase) TopCustomers(ctx context.Context, page dto.PageRequest) (*dto.TopCustomersResponse, error) {
	page.DefaultPage()

	type ordersResult struct {
		rows []entity.Order
		err  error
	}
	type customersResult struct {
		rows []entity.Customer
		err  error
	}

	ordersCh := make(chan ordersResult, 1)
	customersCh := make(chan customersResult, 1)

	go func() {
		rows, err := uc.fetcher.ListOrders(ctx, uc.fetchLimit)
		ordersCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := uc.fetcher.ListCustomers(ctx, uc.fetchLimit)
		customersCh <- customersResult{rows, err}
	}()

	orders := <-ordersCh
	customers := <-customersCh

	if orders.err != nil {
		return nil, fmt.Errorf("reporte clientes: órdenes: %w", orders.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("reporte clientes: clientes: %w", customers.err)
	}

	ranked := RankCustomers(orders.rows, customers.rows)
	return &dto.TopCustomersResponse{
		Rows:   Paginate(ranked, page.Limit, page.Offset),
		Total:  len(ranked),
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// TopProducts descarga líneas de orden y productos en paralelo, agrega y pagina.
func (uc *UseCase) TopProducts(ctx context.Context, page dto.PageRequest) (*dto.TopProductsResponse, error) {
	page.DefaultPage()

	type itemsResult struct {
		rows []entity.OrderItem
		err  error
	}
	type productsResult struct {
		rows []entity.Product
		err  error
	}

	itemsCh := make(chan itemsResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		rows, err := uc.fetcher.ListOrderItems(ctx, uc.fetchLimit)
		itemsCh <- itemsResult{rows, err}
	}()
	go func() {
		rows, err := uc.fetcher.ListProducts(ctx, uc.fetchLimit)
		productsCh <- productsResult{rows, err}
	}()

	items := <-itemsCh
	products := <-productsCh

	if items.err != nil {
		return nil, fmt.Errorf("reporte productos: líneas: %w", items.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("reporte productos: productos: %w", products.err)
	}

	ranked := RankProducts(items.rows, products.rows)
	return &dto.TopProductsResponse{
		Rows:   Paginate(ranked, page.Limit, page.Offset),
		Total:  len(ranked),
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
