package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Proxy      *ProxyHandler
	Reports    *ReportHandler
	Dashboard  *DashboardHandler
	InvoicePDF *InvoiceHandler
	JWTSecret  string
}

// Router registra las rutas de la API. Todo /api exige Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Orders (proxy, lectura y escritura)
	orders := ProxyRoute{
		BackendPath: "/orders",
		Params:      []string{"customer_id", "status", "date_from", "date_to"},
	}
	api.Get("/orders", deps.Proxy.Relay(orders))
	api.Post("/orders", deps.Proxy.Relay(orders))
	api.Get("/orders/:id", deps.Proxy.Relay(orders))
	api.Put("/orders/:id", deps.Proxy.Relay(orders))
	api.Patch("/orders/:id", deps.Proxy.Relay(orders))
	api.Delete("/orders/:id", deps.Proxy.Relay(orders))

	// Order items (proxy, solo lectura)
	orderItems := ProxyRoute{BackendPath: "/order-items", Params: []string{"order_id"}}
	api.Get("/order-items", deps.Proxy.Relay(orderItems))

	// Products (proxy)
	products := ProxyRoute{BackendPath: "/products", Params: []string{"category_id", "search"}}
	api.Get("/products", deps.Proxy.Relay(products))
	api.Post("/products", deps.Proxy.Relay(products))
	api.Get("/products/:id", deps.Proxy.Relay(products))
	api.Put("/products/:id", deps.Proxy.Relay(products))
	api.Delete("/products/:id", deps.Proxy.Relay(products))

	// Customers (proxy)
	customers := ProxyRoute{BackendPath: "/customers", Params: []string{"search"}}
	api.Get("/customers", deps.Proxy.Relay(customers))
	api.Post("/customers", deps.Proxy.Relay(customers))
	api.Get("/customers/:id", deps.Proxy.Relay(customers))
	api.Put("/customers/:id", deps.Proxy.Relay(customers))
	api.Delete("/customers/:id", deps.Proxy.Relay(customers))

	// Invoices — el PDF se registra antes que :id para que matchee primero
	api.Get("/invoices/:id/pdf", deps.InvoicePDF.DownloadPDF)
	invoices := ProxyRoute{
		BackendPath: "/invoices",
		Params:      []string{"customer_id", "status", "date_from", "date_to"},
	}
	api.Get("/invoices", deps.Proxy.Relay(invoices))
	api.Post("/invoices", deps.Proxy.Relay(invoices))
	api.Get("/invoices/:id", deps.Proxy.Relay(invoices))
	api.Put("/invoices/:id", deps.Proxy.Relay(invoices))
	api.Delete("/invoices/:id", deps.Proxy.Relay(invoices))

	// Purchase orders (proxy)
	purchaseOrders := ProxyRoute{
		BackendPath: "/purchase-orders",
		Params:      []string{"status", "date_from", "date_to"},
	}
	api.Get("/purchase-orders", deps.Proxy.Relay(purchaseOrders))
	api.Post("/purchase-orders", deps.Proxy.Relay(purchaseOrders))
	api.Get("/purchase-orders/:id", deps.Proxy.Relay(purchaseOrders))
	api.Put("/purchase-orders/:id", deps.Proxy.Relay(purchaseOrders))
	api.Delete("/purchase-orders/:id", deps.Proxy.Relay(purchaseOrders))

	// Activities (proxy, solo lectura)
	activities := ProxyRoute{BackendPath: "/activities"}
	api.Get("/activities", deps.Proxy.Relay(activities))

	// Dashboard (relay con validación de período)
	api.Get("/dashboard/stats", deps.Dashboard.Stats)
	api.Get("/dashboard/revenue", deps.Dashboard.Revenue)

	// Reportes agregados localmente
	api.Get("/reports/top-customers", deps.Reports.TopCustomers)
	api.Get("/reports/top-products", deps.Reports.TopProducts)
}
