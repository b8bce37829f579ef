package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panel-comercial/internal/application/dto"
)

// validPeriods tokens de período aceptados por el dashboard.
var validPeriods = map[string]struct{}{
	"daily":   {},
	"weekly":  {},
	"monthly": {},
	"yearly":  {},
}

// DashboardHandler relaya las métricas ya agregadas del backend. Este servicio
// no computa los agregados de período: solo valida el token de período y
// reenvía; nunca fabrica valores ante un fallo del backend.
type DashboardHandler struct {
	stats   fiber.Handler
	revenue fiber.Handler
}

// NewDashboardHandler construye el handler sobre el proxy genérico.
func NewDashboardHandler(proxy *ProxyHandler) *DashboardHandler {
	return &DashboardHandler{
		stats:   proxy.Relay(ProxyRoute{BackendPath: "/dashboard/stats", Params: []string{"period"}}),
		revenue: proxy.Relay(ProxyRoute{BackendPath: "/dashboard/revenue", Params: []string{"period"}}),
	}
}

// Stats GET /api/dashboard/stats?period=daily|weekly|monthly|yearly
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	if !periodOK(c) {
		return invalidPeriod(c)
	}
	return h.stats(c)
}

// Revenue GET /api/dashboard/revenue?period=daily|weekly|monthly|yearly
// Serie de ingresos por bucket de tiempo, agregada por el backend.
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	if !periodOK(c) {
		return invalidPeriod(c)
	}
	return h.revenue(c)
}

func periodOK(c *fiber.Ctx) bool {
	_, ok := validPeriods[c.Query("period")]
	return ok
}

func invalidPeriod(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid period"})
}
