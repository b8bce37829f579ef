package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panel-comercial/internal/application/dto"
	"github.com/tu-usuario/panel-comercial/internal/application/report"
	"github.com/tu-usuario/panel-comercial/pkg/logger"
)

// ReportHandler maneja los reportes agregados localmente.
type ReportHandler struct {
	uc  *report.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// TopCustomers GET /api/reports/top-customers?limit=20&offset=0
func (h *ReportHandler) TopCustomers(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	res, err := h.uc.TopCustomers(c.Context(), page)
	if err != nil {
		return RespondError(c, h.log, err)
	}
	return c.JSON(res)
}

// TopProducts GET /api/reports/top-products?limit=20&offset=0
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	res, err := h.uc.TopProducts(c.Context(), page)
	if err != nil {
		return RespondError(c, h.log, err)
	}
	return c.JSON(res)
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	return dto.PageRequest{Limit: limit, Offset: offset}
}
