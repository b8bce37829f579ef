package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panel-comercial/internal/application/billing"
	"github.com/tu-usuario/panel-comercial/internal/application/dto"
	"github.com/tu-usuario/panel-comercial/internal/domain"
	"github.com/tu-usuario/panel-comercial/pkg/logger"
)

// InvoiceHandler genera el PDF de una factura a partir de los datos del backend.
type InvoiceHandler struct {
	uc  *billing.DocumentUseCase
	log *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.DocumentUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, log: log}
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invoice id requerido"})
	}

	pdfBytes, filename, err := h.uc.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Invoice not found"})
		}
		return RespondError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
