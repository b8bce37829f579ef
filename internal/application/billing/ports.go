package billing

import (
	"context"

	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
)

// InvoiceSource obtiene la factura desde el backend de negocio.
// Devuelve nil (sin error) si la factura no existe.
type InvoiceSource interface {
	GetInvoice(ctx context.Context, id string) (*entity.Invoice, error)
}

// DocumentRenderer renderiza el documento de factura a bytes PDF.
type DocumentRenderer interface {
	RenderInvoice(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}
