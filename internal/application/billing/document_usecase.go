package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/panel-comercial/internal/domain"
	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
)

// DocumentUseCase genera el PDF de una factura: descarga los datos del backend,
// arma el documento contra el perfil de empresa y lo renderiza.
type DocumentUseCase struct {
	source   InvoiceSource
	renderer DocumentRenderer
	profile  entity.CompanyProfile
}

// NewDocumentUseCase construye el caso de uso. El perfil se copia por valor;
// cambios posteriores de configuración no afectan documentos en curso.
func NewDocumentUseCase(source InvoiceSource, renderer DocumentRenderer, profile entity.CompanyProfile) *DocumentUseCase {
	return &DocumentUseCase{source: source, renderer: renderer, profile: profile}
}

// DownloadInvoicePDF devuelve los bytes del PDF y el nombre de archivo sugerido.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe en el backend.
func (uc *DocumentUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.source.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	doc := BuildDocument(inv, uc.profile, time.Now())

	pdfBytes, err := uc.renderer.RenderInvoice(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename := fmt.Sprintf("factura_%s.pdf", nonEmptyString(inv.Number, inv.ID.String()))
	return pdfBytes, filename, nil
}

func nonEmptyString(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
