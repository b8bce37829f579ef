// Package billing construye el documento de factura que se renderiza a PDF.
// El contrato numérico: subtotal = Σ cantidad×precio, descuento = Σ descuentos,
// total = subtotal − descuento + envío. Montos con dos decimales y separador
// de miles; due date por defecto = fecha de emisión + 14 días.
package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
)

// defaultDueDays vencimiento por defecto cuando la factura no trae due_date.
const defaultDueDays = 14

const dateLayout = "2006-01-02"

// LineItem línea del documento, ya normalizada desde el JSON del backend.
type LineItem struct {
	Description string
	Quantity    int64
	Price       decimal.Decimal
	Discount    decimal.Decimal
}

// InvoiceDocument factura lista para renderizar. Es un valor inmutable:
// se construye una vez con BuildDocument y no se modifica después.
type InvoiceDocument struct {
	Number        string
	IssueDate     time.Time
	DueDate       time.Time
	CustomerName  string
	CustomerTaxID string
	Items         []LineItem
	Delivery      decimal.Decimal
	Company       entity.CompanyProfile
}

// BuildDocument normaliza la factura del backend contra el perfil de empresa.
// now se usa como fecha de emisión cuando issue_date falta o no parsea.
func BuildDocument(inv *entity.Invoice, profile entity.CompanyProfile, now time.Time) InvoiceDocument {
	issue := parseDate(inv.IssueDate, now)
	due := parseDate(inv.DueDate, time.Time{})
	if due.IsZero() {
		due = issue.AddDate(0, 0, defaultDueDays)
	}

	items := make([]LineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItem{
			Description: it.Description,
			Quantity:    it.Quantity.Int(),
			Price:       it.Price.Decimal(),
			Discount:    it.Discount.Decimal(),
		})
	}

	return InvoiceDocument{
		Number:        inv.Number,
		IssueDate:     issue,
		DueDate:       due,
		CustomerName:  inv.CustomerName,
		CustomerTaxID: inv.CustomerTax,
		Items:         items,
		Delivery:      inv.Delivery.Decimal(),
		Company:       profile,
	}
}

// Subtotal suma cantidad×precio de todas las líneas.
func (d InvoiceDocument) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

// DiscountTotal suma los descuentos de todas las líneas.
func (d InvoiceDocument) DiscountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.Discount)
	}
	return total
}

// GrandTotal = subtotal − descuentos + envío.
func (d InvoiceDocument) GrandTotal() decimal.Decimal {
	return d.Subtotal().Sub(d.DiscountTotal()).Add(d.Delivery)
}

func parseDate(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fallback
	}
	return t
}

// FormatMoney formatea un monto con dos decimales, punto de miles y coma
// decimal. Ej: 1234567.5 → "1.234.567,50".
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, decPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}

	out := string(buf) + "," + decPart
	if neg {
		return "-" + out
	}
	return out
}
