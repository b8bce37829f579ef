package entity

// Invoice vista de solo lectura sobre una factura del backend, con sus líneas.
// Las fechas llegan como string "YYYY-MM-DD"; la capa de billing las interpreta
// y aplica el vencimiento por defecto cuando due_date está vacío.
type Invoice struct {
	ID           FlexID        `json:"id"`
	Number       string        `json:"number"`
	CustomerName string        `json:"customer_name"`
	CustomerTax  string        `json:"customer_tax_id"`
	IssueDate    string        `json:"issue_date"`
	DueDate      string        `json:"due_date"`
	Delivery     FlexDecimal   `json:"delivery"`
	Items        []InvoiceLine `json:"items"`
}

// InvoiceLine línea de detalle de una factura.
type InvoiceLine struct {
	Description string      `json:"description"`
	Quantity    FlexInt     `json:"quantity"`
	Price       FlexDecimal `json:"price"`
	Discount    FlexDecimal `json:"discount"`
}
