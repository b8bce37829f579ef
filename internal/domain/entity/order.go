package entity

// Estados posibles de una orden en el backend.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order vista de solo lectura sobre una orden del backend.
// DeletedAt distinto de nil marca borrado suave (papelera de reciclaje);
// esas órdenes quedan fuera de las agregaciones.
type Order struct {
	ID          FlexID      `json:"id"`
	CustomerID  FlexID      `json:"customer_id"`
	TotalAmount FlexDecimal `json:"total_amount"`
	TotalPaid   FlexDecimal `json:"total_paid"`
	Status      string      `json:"status"`
	OrderDate   string      `json:"order_date"`
	DeletedAt   *string     `json:"deleted_at"`
}

// OrderItem línea de una orden.
type OrderItem struct {
	ID        FlexID      `json:"id"`
	OrderID   FlexID      `json:"order_id"`
	ProductID FlexID      `json:"product_id"`
	Quantity  FlexInt     `json:"quantity"`
	UnitPrice FlexDecimal `json:"unit_price"`
}
