package entity

// Product vista de solo lectura sobre un producto del backend.
type Product struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}
