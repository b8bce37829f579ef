package entity

import "strings"

// Customer vista de solo lectura sobre un cliente del backend.
type Customer struct {
	ID        FlexID `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName devuelve "nombre apellido" sin espacios sobrantes,
// o "Customer #<id>" si ambas partes están vacías.
func (c Customer) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if name == "" {
		return "Customer #" + c.ID.String()
	}
	return name
}
