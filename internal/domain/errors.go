package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrBackendUnavailable = errors.New("backend no disponible")
)

// BackendError representa un rechazo explícito del backend (respuesta no-2xx).
// El proxy relaya el status tal cual y expone Message al cliente.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Message)
}

// AsBackendError extrae un *BackendError de la cadena de errores, si existe.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
