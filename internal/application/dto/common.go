package dto

import "github.com/jhoicas/invoice-dashboard/internal/domain/invoice"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MutationState resultado de un envío de formulario para volver a mostrarlo:
// errores por campo y/o un mensaje resumen. Se construye en cada intento y no se persiste.
type MutationState struct {
	Errors  invoice.FieldErrors `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Empty indica ausencia de errores y de mensaje.
func (s MutationState) Empty() bool {
	return len(s.Errors) == 0 && s.Message == ""
}
