package billing

import "github.com/jhoicas/invoice-dashboard/internal/application/dto"

// OutcomeKind variante del resultado de una mutación.
type OutcomeKind int

const (
	// OutcomeRedirect la mutación se aplicó; el llamador debe navegar a RedirectTo.
	OutcomeRedirect OutcomeKind = iota + 1
	// OutcomeValidationFailed el formulario tiene errores por campo; no se tocó la base de datos.
	OutcomeValidationFailed
	// OutcomeStoreFailed la base de datos falló; State.Message lleva el resumen genérico.
	OutcomeStoreFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRedirect:
		return "redirect"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeStoreFailed:
		return "store_failed"
	default:
		return "unknown"
	}
}

// MutationOutcome resultado de crear o editar una factura. La navegación es una variante
// más del resultado, no un pánico: el llamador hace switch sobre Kind.
type MutationOutcome struct {
	Kind       OutcomeKind
	State      dto.MutationState // vacío cuando Kind == OutcomeRedirect
	RedirectTo string            // solo cuando Kind == OutcomeRedirect
}

func redirectTo(path string) MutationOutcome {
	return MutationOutcome{Kind: OutcomeRedirect, RedirectTo: path}
}

func validationFailed(state dto.MutationState) MutationOutcome {
	return MutationOutcome{Kind: OutcomeValidationFailed, State: state}
}

func storeFailed(message string) MutationOutcome {
	return MutationOutcome{Kind: OutcomeStoreFailed, State: dto.MutationState{Message: message}}
}
