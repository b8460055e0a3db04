package billing

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/invoice"
)

// InvoicesRoute ruta de la lista de facturas; es la vista que se invalida y el destino
// de la navegación tras crear o editar.
const InvoicesRoute = "/dashboard/invoices"

// Mensajes de resumen que ve el usuario.
const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgCreateDatabase      = "Database Error: Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgUpdateDatabase      = "Database Error: Failed to Update Invoice."
	MsgDeleteDatabase      = "Database Error: Failed to delete invoice."
)

// ErrDeleteInvoice error que devuelve DeleteInvoice cuando la base de datos falla.
var ErrDeleteInvoice = errors.New(MsgDeleteDatabase)

// deleteError conserva la causa para los logs sin cambiar el mensaje visible.
type deleteError struct {
	cause error
}

func (e *deleteError) Error() string   { return MsgDeleteDatabase }
func (e *deleteError) Unwrap() []error { return []error{ErrDeleteInvoice, e.cause} }

// InvoiceActions mutaciones de facturas: validar, escribir, invalidar la vista y navegar.
type InvoiceActions struct {
	store InvoiceStore
	views ViewInvalidator
	now   func() time.Time
	log   zerolog.Logger
}

// NewInvoiceActions construye el caso de uso con el reloj del sistema.
func NewInvoiceActions(store InvoiceStore, views ViewInvalidator, log zerolog.Logger) *InvoiceActions {
	return &InvoiceActions{
		store: store,
		views: views,
		now:   time.Now,
		log:   log.With().Str("component", "invoice_actions").Logger(),
	}
}

// WithClock reemplaza el reloj usado para la fecha de creación.
func (a *InvoiceActions) WithClock(now func() time.Time) *InvoiceActions {
	a.now = now
	return a
}

// CreateInvoice valida el formulario, inserta la factura con la fecha de hoy y, si todo sale
// bien, invalida la lista y pide navegar a ella. Nunca devuelve error: las fallas son variantes
// del resultado.
func (a *InvoiceActions) CreateInvoice(ctx context.Context, fields invoice.Fields) MutationOutcome {
	in, fieldErrs := invoice.Validate(fields)
	if len(fieldErrs) > 0 {
		return validationFailed(dto.MutationState{Errors: fieldErrs, Message: MsgCreateMissingFields})
	}

	amountCents := in.AmountCents()
	date := a.now().UTC().Format(entity.DateLayout)

	if _, err := a.store.Insert(ctx, in.CustomerID, amountCents, in.Status, date); err != nil {
		a.log.Error().Err(err).
			Str("customer_id", in.CustomerID).
			Int64("amount_cents", amountCents).
			Msg("crear factura: error de base de datos")
		return storeFailed(MsgCreateDatabase)
	}

	a.views.Invalidate(ctx, InvoicesRoute)
	a.log.Info().Str("customer_id", in.CustomerID).Int64("amount_cents", amountCents).Msg("factura creada")
	return redirectTo(InvoicesRoute)
}

// UpdateInvoice igual que CreateInvoice pero sobre la factura id; la fecha no cambia.
func (a *InvoiceActions) UpdateInvoice(ctx context.Context, id string, fields invoice.Fields) MutationOutcome {
	in, fieldErrs := invoice.Validate(fields)
	if len(fieldErrs) > 0 {
		return validationFailed(dto.MutationState{Errors: fieldErrs, Message: MsgUpdateMissingFields})
	}

	amountCents := in.AmountCents()
	rows, err := a.store.Update(ctx, in.CustomerID, amountCents, in.Status, id)
	if err != nil {
		a.log.Error().Err(err).Str("invoice_id", id).Msg("editar factura: error de base de datos")
		return storeFailed(MsgUpdateDatabase)
	}
	if rows == 0 {
		a.log.Warn().Str("invoice_id", id).Msg("editar factura: ninguna fila afectada")
	}

	a.views.Invalidate(ctx, InvoicesRoute)
	return redirectTo(InvoicesRoute)
}

// DeleteInvoice borra la factura e invalida la lista; no navega. En falla devuelve un error
// cuyo mensaje es MsgDeleteDatabase y que cumple errors.Is(err, ErrDeleteInvoice).
func (a *InvoiceActions) DeleteInvoice(ctx context.Context, id string) error {
	rows, err := a.store.Delete(ctx, id)
	if err != nil {
		a.log.Error().Err(err).Str("invoice_id", id).Msg("eliminar factura: error de base de datos")
		return &deleteError{cause: err}
	}
	if rows == 0 {
		a.log.Warn().Str("invoice_id", id).Msg("eliminar factura: ninguna fila afectada")
	}

	a.views.Invalidate(ctx, InvoicesRoute)
	return nil
}
