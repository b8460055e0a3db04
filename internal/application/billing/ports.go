package billing

import (
	"context"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// InvoiceStore capacidad de persistencia que consumen las mutaciones de facturas.
// Cada método ejecuta una sola sentencia parametrizada y devuelve las filas afectadas.
type InvoiceStore interface {
	Insert(ctx context.Context, customerID string, amountCents int64, status, date string) (int64, error)
	Update(ctx context.Context, customerID string, amountCents int64, status, id string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ViewInvalidator invalida las vistas cacheadas de una ruta (fire-and-forget).
type ViewInvalidator interface {
	Invalidate(ctx context.Context, routeKey string)
}

// InvoicePDFGenerator genera la representación en PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.InvoiceWithCustomer) ([]byte, error)
}
