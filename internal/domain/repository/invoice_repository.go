package repository

import (
	"context"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Las mutaciones devuelven las filas afectadas; los parámetros van posicionales y
// la implementación los enlaza como parámetros SQL (nunca concatenados).
type InvoiceRepository interface {
	Insert(ctx context.Context, customerID string, amountCents int64, status, date string) (int64, error)
	Update(ctx context.Context, customerID string, amountCents int64, status, id string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)

	// GetByID devuelve nil, nil si la factura no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetWithCustomer(ctx context.Context, id string) (*entity.InvoiceWithCustomer, error)
	// ListFiltered busca sin distinguir mayúsculas en nombre/email del cliente, monto, fecha y estado.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	Latest(ctx context.Context, limit int) ([]*entity.InvoiceWithCustomer, error)
}
