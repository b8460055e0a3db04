package repository

import (
	"context"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// CustomerRepository puerto de lectura de clientes (dato de referencia).
type CustomerRepository interface {
	// ListAll devuelve todos los clientes ordenados por nombre (opciones del formulario).
	ListAll(ctx context.Context) ([]*entity.Customer, error)
	// ListFilteredWithTotals clientes cuyo nombre o email contiene query, con totales de facturación.
	ListFilteredWithTotals(ctx context.Context, query string) ([]*entity.CustomerTotals, error)
}
