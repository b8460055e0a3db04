package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/pkg/format"
)

// CustomerUseCase casos de uso de lectura para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List clientes cuyo nombre o email contiene query, con sus totales formateados.
func (uc *CustomerUseCase) List(ctx context.Context, query string) ([]dto.CustomerRow, error) {
	list, err := uc.repo.ListFilteredWithTotals(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.CustomerRow, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerRow{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  format.Currency(c.TotalPending),
			TotalPaid:     format.Currency(c.TotalPaid),
		})
	}
	return out, nil
}
