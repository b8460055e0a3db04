package repository

import (
	"context"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// CardTotals resultado crudo de las tarjetas del dashboard. Montos en centavos.
type CardTotals struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	TotalPaid         int64
	TotalPending      int64
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	GetCardTotals(ctx context.Context) (*CardTotals, error)
	// GetRevenue devuelve los ingresos mensuales en el orden del calendario.
	GetRevenue(ctx context.Context) ([]entity.Revenue, error)
}
