package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para las tarjetas y el gráfico de ingresos.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetCardTotals cuenta facturas y clientes y suma montos por estado (centavos).
// Las sumas de BIGINT llegan como NUMERIC y se leen con el codec de shopspring/decimal.
func (r *DashboardRepo) GetCardTotals(ctx context.Context) (*repository.CardTotals, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM invoices)                                                       AS number_of_invoices,
	    (SELECT COUNT(*) FROM customers)                                                      AS number_of_customers,
	    (SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'paid')                 AS total_paid,
	    (SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'pending')              AS total_pending`

	var (
		out           repository.CardTotals
		paid, pending decimal.Decimal
	)
	if err := r.q.QueryRow(ctx, query).Scan(&out.NumberOfInvoices, &out.NumberOfCustomers, &paid, &pending); err != nil {
		return nil, fmt.Errorf("card totals: %w", err)
	}
	out.TotalPaid = cents(paid)
	out.TotalPending = cents(pending)
	return &out, nil
}

// GetRevenue ingresos mensuales en orden de calendario.
func (r *DashboardRepo) GetRevenue(ctx context.Context) ([]entity.Revenue, error) {
	const query = `
	SELECT month, revenue
	FROM revenue
	ORDER BY array_position(
	    ARRAY['Jan','Feb','Mar','Apr','May','Jun','Jul','Aug','Sep','Oct','Nov','Dec']::varchar[],
	    month
	)`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}
	defer rows.Close()

	var list []entity.Revenue
	for rows.Next() {
		var rv entity.Revenue
		if err := rows.Scan(&rv.Month, &rv.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}
