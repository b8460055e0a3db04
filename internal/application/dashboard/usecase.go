// Package dashboard contiene el caso de uso del resumen del dashboard: tarjetas,
// gráfico de ingresos y últimas facturas.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/pkg/format"
)

const latestInvoicesLimit = 5 // filas del widget "Latest Invoices"

// UseCase genera el resumen del dashboard.
//
// Fuente de datos: DashboardRepository (tarjetas e ingresos) e InvoiceRepository (últimas facturas).
type UseCase struct {
	dashboardRepo repository.DashboardRepository
	invoiceRepo   repository.InvoiceRepository
	locale        string
}

// NewUseCase construye el caso de uso.
func NewUseCase(dashboardRepo repository.DashboardRepository, invoiceRepo repository.InvoiceRepository, locale string) *UseCase {
	if locale == "" {
		locale = format.DefaultLocale
	}
	return &UseCase{dashboardRepo: dashboardRepo, invoiceRepo: invoiceRepo, locale: locale}
}

// Overview construye el DashboardOverviewDTO.
//
// Tres lecturas en paralelo:
//  1. GetCardTotals  → Cards
//  2. GetRevenue     → Revenue (+ eje Y)
//  3. Latest(5)      → LatestInvoices
//
// La primera que falle cancela las demás y su error se devuelve.
func (uc *UseCase) Overview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	var (
		totals  *repository.CardTotals
		revenue []entity.Revenue
		latest  []*entity.InvoiceWithCustomer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = uc.dashboardRepo.GetCardTotals(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: tarjetas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		revenue, err = uc.dashboardRepo.GetRevenue(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: ingresos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		latest, err = uc.invoiceRepo.Latest(gctx, latestInvoicesLimit)
		if err != nil {
			return fmt.Errorf("dashboard: últimas facturas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// ── Ensamblar DTO ─────────────────────────────────────────────────────────
	out := &dto.DashboardOverviewDTO{
		Cards: dto.DashboardCardsDTO{
			NumberOfInvoices:     totals.NumberOfInvoices,
			NumberOfCustomers:    totals.NumberOfCustomers,
			TotalPaidInvoices:    format.Currency(totals.TotalPaid),
			TotalPendingInvoices: format.Currency(totals.TotalPending),
		},
		LatestInvoices: make([]dto.InvoiceRow, 0, len(latest)),
	}

	series := make([]format.RevenuePoint, 0, len(revenue))
	for _, r := range revenue {
		series = append(series, format.RevenuePoint{Label: r.Month, Value: float64(r.Revenue)})
	}
	out.Revenue = dto.RevenueChartDTO{Series: series, YAxis: format.GenerateYAxis(series)}

	for _, inv := range latest {
		out.LatestInvoices = append(out.LatestInvoices, billing.InvoiceRowFromEntity(inv, uc.locale))
	}
	return out, nil
}
