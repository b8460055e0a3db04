package dto

import "github.com/jhoicas/invoice-dashboard/pkg/format"

// DashboardCardsDTO tarjetas del resumen (montos formateados).
type DashboardCardsDTO struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// RevenueChartDTO datos del gráfico de ingresos de los últimos meses.
type RevenueChartDTO struct {
	Series []format.RevenuePoint `json:"series"`
	format.YAxis
}

// DashboardOverviewDTO respuesta de GET /dashboard.
type DashboardOverviewDTO struct {
	Cards          DashboardCardsDTO `json:"cards"`
	Revenue        RevenueChartDTO   `json:"revenue"`
	LatestInvoices []InvoiceRow      `json:"latest_invoices"`
}
