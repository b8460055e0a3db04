package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-dashboard/pkg/format"
)

// InvoiceRow fila de la tabla de facturas (montos y fechas ya formateados).
type InvoiceRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// InvoiceListResponse respuesta de GET /dashboard/invoices.
type InvoiceListResponse struct {
	Query       string            `json:"query"`
	CurrentPage int               `json:"current_page"`
	TotalPages  int               `json:"total_pages"`
	Invoices    []InvoiceRow      `json:"invoices"`
	Pagination  []format.PageItem `json:"pagination"`
	Links       *PageLinks        `json:"links,omitempty"`
}

// PageLinks enlaces de navegación del listado; los rellena la capa HTTP.
type PageLinks struct {
	Search string            `json:"search"` // primera página de la búsqueda actual
	Prev   string            `json:"prev,omitempty"`
	Next   string            `json:"next,omitempty"`
	Pages  map[string]string `json:"pages,omitempty"`
}

// CustomerOption opción del selector de cliente.
type CustomerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InvoiceForm factura precargada en el formulario de edición (monto en dólares).
type InvoiceForm struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

// InvoiceFormResponse datos para pintar el formulario de crear/editar.
type InvoiceFormResponse struct {
	Invoice   *InvoiceForm     `json:"invoice,omitempty"`
	Customers []CustomerOption `json:"customers"`
}

// CustomerRow fila de la tabla de clientes.
type CustomerRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
