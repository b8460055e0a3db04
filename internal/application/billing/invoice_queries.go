package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/invoice"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoice-dashboard/pkg/format"
)

// ItemsPerPage filas por página del listado de facturas.
const ItemsPerPage = 6

// InvoiceQueries lecturas de facturas para las vistas del dashboard.
type InvoiceQueries struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	locale    string
}

// NewInvoiceQueries construye el caso de uso. locale vacío usa format.DefaultLocale.
func NewInvoiceQueries(invoices repository.InvoiceRepository, customers repository.CustomerRepository, locale string) *InvoiceQueries {
	if locale == "" {
		locale = format.DefaultLocale
	}
	return &InvoiceQueries{invoices: invoices, customers: customers, locale: locale}
}

// ListInvoices devuelve la página solicitada del listado filtrado por query. Páginas menores
// a 1 usan la primera y las posteriores a la última usan la última.
func (uc *InvoiceQueries) ListInvoices(ctx context.Context, query string, page int) (*dto.InvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}

	count, err := uc.invoices.CountFiltered(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: contar: %w", err)
	}
	totalPages := TotalPages(count)
	if page > totalPages {
		page = max(totalPages, 1)
	}

	list, err := uc.invoices.ListFiltered(ctx, query, ItemsPerPage, (page-1)*ItemsPerPage)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}

	rows := make([]dto.InvoiceRow, 0, len(list))
	for _, inv := range list {
		rows = append(rows, InvoiceRowFromEntity(inv, uc.locale))
	}

	return &dto.InvoiceListResponse{
		Query:       query,
		CurrentPage: page,
		TotalPages:  totalPages,
		Invoices:    rows,
		Pagination:  format.GeneratePagination(page, totalPages),
	}, nil
}

// CreateForm opciones de cliente para el formulario de alta.
func (uc *InvoiceQueries) CreateForm(ctx context.Context) (*dto.InvoiceFormResponse, error) {
	options, err := uc.customerOptions(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceFormResponse{Customers: options}, nil
}

// InvoiceForm factura precargada (monto en dólares) más las opciones de cliente.
// Devuelve domain.ErrNotFound si la factura no existe.
func (uc *InvoiceQueries) InvoiceForm(ctx context.Context, id string) (*dto.InvoiceFormResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	options, err := uc.customerOptions(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceFormResponse{
		Invoice: &dto.InvoiceForm{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Amount:     invoice.DollarsFromCents(inv.Amount),
			Status:     inv.Status,
		},
		Customers: options,
	}, nil
}

func (uc *InvoiceQueries) customerOptions(ctx context.Context) ([]dto.CustomerOption, error) {
	customers, err := uc.customers.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.CustomerOption, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerOption{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// TotalPages número de páginas para count filas.
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + ItemsPerPage - 1) / ItemsPerPage
}

// InvoiceRowFromEntity formatea una factura con su cliente para las tablas.
func InvoiceRowFromEntity(inv *entity.InvoiceWithCustomer, locale string) dto.InvoiceRow {
	return dto.InvoiceRow{
		ID:       inv.ID,
		Name:     inv.CustomerName,
		Email:    inv.CustomerEmail,
		ImageURL: inv.ImageURL,
		Amount:   format.Currency(inv.Amount),
		Date:     format.DateToLocal(inv.Date.Format(entity.DateLayout), locale),
		Status:   inv.Status,
	}
}
