package billing_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/pkg/format"
)

// fakeInvoiceRepo implementación en memoria de repository.InvoiceRepository.
type fakeInvoiceRepo struct {
	all        []*entity.InvoiceWithCustomer
	err        error
	lastQuery  string
	lastLimit  int
	lastOffset int
}

func (r *fakeInvoiceRepo) Insert(context.Context, string, int64, string, string) (int64, error) {
	return 1, nil
}
func (r *fakeInvoiceRepo) Update(context.Context, string, int64, string, string) (int64, error) {
	return 1, nil
}
func (r *fakeInvoiceRepo) Delete(context.Context, string) (int64, error) { return 1, nil }

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, inv := range r.all {
		if inv.ID == id {
			cp := inv.Invoice
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetWithCustomer(_ context.Context, id string) (*entity.InvoiceWithCustomer, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, inv := range r.all {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastQuery, r.lastLimit, r.lastOffset = query, limit, offset
	if offset >= len(r.all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.all) {
		end = len(r.all)
	}
	return r.all[offset:end], nil
}

func (r *fakeInvoiceRepo) CountFiltered(context.Context, string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return len(r.all), nil
}

func (r *fakeInvoiceRepo) Latest(_ context.Context, limit int) ([]*entity.InvoiceWithCustomer, error) {
	if r.err != nil {
		return nil, r.err
	}
	if limit > len(r.all) {
		limit = len(r.all)
	}
	return r.all[:limit], nil
}

type fakeCustomerRepo struct {
	all    []*entity.Customer
	totals []*entity.CustomerTotals
	err    error
}

func (r *fakeCustomerRepo) ListAll(context.Context) ([]*entity.Customer, error) {
	return r.all, r.err
}

func (r *fakeCustomerRepo) ListFilteredWithTotals(context.Context, string) ([]*entity.CustomerTotals, error) {
	return r.totals, r.err
}

func sampleInvoices(n int) []*entity.InvoiceWithCustomer {
	out := make([]*entity.InvoiceWithCustomer, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &entity.InvoiceWithCustomer{
			Invoice: entity.Invoice{
				ID:         fmt.Sprintf("inv-%02d", i),
				CustomerID: "c1",
				Amount:     int64(i) * 12345,
				Status:     entity.InvoiceStatusPending,
				Date:       time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			},
			CustomerName:  "Delba de Oliveira",
			CustomerEmail: "delba@oliveira.com",
			ImageURL:      "/customers/delba-de-oliveira.png",
		})
	}
	return out
}

func TestListInvoices_PaginaYFormatea(t *testing.T) {
	repo := &fakeInvoiceRepo{all: sampleInvoices(20)}
	uc := billing.NewInvoiceQueries(repo, &fakeCustomerRepo{}, "")

	res, err := uc.ListInvoices(context.Background(), "delba", 2)

	require.NoError(t, err)
	assert.Equal(t, "delba", repo.lastQuery)
	assert.Equal(t, billing.ItemsPerPage, repo.lastLimit)
	assert.Equal(t, 6, repo.lastOffset)
	assert.Equal(t, 2, res.CurrentPage)
	assert.Equal(t, 4, res.TotalPages)
	require.Len(t, res.Invoices, 6)

	first := res.Invoices[0]
	assert.Equal(t, "inv-07", first.ID)
	assert.Equal(t, "$864.15", first.Amount)
	assert.Equal(t, "Jan 15, 2024", first.Date)
	assert.Equal(t, "Delba de Oliveira", first.Name)
	assert.Equal(t, format.GeneratePagination(2, 4), res.Pagination)
}

func TestListInvoices_PaginaMenorAUnoUsaLaPrimera(t *testing.T) {
	repo := &fakeInvoiceRepo{all: sampleInvoices(3)}
	uc := billing.NewInvoiceQueries(repo, &fakeCustomerRepo{}, "")

	res, err := uc.ListInvoices(context.Background(), "", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 1, res.TotalPages)
}

func TestListInvoices_PaginaMayorAlTotalUsaLaUltima(t *testing.T) {
	repo := &fakeInvoiceRepo{all: sampleInvoices(14)}
	uc := billing.NewInvoiceQueries(repo, &fakeCustomerRepo{}, "")

	res, err := uc.ListInvoices(context.Background(), "", math.MaxInt)

	require.NoError(t, err)
	assert.Equal(t, 3, res.CurrentPage)
	assert.Equal(t, 12, repo.lastOffset)
	assert.Len(t, res.Invoices, 2)
}

func TestListInvoices_PaginaEnormeSinResultados(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	uc := billing.NewInvoiceQueries(repo, &fakeCustomerRepo{}, "")

	res, err := uc.ListInvoices(context.Background(), "nadie", math.MaxInt)

	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Zero(t, repo.lastOffset)
}

func TestListInvoices_SinResultados(t *testing.T) {
	uc := billing.NewInvoiceQueries(&fakeInvoiceRepo{}, &fakeCustomerRepo{}, "")

	res, err := uc.ListInvoices(context.Background(), "nadie", 1)

	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalPages)
	assert.Empty(t, res.Invoices)
	assert.Empty(t, res.Pagination)
}

func TestListInvoices_PropagaErrorDelRepositorio(t *testing.T) {
	dbErr := errors.New("boom")
	uc := billing.NewInvoiceQueries(&fakeInvoiceRepo{err: dbErr}, &fakeCustomerRepo{}, "")

	_, err := uc.ListInvoices(context.Background(), "", 1)

	assert.ErrorIs(t, err, dbErr)
}

func TestTotalPages(t *testing.T) {
	cases := map[int]int{0: 0, -1: 0, 1: 1, 6: 1, 7: 2, 12: 2, 13: 3}
	for count, want := range cases {
		assert.Equal(t, want, billing.TotalPages(count), "count=%d", count)
	}
}

func TestInvoiceForm_ConvierteCentavosADolares(t *testing.T) {
	repo := &fakeInvoiceRepo{all: sampleInvoices(1)}
	customers := &fakeCustomerRepo{all: []*entity.Customer{{ID: "c1", Name: "Delba de Oliveira"}, {ID: "c2", Name: "Lee Robinson"}}}
	uc := billing.NewInvoiceQueries(repo, customers, "")

	res, err := uc.InvoiceForm(context.Background(), "inv-01")

	require.NoError(t, err)
	require.NotNil(t, res.Invoice)
	assert.Equal(t, "c1", res.Invoice.CustomerID)
	assert.True(t, decimal.RequireFromString("123.45").Equal(res.Invoice.Amount))
	assert.Len(t, res.Customers, 2)
	assert.Equal(t, "Lee Robinson", res.Customers[1].Name)
}

func TestInvoiceForm_FacturaInexistenteEsNotFound(t *testing.T) {
	uc := billing.NewInvoiceQueries(&fakeInvoiceRepo{}, &fakeCustomerRepo{}, "")

	_, err := uc.InvoiceForm(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateForm_SoloOpciones(t *testing.T) {
	customers := &fakeCustomerRepo{all: []*entity.Customer{{ID: "c1", Name: "Amy Burns"}}}
	uc := billing.NewInvoiceQueries(&fakeInvoiceRepo{}, customers, "")

	res, err := uc.CreateForm(context.Background())

	require.NoError(t, err)
	assert.Nil(t, res.Invoice)
	assert.Equal(t, "Amy Burns", res.Customers[0].Name)
}

func TestCustomerUseCase_ListFormateaTotales(t *testing.T) {
	repo := &fakeCustomerRepo{totals: []*entity.CustomerTotals{{
		Customer:      entity.Customer{ID: "c1", Name: "Amy Burns", Email: "amy@burns.com"},
		TotalInvoices: 3,
		TotalPending:  157300,
		TotalPaid:     0,
	}}}
	uc := billing.NewCustomerUseCase(repo)

	rows, err := uc.List(context.Background(), "amy")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].TotalInvoices)
	assert.Equal(t, "$1,573.00", rows[0].TotalPending)
	assert.Equal(t, "$0.00", rows[0].TotalPaid)
}

// ── PDF ──────────────────────────────────────────────────────────────────────

type fakePDF struct {
	got *entity.InvoiceWithCustomer
}

func (g *fakePDF) GenerateInvoicePDF(_ context.Context, inv *entity.InvoiceWithCustomer) ([]byte, error) {
	g.got = inv
	return []byte("%PDF-fake"), nil
}

func TestDownloadInvoicePDF(t *testing.T) {
	repo := &fakeInvoiceRepo{all: sampleInvoices(1)}
	repo.all[0].ID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	gen := &fakePDF{}
	uc := billing.NewPDFUseCase(repo, gen)

	data, name, err := uc.DownloadInvoicePDF(context.Background(), repo.all[0].ID)

	require.NoError(t, err)
	assert.Equal(t, "invoice_3958dc9e.pdf", name)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Equal(t, "Delba de Oliveira", gen.got.CustomerName)
}

func TestDownloadInvoicePDF_NotFound(t *testing.T) {
	uc := billing.NewPDFUseCase(&fakeInvoiceRepo{}, &fakePDF{})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
