package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceWithCustomerColumns = `
	invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
	customers.name, customers.email, customers.image_url`

const invoiceSearchFilter = `
	customers.name ILIKE $1 OR
	customers.email ILIKE $1 OR
	invoices.amount::text ILIKE $1 OR
	invoices.date::text ILIKE $1 OR
	invoices.status ILIKE $1`

// Insert crea una factura; el id lo genera la base.
func (r *InvoiceRepo) Insert(ctx context.Context, customerID string, amountCents int64, status, date string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)`,
		customerID, amountCents, status, date,
	)
	if err != nil {
		return 0, fmt.Errorf("insert invoice: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Update sobrescribe cliente, monto y estado; la fecha no cambia.
func (r *InvoiceRepo) Update(ctx context.Context, customerID string, amountCents int64, status, id string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`,
		customerID, amountCents, status, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update invoice: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete borra la factura por id.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete invoice: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetByID obtiene una factura por ID. Ids que no son UUID se tratan como inexistentes.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if !validUUID(id) {
		return nil, nil
	}
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetWithCustomer factura más los datos del cliente.
func (r *InvoiceRepo) GetWithCustomer(ctx context.Context, id string) (*entity.InvoiceWithCustomer, error) {
	if !validUUID(id) {
		return nil, nil
	}
	row := r.q.QueryRow(ctx, `
		SELECT`+invoiceWithCustomerColumns+`
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE invoices.id = $1`, id,
	)
	inv, err := scanInvoiceWithCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice with customer: %w", err)
	}
	return inv, nil
}

// ListFiltered página de facturas que coinciden con query, más recientes primero.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceWithCustomer, error) {
	rows, err := r.q.Query(ctx, `
		SELECT`+invoiceWithCustomerColumns+`
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE`+invoiceSearchFilter+`
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3`,
		likePattern(query), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return collectInvoices(rows)
}

// CountFiltered total de facturas que coinciden con query.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE`+invoiceSearchFilter,
		likePattern(query),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// Latest últimas facturas por fecha.
func (r *InvoiceRepo) Latest(ctx context.Context, limit int) ([]*entity.InvoiceWithCustomer, error) {
	rows, err := r.q.Query(ctx, `
		SELECT`+invoiceWithCustomerColumns+`
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("latest invoices: %w", err)
	}
	return collectInvoices(rows)
}

func scanInvoiceWithCustomer(row pgx.Row) (*entity.InvoiceWithCustomer, error) {
	var inv entity.InvoiceWithCustomer
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
		&inv.CustomerName, &inv.CustomerEmail, &inv.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func collectInvoices(rows pgx.Rows) ([]*entity.InvoiceWithCustomer, error) {
	defer rows.Close()
	var list []*entity.InvoiceWithCustomer
	for rows.Next() {
		inv, err := scanInvoiceWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	return list, nil
}
