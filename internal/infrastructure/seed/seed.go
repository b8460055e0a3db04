// Package seed carga los datos de ejemplo (usuarios, clientes, facturas e ingresos)
// desde un YAML embebido y los inserta de forma idempotente.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/postgres"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// User usuario de ejemplo con password en texto plano (se hashea al insertar).
type User struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Customer cliente de ejemplo.
type Customer struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	ImageURL string `yaml:"image_url"`
}

// Invoice factura de ejemplo; Amount en centavos.
type Invoice struct {
	CustomerID string `yaml:"customer_id"`
	Amount     int64  `yaml:"amount"`
	Status     string `yaml:"status"`
	Date       string `yaml:"date"`
}

// Revenue ingreso mensual de ejemplo.
type Revenue struct {
	Month   string `yaml:"month"`
	Revenue int64  `yaml:"revenue"`
}

// Fixtures conjunto completo de datos de ejemplo.
type Fixtures struct {
	Users     []User     `yaml:"users"`
	Customers []Customer `yaml:"customers"`
	Invoices  []Invoice  `yaml:"invoices"`
	Revenue   []Revenue  `yaml:"revenue"`
}

// Summary filas insertadas por tabla (las existentes no cuentan).
type Summary struct {
	Users     int64
	Customers int64
	Invoices  int64
	Revenue   int64
}

// Default devuelve los fixtures embebidos.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// Parse decodifica y valida un documento YAML de fixtures.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: yaml: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixtures) validate() error {
	customers := make(map[string]bool, len(f.Customers))
	for _, c := range f.Customers {
		customers[c.ID] = true
	}
	for i, inv := range f.Invoices {
		if !customers[inv.CustomerID] {
			return fmt.Errorf("seed: factura %d: cliente desconocido %q", i, inv.CustomerID)
		}
		if !entity.ValidInvoiceStatus(inv.Status) {
			return fmt.Errorf("seed: factura %d: estado inválido %q", i, inv.Status)
		}
		if inv.Amount <= 0 {
			return fmt.Errorf("seed: factura %d: monto debe ser > 0", i)
		}
	}
	for i, u := range f.Users {
		if u.Email == "" || len(u.Password) < 6 {
			return fmt.Errorf("seed: usuario %d: email vacío o password corto", i)
		}
	}
	return nil
}

// Apply inserta los fixtures con q (normalmente una tx). hash convierte el password plano
// en el hash que se guarda. Las filas que ya existen se omiten.
func Apply(ctx context.Context, q postgres.Querier, f *Fixtures, hash func(string) (string, error)) (Summary, error) {
	var s Summary

	for _, u := range f.Users {
		h, err := hash(u.Password)
		if err != nil {
			return s, fmt.Errorf("seed: hash de %s: %w", u.Email, err)
		}
		tag, err := q.Exec(ctx, `
			INSERT INTO users (id, name, email, password)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, u.Email, h,
		)
		if err != nil {
			return s, fmt.Errorf("seed: usuario %s: %w", u.Email, err)
		}
		s.Users += tag.RowsAffected()
	}

	for _, c := range f.Customers {
		tag, err := q.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Email, c.ImageURL,
		)
		if err != nil {
			return s, fmt.Errorf("seed: cliente %s: %w", c.Name, err)
		}
		s.Customers += tag.RowsAffected()
	}

	for _, inv := range f.Invoices {
		tag, err := q.Exec(ctx, `
			INSERT INTO invoices (customer_id, amount, status, date)
			SELECT $1::uuid, $2::bigint, $3::varchar, $4::date
			WHERE NOT EXISTS (
				SELECT 1 FROM invoices
				WHERE customer_id = $1::uuid AND amount = $2::bigint AND date = $4::date
			)`,
			inv.CustomerID, inv.Amount, inv.Status, inv.Date,
		)
		if err != nil {
			return s, fmt.Errorf("seed: factura de %s: %w", inv.CustomerID, err)
		}
		s.Invoices += tag.RowsAffected()
	}

	for _, r := range f.Revenue {
		tag, err := q.Exec(ctx, `
			INSERT INTO revenue (month, revenue)
			VALUES ($1, $2)
			ON CONFLICT (month) DO NOTHING`,
			r.Month, r.Revenue,
		)
		if err != nil {
			return s, fmt.Errorf("seed: ingreso %s: %w", r.Month, err)
		}
		s.Revenue += tag.RowsAffected()
	}

	return s, nil
}
