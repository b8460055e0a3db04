package entity

import "time"

// Estados válidos de una factura.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// DateLayout formato de la fecha de emisión ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// Invoice representa una factura de un cliente.
// Amount se guarda en centavos (unidades menores) para no acumular error de punto flotante.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos
	Status     string
	Date       time.Time // asignada al crear; inmutable después
}

// InvoiceWithCustomer factura unida a los datos del cliente para tablas y PDF.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}

// ValidInvoiceStatus indica si s es uno de los estados permitidos.
func ValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}
