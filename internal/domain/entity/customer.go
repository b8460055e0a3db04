package entity

// Customer representa un cliente. Es dato de referencia: las facturas lo leen, nunca lo modifican.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// CustomerTotals cliente con sus totales de facturación (en centavos).
type CustomerTotals struct {
	Customer
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}
