package entity

// Revenue ingreso mensual (en dólares) usado por el gráfico del dashboard.
type Revenue struct {
	Month   string
	Revenue int64
}
