// Package format contiene funciones puras de presentación: montos en moneda,
// fechas localizadas, etiquetas del eje Y del gráfico de ingresos y la
// ventana de paginación de los listados.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// usdPrinter formatea números con separadores de miles en-US ("1,234,567.89").
var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// Currency convierte un monto en centavos a dólares con dos decimales: 123456789 -> "$1,234,567.89".
// Trabaja sobre la magnitud entera, así que es exacto en todo el rango de int64.
func Currency(cents int64) string {
	sign := ""
	mag := uint64(cents)
	if cents < 0 {
		sign = "-"
		mag = uint64(-(cents + 1)) + 1
	}
	dollars := usdPrinter.Sprint(number.Decimal(mag / 100))
	return fmt.Sprintf("%s$%s.%02d", sign, dollars, mag%100)
}
