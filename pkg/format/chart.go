package format

import (
	"fmt"
	"math"
)

// RevenuePoint es un punto de la serie de ingresos (ej. {"Jan", 2000}).
type RevenuePoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// YAxis etiquetas del eje Y del gráfico de ingresos.
type YAxis struct {
	TopLabel int64    `json:"top_label"`
	Labels   []string `json:"y_axis_labels"`
}

// GenerateYAxis redondea el máximo de la serie al millar superior y genera las
// etiquetas en orden descendente hasta $0K: [2000,1800,2200] -> 3000, ["$3K","$2K","$1K","$0K"].
// Una serie vacía o sin valores positivos produce TopLabel 0 y ["$0K"].
func GenerateYAxis(series []RevenuePoint) YAxis {
	var highest float64
	for _, p := range series {
		if p.Value > highest {
			highest = p.Value
		}
	}
	top := int64(math.Ceil(highest/1000)) * 1000

	labels := make([]string, 0, top/1000+1)
	for i := top; i >= 0; i -= 1000 {
		labels = append(labels, fmt.Sprintf("$%dK", i/1000))
	}
	return YAxis{TopLabel: top, Labels: labels}
}
