package format

import (
	"encoding/json"
	"strconv"
)

// Ellipsis marca un rango de páginas omitido en la paginación.
const Ellipsis = "..."

// PageItem es un número de página o el marcador Ellipsis.
// En JSON se serializa como número o como "...".
type PageItem struct {
	Page     int
	Ellipsis bool
}

// Page construye un item con número de página.
func Page(n int) PageItem { return PageItem{Page: n} }

// Gap construye el marcador de páginas omitidas.
func Gap() PageItem { return PageItem{Ellipsis: true} }

func (p PageItem) String() string {
	if p.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(p.Page)
}

// MarshalJSON implementa json.Marshaler.
func (p PageItem) MarshalJSON() ([]byte, error) {
	if p.Ellipsis {
		return json.Marshal(Ellipsis)
	}
	return json.Marshal(p.Page)
}

// GeneratePagination devuelve la ventana de páginas a mostrar (ancho fijo):
//   - total <= 7: todas las páginas.
//   - current en las 3 primeras: 1, 2, 3, ..., total-1, total.
//   - current en las 3 últimas: 1, 2, ..., total-2, total-1, total.
//   - en medio: 1, ..., current-1, current, current+1, ..., total.
func GeneratePagination(current, total int) []PageItem {
	if total <= 0 {
		return []PageItem{}
	}
	if total <= 7 {
		items := make([]PageItem, 0, total)
		for i := 1; i <= total; i++ {
			items = append(items, Page(i))
		}
		return items
	}
	if current <= 3 {
		return []PageItem{Page(1), Page(2), Page(3), Gap(), Page(total - 1), Page(total)}
	}
	if current >= total-2 {
		return []PageItem{Page(1), Page(2), Gap(), Page(total - 2), Page(total - 1), Page(total)}
	}
	return []PageItem{
		Page(1), Gap(),
		Page(current - 1), Page(current), Page(current + 1),
		Gap(), Page(total),
	}
}
