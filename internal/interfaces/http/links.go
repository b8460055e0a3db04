package http

import (
	"net/url"
	"strconv"

	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
)

// PageURL enlace a page conservando la búsqueda actual.
func PageURL(path, query string, page int) string {
	v := url.Values{}
	if query != "" {
		v.Set("query", query)
	}
	v.Set("page", strconv.Itoa(page))
	return path + "?" + v.Encode()
}

// SearchURL enlace para una búsqueda nueva: siempre vuelve a la página 1. Una búsqueda
// vacía quita el parámetro query.
func SearchURL(path, query string) string {
	return PageURL(path, query, 1)
}

// buildPageLinks enlaces previo/siguiente y uno por cada número del paginador.
func buildPageLinks(path string, res *dto.InvoiceListResponse) *dto.PageLinks {
	links := &dto.PageLinks{
		Search: SearchURL(path, res.Query),
		Pages:  make(map[string]string, len(res.Pagination)),
	}
	if res.CurrentPage > 1 {
		links.Prev = PageURL(path, res.Query, res.CurrentPage-1)
	}
	if res.CurrentPage < res.TotalPages {
		links.Next = PageURL(path, res.Query, res.CurrentPage+1)
	}
	for _, item := range res.Pagination {
		if item.Ellipsis {
			continue
		}
		links.Pages[strconv.Itoa(item.Page)] = PageURL(path, res.Query, item.Page)
	}
	return links
}
