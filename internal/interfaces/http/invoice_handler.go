package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
	"github.com/jhoicas/invoice-dashboard/internal/domain"
	"github.com/jhoicas/invoice-dashboard/internal/domain/invoice"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/cache"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/metrics"
)

// ViewCache cache de respuestas ya serializadas, por ruta + query string.
// Set recibe la generación tomada antes de leer la base y rechaza la vista con
// cache.ErrStaleView si la ruta se invalidó entre medio.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Generation(key string) uint64
	Set(ctx context.Context, key string, value []byte, gen uint64) error
}

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	actions *billing.InvoiceActions
	queries *billing.InvoiceQueries
	pdf     *billing.PDFUseCase
	views   ViewCache
	log     zerolog.Logger
}

// NewInvoiceHandler construye el handler. views puede ser nil (sin cache).
func NewInvoiceHandler(
	actions *billing.InvoiceActions,
	queries *billing.InvoiceQueries,
	pdf *billing.PDFUseCase,
	views ViewCache,
	log zerolog.Logger,
) *InvoiceHandler {
	return &InvoiceHandler{actions: actions, queries: queries, pdf: pdf, views: views, log: log}
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Param        query  query  string  false  "búsqueda libre"
// @Param        page   query  int     false  "página (desde 1)"
// @Success      200  {object}  dto.InvoiceListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	key := viewKey(c)
	var gen uint64
	if h.views != nil {
		if body, ok := h.views.Get(c.Context(), key); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			c.Set("X-View-Cache", "hit")
			return c.Send(body)
		}
		gen = h.views.Generation(key)
	}

	query := c.Query("query")
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		page = 1
	}
	res, err := h.queries.ListInvoices(c.Context(), query, page)
	if err != nil {
		h.log.Error().Err(err).Msg("listar facturas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Database Error: Failed to fetch invoices."})
	}
	res.Links = buildPageLinks(canonicalPath(c), res)

	body, err := json.Marshal(res)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if h.views != nil {
		switch err := h.views.Set(c.Context(), key, body, gen); {
		case errors.Is(err, cache.ErrStaleView):
			h.log.Debug().Str("key", key).Msg("vista descartada: la ruta se invalidó durante la lectura")
		case err != nil:
			h.log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear la vista")
		}
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set("X-View-Cache", "miss")
	return c.Send(body)
}

// CreateForm godoc
// @Summary      Datos del formulario de alta
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.InvoiceFormResponse
// @Router       /dashboard/invoices/create [get]
func (h *InvoiceHandler) CreateForm(c *fiber.Ctx) error {
	res, err := h.queries.CreateForm(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("formulario de alta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Database Error: Failed to fetch customers."})
	}
	return c.JSON(res)
}

// EditForm godoc
// @Summary      Datos del formulario de edición
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "id de la factura"
// @Success      200  {object}  dto.InvoiceFormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/invoices/{id}/edit [get]
func (h *InvoiceHandler) EditForm(c *fiber.Ctx) error {
	res, err := h.queries.InvoiceForm(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Invoice not found."})
		}
		h.log.Error().Err(err).Msg("formulario de edición")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Database Error: Failed to fetch invoice."})
	}
	return c.JSON(res)
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  invoice.Input  true  "customerId, amount (dólares), status"
// @Success      303
// @Failure      422  {object}  dto.MutationState
// @Failure      500  {object}  dto.MutationState
// @Router       /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	fields, err := formFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.respond(c, "create", h.actions.CreateInvoice(c.Context(), fields))
}

// Update godoc
// @Summary      Editar factura
// @Tags         invoices
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path  string         true  "id de la factura"
// @Param        body  body  invoice.Input  true  "customerId, amount (dólares), status"
// @Success      303
// @Failure      422  {object}  dto.MutationState
// @Failure      500  {object}  dto.MutationState
// @Router       /dashboard/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	fields, err := formFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.respond(c, "update", h.actions.UpdateInvoice(c.Context(), c.Params("id"), fields))
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Param        id   path  string  true  "id de la factura"
// @Success      204
// @Failure      500  {object}  dto.MutationState
// @Router       /dashboard/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.actions.DeleteInvoice(c.Context(), c.Params("id")); err != nil {
		metrics.InvoiceMutations.WithLabelValues("delete", billing.OutcomeStoreFailed.String()).Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MutationState{Message: err.Error()})
	}
	metrics.InvoiceMutations.WithLabelValues("delete", "deleted").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Descargar comprobante PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "id de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Invoice not found."})
		}
		h.log.Error().Err(err).Msg("generar pdf")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "No se pudo generar el PDF."})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// respond traduce el resultado de la mutación: navegación → 303, formulario inválido → 422,
// error de base de datos → 500 con el estado para volver a pintar el formulario.
func (h *InvoiceHandler) respond(c *fiber.Ctx, action string, out billing.MutationOutcome) error {
	metrics.InvoiceMutations.WithLabelValues(action, out.Kind.String()).Inc()
	switch out.Kind {
	case billing.OutcomeRedirect:
		return c.Redirect(out.RedirectTo, fiber.StatusSeeOther)
	case billing.OutcomeValidationFailed:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(out.State)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(out.State)
	}
}

// formFields lee customerId, amount y status de un body JSON o de un formulario.
// En JSON los números se conservan como json.Number.
func formFields(c *fiber.Ctx) (invoice.Fields, error) {
	if c.Is("json") {
		fields := invoice.Fields{}
		dec := json.NewDecoder(bytes.NewReader(c.Body()))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	}
	fields := invoice.Fields{}
	for _, name := range []string{invoice.FieldCustomerID, invoice.FieldAmount, invoice.FieldStatus} {
		if v := c.FormValue(name); v != "" {
			fields[name] = v
		}
	}
	return fields, nil
}

// canonicalPath ruta en minúsculas: el router no distingue mayúsculas y la invalidación
// se hace por prefijo de la ruta canónica.
func canonicalPath(c *fiber.Ctx) string {
	return strings.ToLower(c.Path())
}

// viewKey clave del cache de vistas para la petición actual.
func viewKey(c *fiber.Ctx) string {
	return cache.Key(canonicalPath(c), string(c.Request().URI().QueryString()))
}
