package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc  *billing.CustomerUseCase
	log zerolog.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes con totales
// @Tags         customers
// @Produce      json
// @Param        query  query  string  false  "nombre o email"
// @Success      200  {array}   dto.CustomerRow
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.Context(), c.Query("query"))
	if err != nil {
		h.log.Error().Err(err).Msg("listar clientes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Database Error: Failed to fetch customers."})
	}
	return c.JSON(fiber.Map{"query": c.Query("query"), "customers": rows})
}
