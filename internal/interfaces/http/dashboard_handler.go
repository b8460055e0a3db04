package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-dashboard/internal/application/dashboard"
	"github.com/jhoicas/invoice-dashboard/internal/application/dto"
)

// DashboardHandler maneja el resumen del dashboard.
type DashboardHandler struct {
	uc  *dashboard.UseCase
	log zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Overview godoc
// @Summary      Resumen del dashboard
// @Description  Tarjetas (facturas, clientes, cobrado, pendiente), gráfico de ingresos y últimas 5 facturas.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardOverviewDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("resumen del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Database Error: Failed to fetch dashboard data.",
		})
	}
	return c.JSON(out)
}
