package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gitram007/pre-deployment--v2/internal/application/reports"
)

// DashboardHandler resumen operativo de la empresa (protegido).
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard: conteos, stock bajo y actividad reciente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
