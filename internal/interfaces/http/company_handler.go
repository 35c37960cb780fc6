package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gitram007/pre-deployment--v2/internal/application/usecase"
)

// CompanyHandler expone la empresa del usuario autenticado.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetMine godoc
// @Summary      Empresa del usuario autenticado
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(GetCompanyID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
