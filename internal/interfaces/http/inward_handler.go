package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/application/inventory"
)

// InwardHandler registra recepciones de material (protegido).
type InwardHandler struct {
	uc *inventory.InwardUseCase
}

// NewInwardHandler construye el handler.
func NewInwardHandler(uc *inventory.InwardUseCase) *InwardHandler {
	return &InwardHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de material (incrementa stock)
// @Tags         inward-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInwardEntryRequest  true  "material_id, quantity"
// @Success      201   {object}  dto.InwardEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inward-entries [post]
func (h *InwardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInwardEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MaterialID == "" || !in.Quantity.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "material_id y quantity > 0 son requeridos"})
	}
	out, err := h.uc.RegisterEntry(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de entradas de material
// @Tags         inward-entries
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.InwardEntryListResponse
// @Router       /api/inward-entries [get]
func (h *InwardHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListEntries(GetCompanyID(c), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
