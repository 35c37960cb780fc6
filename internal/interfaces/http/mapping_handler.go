package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/application/usecase"
)

// MappingHandler maneja las líneas de receta producto-material (protegido).
type MappingHandler struct {
	uc *usecase.MappingUseCase
}

// NewMappingHandler construye el handler.
func NewMappingHandler(uc *usecase.MappingUseCase) *MappingHandler {
	return &MappingHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar línea de receta
// @Tags         mappings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMappingRequest  true  "product_id, material_id, fixed_quantity"
// @Success      201   {object}  dto.MappingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mappings [post]
func (h *MappingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMappingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea de receta por ID
// @Tags         mappings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.MappingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mappings/{id} [get]
func (h *MappingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar líneas de receta de la empresa
// @Tags         mappings
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MappingListResponse
// @Router       /api/mappings [get]
func (h *MappingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Receta completa de un producto
// @Tags         mappings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}  dto.MappingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/mappings [get]
func (h *MappingHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar la cantidad fija de una línea
// @Tags         mappings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la línea"
// @Param        body  body  dto.UpdateMappingRequest  true  "fixed_quantity"
// @Success      200   {object}  dto.MappingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mappings/{id} [put]
func (h *MappingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMappingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Quitar línea de la receta
// @Tags         mappings
// @Security     Bearer
// @Param        id  path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mappings/{id} [delete]
func (h *MappingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
