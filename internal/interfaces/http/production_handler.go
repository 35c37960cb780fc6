package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/application/production"
)

// ProductionHandler confirma órdenes de producción y expone el calculador.
type ProductionHandler struct {
	planner *production.Planner
}

// NewProductionHandler construye el handler.
func NewProductionHandler(planner *production.Planner) *ProductionHandler {
	return &ProductionHandler{planner: planner}
}

// Create godoc
// @Summary      Confirmar orden de producción (deduce materiales)
// @Description  Verifica la suficiencia de todos los materiales de la receta
// @Description  y deduce los consumos en una sola transacción. Si falta stock
// @Description  responde 400 con todas las líneas en déficit y no deduce nada.
// @Tags         production-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionOrderRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.ProductionOrderResponse
// @Failure      400   {object}  dto.ShortfallResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/production-orders [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity > 0 son requeridos"})
	}
	out, err := h.planner.PlanAndCommit(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de órdenes de producción
// @Tags         production-orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductionOrderListResponse
// @Router       /api/production-orders [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	out, err := h.planner.ListOrders(GetCompanyID(c), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         production-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.ProductionOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-orders/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.planner.GetOrder(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Estimate godoc
// @Summary      Calculador de materiales (sin comprometer stock)
// @Description  Devuelve requerido, stock actual y déficit por material de la
// @Description  receta. Es una foto informativa: no reserva nada.
// @Tags         calculator
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstimateRequest  true  "product_id, quantity"
// @Success      200   {array}   dto.EstimateLineDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calculator [post]
func (h *ProductionHandler) Estimate(c *fiber.Ctx) error {
	var in dto.EstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity > 0 son requeridos"})
	}
	out, err := h.planner.Estimate(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeCalculatorError(c, err)
	}
	return c.JSON(out)
}
