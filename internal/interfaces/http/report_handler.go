package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gitram007/pre-deployment--v2/internal/application/reports"
)

// ReportHandler reportes de uso y entradas por ventana de tiempo (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// UsageByProduct godoc
// @Summary      Uso de materiales por producto en la ventana
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id         path   string  true   "ID del producto"
// @Param        frequency  query  string  false  "daily | weekly | monthly"  default(daily)
// @Success      200  {array}   dto.MaterialUsageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/product-usage/{id} [get]
func (h *ReportHandler) UsageByProduct(c *fiber.Ctx) error {
	out, err := h.uc.UsageByProduct(c.UserContext(), GetCompanyID(c), c.Params("id"), c.Query("frequency"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// UsageOverall godoc
// @Summary      Uso de materiales de toda la empresa en la ventana
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        frequency  query  string  false  "daily | weekly | monthly"  default(daily)
// @Success      200  {array}   dto.MaterialUsageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/material-usage [get]
func (h *ReportHandler) UsageOverall(c *fiber.Ctx) error {
	out, err := h.uc.UsageOverall(c.UserContext(), GetCompanyID(c), c.Query("frequency"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Overall godoc
// @Summary      Reporte general: entradas vs. uso por material
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        frequency  query  string  false  "daily | weekly | monthly"  default(daily)
// @Success      200  {array}   dto.OverallReportRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/overall-report [get]
func (h *ReportHandler) Overall(c *fiber.Ctx) error {
	out, err := h.uc.OverallReport(c.UserContext(), GetCompanyID(c), c.Query("frequency"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// OverallPDF godoc
// @Summary      Reporte general en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        frequency  query  string  false  "daily | weekly | monthly"  default(daily)
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/overall-report/pdf [get]
func (h *ReportHandler) OverallPDF(c *fiber.Ctx) error {
	data, err := h.uc.OverallReportPDF(c.UserContext(), GetCompanyID(c), c.Query("frequency"))
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-general.pdf"`)
	return c.Send(data)
}
