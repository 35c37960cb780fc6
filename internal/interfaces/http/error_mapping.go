package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
)

// writeDomainError traduce errores de dominio a respuestas HTTP.
// El caso de stock insuficiente lleva cuerpo propio con todas las líneas en
// déficit; el resto usa dto.ErrorResponse.
func writeDomainError(c *fiber.Ctx, err error) error {
	if shortfall, ok := domain.AsShortfall(err); ok {
		lines := make([]dto.ShortfallLineDTO, 0, len(shortfall.Lines))
		for _, l := range shortfall.Lines {
			lines = append(lines, dto.ShortfallLineDTO{
				MaterialID:   l.MaterialID,
				MaterialName: l.MaterialName,
				Required:     l.Required,
				Available:    l.Available,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ShortfallResponse{
			Code:       "INSUFFICIENT_STOCK",
			Message:    "stock insuficiente para confirmar la orden",
			Shortfalls: lines,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNoRecipe):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_RECIPE", Message: "el producto no tiene receta definida"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrProtected):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROTECTED", Message: "el recurso está referenciado y no puede eliminarse"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para esta cuenta"})
	default:
		// El detalle (SQL, drivers) queda en el log; al cliente solo un genérico.
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno sin clasificar")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// writeCalculatorError igual que writeDomainError salvo que la receta ausente
// es 404 para el calculador: no hay nada que calcular.
func writeCalculatorError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNoRecipe) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_RECIPE", Message: "el producto no tiene receta definida"})
	}
	return writeDomainError(c, err)
}
