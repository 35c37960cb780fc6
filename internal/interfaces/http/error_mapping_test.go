package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
)

func responseFor(t *testing.T, err error) (int, dto.ErrorResponse, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return writeDomainError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body, string(raw)
}

// Un error no clasificado (fallo de base de datos, driver) jamás debe llegar
// al cliente con su texto original: respuesta genérica y detalle solo en el log.
func TestWriteDomainError_InternoNoFiltraDetalle(t *testing.T) {
	cause := errors.New(`ERROR: deadlock detected (SQLSTATE 40P01)`)
	err := fmt.Errorf("insert material: %w", cause)

	status, body, raw := responseFor(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, raw, "insert material", "el texto del error no debe serializarse")
	assert.NotContains(t, raw, "SQLSTATE", "los detalles del driver no deben serializarse")
}

// Los errores de dominio conocidos conservan su mapeo y mensaje fijo.
func TestWriteDomainError_SentinelasMapeanEstado(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrNoRecipe, fiber.StatusUnprocessableEntity, "NO_RECIPE"},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{domain.ErrProtected, fiber.StatusConflict, "PROTECTED"},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	}
	for _, tc := range cases {
		status, body, _ := responseFor(t, fmt.Errorf("contexto: %w", tc.err))
		assert.Equal(t, tc.status, status, "error %v", tc.err)
		assert.Equal(t, tc.code, body.Code, "error %v", tc.err)
	}
}
