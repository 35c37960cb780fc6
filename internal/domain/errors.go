package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrProtected          = errors.New("recurso referenciado, no se puede eliminar")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNoRecipe           = errors.New("el producto no tiene mapeos de material")
)

// ShortfallLine detalla un material con stock insuficiente para una orden de producción.
type ShortfallLine struct {
	MaterialID   string
	MaterialName string
	Unit         string
	Required     decimal.Decimal
	Available    decimal.Decimal
}

// ShortfallError falla de la verificación de suficiencia del ledger.
// Incluye TODAS las líneas insuficientes (no solo la primera) para que el
// caller pueda reportar todos los faltantes de una vez.
type ShortfallError struct {
	Lines []ShortfallLine
}

func (e *ShortfallError) Error() string {
	var b strings.Builder
	b.WriteString("stock insuficiente:")
	for i, l := range e.Lines {
		if i > 0 {
			b.WriteString(";")
		}
		fmt.Fprintf(&b, " %s (requerido %s, disponible %s)", l.MaterialName, l.Required.String(), l.Available.String())
	}
	return b.String()
}

// AsShortfall devuelve el *ShortfallError subyacente si err lo contiene.
func AsShortfall(err error) (*ShortfallError, bool) {
	var se *ShortfallError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
