package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InwardEntry es un hecho histórico inmutable: recepción de material.
// Crear una entrada es la única forma en que el stock de un material sube,
// y el incremento ocurre en la misma transacción que el insert.
type InwardEntry struct {
	ID         string
	CompanyID  string
	MaterialID string
	Quantity   decimal.Decimal // positivo
	CreatedAt  time.Time
}
