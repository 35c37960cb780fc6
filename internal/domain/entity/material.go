package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima con su stock actual.
// Quantity solo se modifica vía el ledger (entradas y consumos de producción);
// el CRUD de materiales no la toca.
type Material struct {
	ID                string
	CompanyID         string
	Name              string // único por empresa
	Style             string
	Unit              string
	Quantity          decimal.Decimal // invariante: >= 0 (CHECK en DB)
	LowStockThreshold decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock informa si el stock actual está en o por debajo del umbral.
func (m *Material) IsLowStock() bool {
	return m.Quantity.LessThanOrEqual(m.LowStockThreshold)
}
