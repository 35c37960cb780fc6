package entity

import "time"

// ProductionOrder es un hecho histórico inmutable: se crea únicamente como
// efecto de una deducción exitosa del ledger y nunca se actualiza ni borra
// por el flujo normal (evento append-only del libro de materiales).
type ProductionOrder struct {
	ID        string
	CompanyID string
	ProductID string
	Quantity  int64 // unidades producidas, entero positivo
	CreatedAt time.Time
}
