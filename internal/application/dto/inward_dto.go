package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInwardEntryRequest body para POST /api/inward-entries.
type CreateInwardEntryRequest struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// InwardEntryResponse entrada registrada; UpdatedStock es la cantidad del
// material después del incremento (misma transacción que el insert).
type InwardEntryResponse struct {
	ID           string          `json:"id"`
	MaterialID   string          `json:"material_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UpdatedStock decimal.Decimal `json:"updated_stock"`
	CreatedAt    time.Time       `json:"created_at"`
}

// InwardEntryListResponse listado paginado de entradas.
type InwardEntryListResponse struct {
	Items []InwardEntryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
