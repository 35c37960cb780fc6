package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest body para POST /api/materials. Quantity es el stock
// inicial; después de la creación solo el ledger la modifica.
type CreateMaterialRequest struct {
	Name              string           `json:"name"`
	Style             string           `json:"style,omitempty"`
	Unit              string           `json:"unit"`
	Quantity          decimal.Decimal  `json:"quantity"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold,omitempty"`
}

// UpdateMaterialRequest body para PUT /api/materials/:id.
// No incluye Quantity: el stock se muta solo vía entradas y producción.
type UpdateMaterialRequest struct {
	Name              *string          `json:"name,omitempty"`
	Style             *string          `json:"style,omitempty"`
	Unit              *string          `json:"unit,omitempty"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold,omitempty"`
}

// MaterialResponse representación pública de un material.
type MaterialResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	Name              string          `json:"name"`
	Style             string          `json:"style,omitempty"`
	Unit              string          `json:"unit"`
	Quantity          decimal.Decimal `json:"quantity"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// MaterialListResponse listado paginado de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
