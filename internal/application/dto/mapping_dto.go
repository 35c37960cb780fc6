package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMappingRequest body para POST /api/mappings (línea de receta).
type CreateMappingRequest struct {
	ProductID     string          `json:"product_id"`
	MaterialID    string          `json:"material_id"`
	FixedQuantity decimal.Decimal `json:"fixed_quantity"`
}

// UpdateMappingRequest body para PUT /api/mappings/:id.
type UpdateMappingRequest struct {
	FixedQuantity decimal.Decimal `json:"fixed_quantity"`
}

// MappingResponse representación pública de una línea de receta.
type MappingResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	ProductID     string          `json:"product_id"`
	MaterialID    string          `json:"material_id"`
	FixedQuantity decimal.Decimal `json:"fixed_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// MappingListResponse listado paginado de líneas de receta.
type MappingListResponse struct {
	Items []MappingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
