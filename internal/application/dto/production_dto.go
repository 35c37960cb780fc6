package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductionOrderRequest body para POST /api/production-orders.
type CreateProductionOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// ConsumedLineDTO material deducido por una orden confirmada.
type ConsumedLineDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Consumed     decimal.Decimal `json:"consumed"`
	Remaining    decimal.Decimal `json:"remaining"` // stock después de la deducción
}

// ProductionOrderResponse orden confirmada con el detalle de consumo.
type ProductionOrderResponse struct {
	ID        string            `json:"id"`
	ProductID string            `json:"product_id"`
	Quantity  int64             `json:"quantity"`
	CreatedAt time.Time         `json:"created_at"`
	Consumed  []ConsumedLineDTO `json:"consumed,omitempty"`
}

// ProductionOrderListResponse listado paginado de órdenes.
type ProductionOrderListResponse struct {
	Items []ProductionOrderResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// ShortfallLineDTO línea insuficiente reportada por el ledger.
type ShortfallLineDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Required     decimal.Decimal `json:"required"`
	Available    decimal.Decimal `json:"available"`
}

// ShortfallResponse cuerpo HTTP 400 cuando la verificación de suficiencia
// falla: enumera TODAS las líneas con déficit.
type ShortfallResponse struct {
	Code       string             `json:"code"`
	Message    string             `json:"message"`
	Shortfalls []ShortfallLineDTO `json:"shortfalls"`
}

// EstimateRequest body para POST /api/calculator.
type EstimateRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// EstimateLineDTO resultado del calculador para un material de la receta.
type EstimateLineDTO struct {
	MaterialID       string          `json:"material_id"`
	MaterialName     string          `json:"material_name"`
	MaterialUnit     string          `json:"material_unit"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
	Shortfall        decimal.Decimal `json:"shortfall"` // max(0, required - stock)
}
