package dto

import "github.com/shopspring/decimal"

// MaterialUsageDTO uso acumulado de un material en la ventana consultada.
// Los materiales sin uso en la ventana no aparecen (mapa disperso).
type MaterialUsageDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Usage        decimal.Decimal `json:"usage"`
}

// OverallReportRowDTO entradas vs. uso de un material en la ventana.
// Balance = Inward - Usage refleja el movimiento neto de la ventana, no el
// stock actual; puede ser negativo.
type OverallReportRowDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Inward       decimal.Decimal `json:"inward"`
	Usage        decimal.Decimal `json:"usage"`
	Balance      decimal.Decimal `json:"balance"`
}
