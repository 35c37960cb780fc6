package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentOrderDTO orden de producción reciente (widget del dashboard).
type RecentOrderDTO struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecentInwardDTO entrada de material reciente (widget del dashboard).
type RecentInwardDTO struct {
	ID           string          `json:"id"`
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DashboardDTO respuesta de GET /api/dashboard.
// Para cuentas de sistema sin empresa se devuelve con ceros y listas vacías.
type DashboardDTO struct {
	ProductCount           int64              `json:"product_count"`
	MaterialCount          int64              `json:"material_count"`
	LowStockMaterials      []MaterialResponse `json:"low_stock_materials"`
	RecentProductionOrders []RecentOrderDTO   `json:"recent_production_orders"`
	RecentInwardEntries    []RecentInwardDTO  `json:"recent_inward_entries"`
}
