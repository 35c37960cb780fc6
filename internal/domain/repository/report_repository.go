package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
)

// MaterialTotalRow total acumulado (uso o entradas) de un material en una ventana.
type MaterialTotalRow struct {
	MaterialID   string
	MaterialName string
	Unit         string
	Total        decimal.Decimal
}

// RecentOrderRow orden de producción reciente para el dashboard.
type RecentOrderRow struct {
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int64
	CreatedAt   time.Time
}

// RecentInwardRow entrada de material reciente para el dashboard.
type RecentInwardRow struct {
	EntryID      string
	MaterialID   string
	MaterialName string
	Unit         string
	Quantity     decimal.Decimal
	CreatedAt    time.Time
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
// Las sumas se hacen en SQL sobre NUMERIC (decimal exacto); nunca en float.
type ReportRepository interface {
	// UsageByProduct suma fixed_quantity * order.quantity por material sobre
	// las órdenes del producto creadas desde `since`. Mapa disperso: materiales
	// sin uso en la ventana se omiten.
	UsageByProduct(ctx context.Context, companyID, productID string, since time.Time) ([]MaterialTotalRow, error)
	// UsageOverall misma suma pero sobre todos los productos de la empresa.
	UsageOverall(ctx context.Context, companyID string, since time.Time) ([]MaterialTotalRow, error)
	// InwardTotals suma las entradas por material desde `since`.
	InwardTotals(ctx context.Context, companyID string, since time.Time) ([]MaterialTotalRow, error)

	CountProducts(ctx context.Context, companyID string) (int64, error)
	CountMaterials(ctx context.Context, companyID string) (int64, error)
	ListLowStockMaterials(ctx context.Context, companyID string) ([]*entity.Material, error)
	ListRecentOrders(ctx context.Context, companyID string, limit int) ([]RecentOrderRow, error)
	ListRecentInward(ctx context.Context, companyID string, limit int) ([]RecentInwardRow, error)
}
