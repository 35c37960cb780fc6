package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de uso de materiales y dashboard.
// Las agregaciones se hacen en SQL sobre NUMERIC: el decimal nunca pasa por
// float en ningún punto de la acumulación.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// queryMaterialTotals ejecuta una consulta que devuelve (id, nombre, unidad, total).
func (r *ReportRepo) queryMaterialTotals(ctx context.Context, query string, args ...any) ([]repository.MaterialTotalRow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []repository.MaterialTotalRow
	for rows.Next() {
		var row repository.MaterialTotalRow
		if err := rows.Scan(&row.MaterialID, &row.MaterialName, &row.Unit, &row.Total); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// UsageByProduct suma fixed_quantity * order.quantity por material sobre las
// órdenes del producto dentro de la ventana. Materiales sin uso se omiten
// (mapa disperso, no relleno con ceros).
func (r *ReportRepo) UsageByProduct(ctx context.Context, companyID, productID string, since time.Time) ([]repository.MaterialTotalRow, error) {
	const query = `
	SELECT
	    mt.id,
	    mt.name,
	    mt.unit,
	    SUM(pm.fixed_quantity * po.quantity) AS total_usage
	FROM production_orders po
	JOIN product_material_mappings pm ON pm.product_id = po.product_id
	JOIN materials mt                 ON mt.id         = pm.material_id
	WHERE po.company_id = $1
	  AND po.product_id = $2
	  AND po.created_at >= $3
	GROUP BY mt.id, mt.name, mt.unit
	ORDER BY mt.name`

	results, err := r.queryMaterialTotals(ctx, query, companyID, productID, since)
	if err != nil {
		return nil, fmt.Errorf("reports.UsageByProduct: %w", err)
	}
	return results, nil
}

// UsageOverall misma suma pero sobre todos los productos de la empresa.
func (r *ReportRepo) UsageOverall(ctx context.Context, companyID string, since time.Time) ([]repository.MaterialTotalRow, error) {
	const query = `
	SELECT
	    mt.id,
	    mt.name,
	    mt.unit,
	    SUM(pm.fixed_quantity * po.quantity) AS total_usage
	FROM production_orders po
	JOIN product_material_mappings pm ON pm.product_id = po.product_id
	JOIN materials mt                 ON mt.id         = pm.material_id
	WHERE po.company_id = $1
	  AND po.created_at >= $2
	GROUP BY mt.id, mt.name, mt.unit
	ORDER BY mt.name`

	results, err := r.queryMaterialTotals(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("reports.UsageOverall: %w", err)
	}
	return results, nil
}

// InwardTotals suma las entradas por material dentro de la ventana.
func (r *ReportRepo) InwardTotals(ctx context.Context, companyID string, since time.Time) ([]repository.MaterialTotalRow, error) {
	const query = `
	SELECT
	    mt.id,
	    mt.name,
	    mt.unit,
	    SUM(ie.quantity) AS total_inward
	FROM inward_entries ie
	JOIN materials mt ON mt.id = ie.material_id
	WHERE ie.company_id = $1
	  AND ie.created_at >= $2
	GROUP BY mt.id, mt.name, mt.unit
	ORDER BY mt.name`

	results, err := r.queryMaterialTotals(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("reports.InwardTotals: %w", err)
	}
	return results, nil
}

// CountProducts cuenta los productos de la empresa.
func (r *ReportRepo) CountProducts(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("reports.CountProducts: %w", err)
	}
	return count, nil
}

// CountMaterials cuenta los materiales de la empresa.
func (r *ReportRepo) CountMaterials(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM materials WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("reports.CountMaterials: %w", err)
	}
	return count, nil
}

// ListLowStockMaterials lista los materiales con quantity <= low_stock_threshold.
func (r *ReportRepo) ListLowStockMaterials(ctx context.Context, companyID string) ([]*entity.Material, error) {
	const query = `
	SELECT id, company_id, name, style, unit, quantity, low_stock_threshold, created_at, updated_at
	FROM materials
	WHERE company_id = $1 AND quantity <= low_stock_threshold
	ORDER BY name`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("reports.ListLowStockMaterials: %w", err)
	}
	defer rows.Close()

	var results []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Name, &m.Style, &m.Unit,
			&m.Quantity, &m.LowStockThreshold, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("reports.ListLowStockMaterials scan: %w", err)
		}
		results = append(results, &m)
	}
	return results, rows.Err()
}

// ListRecentOrders lista las órdenes más recientes (dashboard), nuevas primero.
func (r *ReportRepo) ListRecentOrders(ctx context.Context, companyID string, limit int) ([]repository.RecentOrderRow, error) {
	const query = `
	SELECT po.id, po.product_id, p.name, po.quantity, po.created_at
	FROM production_orders po
	JOIN products p ON p.id = po.product_id
	WHERE po.company_id = $1
	ORDER BY po.created_at DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.ListRecentOrders: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentOrderRow
	for rows.Next() {
		var row repository.RecentOrderRow
		if err := rows.Scan(&row.OrderID, &row.ProductID, &row.ProductName, &row.Quantity, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("reports.ListRecentOrders scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListRecentInward lista las entradas más recientes (dashboard), nuevas primero.
func (r *ReportRepo) ListRecentInward(ctx context.Context, companyID string, limit int) ([]repository.RecentInwardRow, error) {
	const query = `
	SELECT ie.id, ie.material_id, mt.name, mt.unit, ie.quantity, ie.created_at
	FROM inward_entries ie
	JOIN materials mt ON mt.id = ie.material_id
	WHERE ie.company_id = $1
	ORDER BY ie.created_at DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.ListRecentInward: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentInwardRow
	for rows.Next() {
		var row repository.RecentInwardRow
		if err := rows.Scan(&row.EntryID, &row.MaterialID, &row.MaterialName, &row.Unit, &row.Quantity, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("reports.ListRecentInward scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
