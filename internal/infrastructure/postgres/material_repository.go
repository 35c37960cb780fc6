package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (usable con pool o tx).
// Las operaciones del ledger (GetManyForUpdate, SetQuantity, AddQuantity) deben
// ejecutarse sobre una tx; el resto acepta pool o tx indistintamente.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, company_id, name, style, unit, quantity, low_stock_threshold, created_at, updated_at`

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(&m.ID, &m.CompanyID, &m.Name, &m.Style, &m.Unit,
		&m.Quantity, &m.LowStockThreshold, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un nuevo material con su stock inicial.
// Devuelve domain.ErrDuplicate si (empresa, nombre) ya existe.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.CompanyID, material.Name, material.Style, material.Unit,
		material.Quantity, material.LowStockThreshold, material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	m, err := scanMaterial(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// GetByCompanyAndName obtiene un material por empresa y nombre.
func (r *MaterialRepo) GetByCompanyAndName(companyID, name string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE company_id = $1 AND name = $2`
	m, err := scanMaterial(r.q.QueryRow(context.Background(), query, companyID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get material by name: %w", err)
	}
	return m, nil
}

// Update actualiza los datos maestros del material. No toca Quantity: esa
// columna se muta solo vía el ledger (entradas y deducciones).
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials SET name = $2, style = $3, unit = $4, low_stock_threshold = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Style, material.Unit,
		material.LowStockThreshold, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// ListByCompany lista materiales por empresa con paginación.
func (r *MaterialRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + `
		FROM materials WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListLowStock lista los materiales con quantity <= low_stock_threshold.
func (r *MaterialRepo) ListLowStock(companyID string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + `
		FROM materials WHERE company_id = $1 AND quantity <= low_stock_threshold ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list low stock materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Delete elimina un material por ID. Mapeos y entradas históricas lo protegen
// (FK RESTRICT): en ese caso devuelve domain.ErrProtected, nunca cascadea.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProtected
		}
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// GetManyForUpdate bloquea las filas de los materiales indicados (SELECT FOR UPDATE)
// en orden ascendente de id. El orden determinista evita deadlocks entre dos
// deducciones concurrentes que tocan los mismos materiales en distinto orden.
func (r *MaterialRepo) GetManyForUpdate(ctx context.Context, companyID string, ids []string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + `
		FROM materials
		WHERE company_id = $1 AND id = ANY($2)
		ORDER BY id
		FOR UPDATE`
	rows, err := r.q.Query(ctx, query, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("lock materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// SetQuantity fija la cantidad de un material. Usar solo sobre filas ya
// bloqueadas por GetManyForUpdate dentro de la misma transacción.
func (r *MaterialRepo) SetQuantity(ctx context.Context, materialID string, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE materials SET quantity = $2, updated_at = now() WHERE id = $1`,
		materialID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set material quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddQuantity suma atómicamente al stock (entradas de material) y devuelve la
// cantidad resultante. Las sumas conmutan entre sí: basta la atomicidad de la
// fila, sin bloqueo multi-fila.
func (r *MaterialRepo) AddQuantity(ctx context.Context, companyID, materialID string, amount decimal.Decimal) (decimal.Decimal, error) {
	var quantity decimal.Decimal
	err := r.q.QueryRow(ctx, `
		UPDATE materials SET quantity = quantity + $3, updated_at = now()
		WHERE id = $2 AND company_id = $1
		RETURNING quantity`,
		companyID, materialID, amount,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("add material quantity: %w", err)
	}
	return quantity, nil
}
