package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
)

var _ repository.MappingRepository = (*MappingRepo)(nil)

// MappingRepo implementación del puerto MappingRepository sobre PostgreSQL (usable con pool o tx).
type MappingRepo struct {
	q Querier
}

// NewMappingRepository construye el adaptador de mapeos producto-material. Pasar pool o tx (Querier).
func NewMappingRepository(q Querier) *MappingRepo {
	return &MappingRepo{q: q}
}

const mappingColumns = `id, company_id, product_id, material_id, fixed_quantity, created_at, updated_at`

func scanMapping(row pgx.Row) (*entity.ProductMaterialMapping, error) {
	var m entity.ProductMaterialMapping
	err := row.Scan(&m.ID, &m.CompanyID, &m.ProductID, &m.MaterialID,
		&m.FixedQuantity, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste una línea de receta. Devuelve domain.ErrDuplicate si
// (producto, material) ya existe.
func (r *MappingRepo) Create(mapping *entity.ProductMaterialMapping) error {
	query := `
		INSERT INTO product_material_mappings (` + mappingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		mapping.ID, mapping.CompanyID, mapping.ProductID, mapping.MaterialID,
		mapping.FixedQuantity, mapping.CreatedAt, mapping.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert mapping: %w", err)
	}
	return nil
}

// GetByID obtiene una línea de receta por ID.
func (r *MappingRepo) GetByID(id string) (*entity.ProductMaterialMapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM product_material_mappings WHERE id = $1`
	m, err := scanMapping(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get mapping: %w", err)
	}
	return m, nil
}

// ListByProduct lista la receta completa de un producto.
func (r *MappingRepo) ListByProduct(productID string) ([]*entity.ProductMaterialMapping, error) {
	query := `SELECT ` + mappingColumns + `
		FROM product_material_mappings WHERE product_id = $1 ORDER BY material_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list mappings by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductMaterialMapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByCompany lista mapeos por empresa con paginación.
func (r *MappingRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.ProductMaterialMapping, error) {
	query := `SELECT ` + mappingColumns + `
		FROM product_material_mappings WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductMaterialMapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update actualiza la cantidad fija de la línea.
func (r *MappingRepo) Update(mapping *entity.ProductMaterialMapping) error {
	query := `
		UPDATE product_material_mappings SET fixed_quantity = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, mapping.ID, mapping.FixedQuantity, mapping.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update mapping: %w", err)
	}
	return nil
}

// Delete elimina una línea de receta por ID.
func (r *MappingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_material_mappings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mapping: %w", err)
	}
	return nil
}
