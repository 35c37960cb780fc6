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

var _ repository.InwardEntryRepository = (*InwardEntryRepo)(nil)

// InwardEntryRepo implementación sobre PostgreSQL (usable con pool o tx).
// Las entradas son append-only: no hay Update ni Delete.
type InwardEntryRepo struct {
	q Querier
}

// NewInwardEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInwardEntryRepository(q Querier) *InwardEntryRepo {
	return &InwardEntryRepo{q: q}
}

// Create persiste una entrada de material (dentro de la tx del incremento).
func (r *InwardEntryRepo) Create(entry *entity.InwardEntry) error {
	query := `
		INSERT INTO inward_entries (id, company_id, material_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CompanyID, entry.MaterialID, entry.Quantity, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inward entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *InwardEntryRepo) GetByID(id string) (*entity.InwardEntry, error) {
	query := `
		SELECT id, company_id, material_id, quantity, created_at
		FROM inward_entries WHERE id = $1`
	var e entity.InwardEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.CompanyID, &e.MaterialID, &e.Quantity, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inward entry: %w", err)
	}
	return &e, nil
}

// ListByCompany lista entradas por empresa, más recientes primero.
func (r *InwardEntryRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.InwardEntry, error) {
	query := `
		SELECT id, company_id, material_id, quantity, created_at
		FROM inward_entries WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inward entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.InwardEntry
	for rows.Next() {
		var e entity.InwardEntry
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.MaterialID, &e.Quantity, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inward entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
