package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material.
//
// El CRUD no modifica Quantity; esa columna es propiedad exclusiva del ledger
// y se muta únicamente con las operaciones de la sección "ledger", dentro de
// una transacción (TxRunner). Delete devuelve domain.ErrProtected si el
// material está referenciado por mapeos o por el historial.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByCompanyAndName(companyID, name string) (*entity.Material, error)
	Update(material *entity.Material) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error)
	ListLowStock(companyID string) ([]*entity.Material, error)
	Delete(id string) error

	// Ledger: bloquea las filas indicadas en orden ascendente de id
	// (SELECT ... ORDER BY id FOR UPDATE) para evitar deadlocks entre
	// deducciones concurrentes que se solapan.
	GetManyForUpdate(ctx context.Context, companyID string, ids []string) ([]*entity.Material, error)
	// Ledger: fija la cantidad de una fila ya bloqueada por GetManyForUpdate.
	SetQuantity(ctx context.Context, materialID string, quantity decimal.Decimal) error
	// Ledger: suma atómica (entradas de material). Devuelve la cantidad resultante;
	// domain.ErrNotFound si el material no existe en la empresa.
	AddQuantity(ctx context.Context, companyID, materialID string, amount decimal.Decimal) (decimal.Decimal, error)
}
