package repository

import "github.com/Gitram007/pre-deployment--v2/internal/domain/entity"

// InwardEntryRepository define el puerto de persistencia para las entradas de
// material. Solo Create y lecturas: las entradas son eventos append-only.
type InwardEntryRepository interface {
	Create(entry *entity.InwardEntry) error
	GetByID(id string) (*entity.InwardEntry, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.InwardEntry, error)
}
