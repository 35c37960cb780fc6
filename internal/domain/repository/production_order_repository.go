package repository

import "github.com/Gitram007/pre-deployment--v2/internal/domain/entity"

// ProductionOrderRepository define el puerto de persistencia para las órdenes
// de producción. Solo Create y lecturas: las órdenes son eventos append-only.
type ProductionOrderRepository interface {
	Create(order *entity.ProductionOrder) error
	GetByID(id string) (*entity.ProductionOrder, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.ProductionOrder, error)
}
