package repository

import "github.com/Gitram007/pre-deployment--v2/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Delete devuelve domain.ErrProtected si el producto tiene órdenes históricas.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndName(companyID, name string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
