package repository

import "github.com/Gitram007/pre-deployment--v2/internal/domain/entity"

// MappingRepository define el puerto de persistencia para las líneas de
// receta (ProductMaterialMapping).
type MappingRepository interface {
	Create(mapping *entity.ProductMaterialMapping) error
	GetByID(id string) (*entity.ProductMaterialMapping, error)
	ListByProduct(productID string) ([]*entity.ProductMaterialMapping, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.ProductMaterialMapping, error)
	Update(mapping *entity.ProductMaterialMapping) error
	Delete(id string) error
}
