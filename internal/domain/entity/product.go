package entity

import "time"

// Product representa un producto terminado. Su receta (materiales consumidos
// por unidad producida) vive en ProductMaterialMapping.
type Product struct {
	ID        string
	CompanyID string
	Name      string // único por empresa
	CreatedAt time.Time
	UpdatedAt time.Time
}
