package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductMaterialMapping es una línea de la receta (BOM): cantidad fija de un
// material que se consume por cada unidad producida del producto.
// Único por (product, material); producto y material deben ser de la misma empresa.
type ProductMaterialMapping struct {
	ID            string
	CompanyID     string
	ProductID     string
	MaterialID    string
	FixedQuantity decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
