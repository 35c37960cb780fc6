package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/application/usecase"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

const (
	companyA   = "company-a"
	companyB   = "company-b"
	materialID = "material-resin"
)

type fakeMaterialRepo struct {
	materials map[string]*entity.Material
}

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	for _, existing := range r.materials {
		if existing.CompanyID == m.CompanyID && existing.Name == m.Name {
			return domain.ErrDuplicate
		}
	}
	r.materials[m.ID] = m
	return nil
}
func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *m
	return &c, nil
}
func (r *fakeMaterialRepo) GetByCompanyAndName(string, string) (*entity.Material, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeMaterialRepo) Update(m *entity.Material) error {
	stored, ok := r.materials[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// Igual que el UPDATE real: la columna quantity no está en el SET.
	quantity := stored.Quantity
	c := *m
	c.Quantity = quantity
	r.materials[m.ID] = &c
	return nil
}
func (r *fakeMaterialRepo) ListByCompany(string, int, int) ([]*entity.Material, error) {
	return nil, nil
}
func (r *fakeMaterialRepo) ListLowStock(companyID string) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.materials {
		if m.CompanyID == companyID && m.IsLowStock() {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMaterialRepo) Delete(id string) error {
	delete(r.materials, id)
	return nil
}
func (r *fakeMaterialRepo) GetManyForUpdate(context.Context, string, []string) ([]*entity.Material, error) {
	return nil, nil
}
func (r *fakeMaterialRepo) SetQuantity(context.Context, string, decimal.Decimal) error { return nil }
func (r *fakeMaterialRepo) AddQuantity(context.Context, string, string, decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func buildMaterialUC() (*usecase.MaterialUseCase, *fakeMaterialRepo) {
	repo := &fakeMaterialRepo{materials: map[string]*entity.Material{
		materialID: {
			ID: materialID, CompanyID: companyA, Name: "Resina", Unit: "kg",
			Quantity:          decimal.NewFromInt(50),
			LowStockThreshold: decimal.NewFromInt(10),
		},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return usecase.NewMaterialUseCase(repo, log), repo
}

func TestMaterialCreate_UmbralPorDefecto(t *testing.T) {
	uc, repo := buildMaterialUC()

	out, err := uc.Create(companyA, dto.CreateMaterialRequest{
		Name: "Tela", Unit: "m", Quantity: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.True(t, out.LowStockThreshold.Equal(decimal.NewFromInt(10)),
		"sin umbral explícito se usa 10")

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(100)),
		"el stock inicial sí se fija en el alta")
}

func TestMaterialCreate_StockInicialNegativo(t *testing.T) {
	uc, _ := buildMaterialUC()

	_, err := uc.Create(companyA, dto.CreateMaterialRequest{
		Name: "Tela", Unit: "m", Quantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El update de metadatos nunca debe alterar la cantidad: esa columna es del ledger.
func TestMaterialUpdate_NoTocaLaCantidad(t *testing.T) {
	uc, repo := buildMaterialUC()

	newName := "Resina epóxica"
	out, err := uc.Update(companyA, materialID, dto.UpdateMaterialRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Resina epóxica", out.Name)

	stored, err := repo.GetByID(materialID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(50)),
		"la cantidad debe permanecer intacta tras el update")
}

func TestMaterialGet_OtraEmpresaEsNotFound(t *testing.T) {
	uc, _ := buildMaterialUC()

	_, err := uc.GetByID(companyB, materialID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"recursos de otro tenant se reportan inexistentes, nunca 403")
}

func TestMaterialListLowStock(t *testing.T) {
	uc, repo := buildMaterialUC()
	repo.materials["material-low"] = &entity.Material{
		ID: "material-low", CompanyID: companyA, Name: "Hilo", Unit: "m",
		Quantity:          decimal.NewFromInt(3),
		LowStockThreshold: decimal.NewFromInt(5),
	}

	out, err := uc.ListLowStock(companyA)
	require.NoError(t, err)
	require.Len(t, out, 1, "solo el material en o bajo el umbral")
	assert.Equal(t, "Hilo", out[0].Name)
}
