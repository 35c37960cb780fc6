package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/application/inventory"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA   = "company-a"
	materialID = "material-thread"
)

type fakeMaterialRepo struct {
	mu        sync.Mutex
	materials map[string]*entity.Material
}

func (r *fakeMaterialRepo) Create(*entity.Material) error { return nil }
func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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
func (r *fakeMaterialRepo) Update(*entity.Material) error { return nil }
func (r *fakeMaterialRepo) ListByCompany(string, int, int) ([]*entity.Material, error) {
	return nil, nil
}
func (r *fakeMaterialRepo) ListLowStock(string) ([]*entity.Material, error) { return nil, nil }
func (r *fakeMaterialRepo) Delete(string) error                             { return nil }
func (r *fakeMaterialRepo) GetManyForUpdate(context.Context, string, []string) ([]*entity.Material, error) {
	return nil, nil
}
func (r *fakeMaterialRepo) SetQuantity(context.Context, string, decimal.Decimal) error { return nil }
func (r *fakeMaterialRepo) AddQuantity(_ context.Context, companyID, materialID string, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.materials[materialID]
	if !ok || m.CompanyID != companyID {
		return decimal.Zero, domain.ErrNotFound
	}
	m.Quantity = m.Quantity.Add(amount)
	return m.Quantity, nil
}

type fakeEntryRepo struct {
	mu      sync.Mutex
	entries []*entity.InwardEntry
	failOn  bool // fuerza error en Create para probar el rollback
}

func (r *fakeEntryRepo) Create(entry *entity.InwardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn {
		return assert.AnError
	}
	r.entries = append(r.entries, entry)
	return nil
}
func (r *fakeEntryRepo) GetByID(string) (*entity.InwardEntry, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeEntryRepo) ListByCompany(companyID string, _, _ int) ([]*entity.InwardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.InwardEntry
	for _, e := range r.entries {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeTxRunner sin rollback real: los tests de fallo verifican que el caso de
// uso propague el error (la base revertiría la transacción completa).
type fakeTxRunner struct {
	materials *fakeMaterialRepo
	entries   *fakeEntryRepo
}

func (r *fakeTxRunner) RunInward(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	entryRepo repository.InwardEntryRepository,
) error) error {
	return fn(r.materials, r.entries)
}

func buildUseCase(stock string) (*inventory.InwardUseCase, *fakeMaterialRepo, *fakeEntryRepo) {
	materials := &fakeMaterialRepo{materials: map[string]*entity.Material{
		materialID: {
			ID: materialID, CompanyID: companyA, Name: "Hilo", Unit: "m",
			Quantity: decimal.RequireFromString(stock),
		},
	}}
	entries := &fakeEntryRepo{}
	runner := &fakeTxRunner{materials: materials, entries: entries}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return inventory.NewInwardUseCase(runner, entries, log), materials, entries
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_IncrementaStock(t *testing.T) {
	uc, materials, entries := buildUseCase("10")

	out, err := uc.RegisterEntry(context.Background(), companyA, dto.CreateInwardEntryRequest{
		MaterialID: materialID,
		Quantity:   decimal.RequireFromString("2.5"),
	})
	require.NoError(t, err)

	assert.True(t, out.UpdatedStock.Equal(decimal.RequireFromString("12.5")),
		"stock resultante: 10 + 2.5 = 12.5, fue %s", out.UpdatedStock)
	m, err := materials.GetByID(materialID)
	require.NoError(t, err)
	assert.True(t, m.Quantity.Equal(decimal.RequireFromString("12.5")))

	list, err := entries.ListByCompany(companyA, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1, "la entrada debe quedar en el historial")
}

func TestRegisterEntry_CantidadNoPositiva(t *testing.T) {
	uc, _, _ := buildUseCase("10")

	for _, qty := range []string{"0", "-1"} {
		_, err := uc.RegisterEntry(context.Background(), companyA, dto.CreateInwardEntryRequest{
			MaterialID: materialID,
			Quantity:   decimal.RequireFromString(qty),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %s debe rechazarse", qty)
	}
}

func TestRegisterEntry_MaterialDeOtraEmpresa(t *testing.T) {
	uc, materials, _ := buildUseCase("10")

	_, err := uc.RegisterEntry(context.Background(), "company-b", dto.CreateInwardEntryRequest{
		MaterialID: materialID,
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	m, err := materials.GetByID(materialID)
	require.NoError(t, err)
	assert.True(t, m.Quantity.Equal(decimal.NewFromInt(10)), "el stock de A no debe moverse")
}

func TestRegisterEntry_CuentaSinEmpresa(t *testing.T) {
	uc, _, _ := buildUseCase("10")

	_, err := uc.RegisterEntry(context.Background(), "", dto.CreateInwardEntryRequest{
		MaterialID: materialID,
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterEntry_FalloEnInsertPropagaError(t *testing.T) {
	uc, _, entries := buildUseCase("10")
	entries.failOn = true

	_, err := uc.RegisterEntry(context.Background(), companyA, dto.CreateInwardEntryRequest{
		MaterialID: materialID,
		Quantity:   decimal.NewFromInt(1),
	})
	assert.Error(t, err, "si el insert del evento falla, la transacción completa debe fallar")
}
