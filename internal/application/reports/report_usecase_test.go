package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/application/reports"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

const companyA = "company-a"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// recipeLine línea de receta del fake: cantidad fija por unidad producida.
type recipeLine struct {
	materialID   string
	materialName string
	unit         string
	fixedQty     decimal.Decimal
}

// storedOrder orden registrada en el fake, con fecha para filtrar por ventana.
type storedOrder struct {
	productID string
	quantity  int64
	createdAt time.Time
}

type fakeReportRepo struct {
	usage  []repository.MaterialTotalRow
	inward []repository.MaterialTotalRow

	// Si recipes está poblado, el uso se deriva de ordersLog × recipes igual
	// que el SQL real (filtrando por producto y por ventana) en lugar de
	// devolver la lista estática de arriba.
	recipes   map[string][]recipeLine
	ordersLog []storedOrder

	products  int64
	materials int64
	lowStock  []*entity.Material
	orders    []repository.RecentOrderRow
	entries   []repository.RecentInwardRow

	// ventana recibida en la última consulta, para verificar la traducción
	// de frecuencia a "since"
	lastSince time.Time
}

// deriveUsage suma fixed_quantity × order.quantity por material sobre las
// órdenes dentro de la ventana; productID vacío agrega todos los productos.
func (r *fakeReportRepo) deriveUsage(productID string, since time.Time) []repository.MaterialTotalRow {
	totals := make(map[string]*repository.MaterialTotalRow)
	for _, o := range r.ordersLog {
		if productID != "" && o.productID != productID {
			continue
		}
		if o.createdAt.Before(since) {
			continue
		}
		for _, line := range r.recipes[o.productID] {
			consumed := line.fixedQty.Mul(decimal.NewFromInt(o.quantity))
			if t, ok := totals[line.materialID]; ok {
				t.Total = t.Total.Add(consumed)
			} else {
				totals[line.materialID] = &repository.MaterialTotalRow{
					MaterialID:   line.materialID,
					MaterialName: line.materialName,
					Unit:         line.unit,
					Total:        consumed,
				}
			}
		}
	}
	out := make([]repository.MaterialTotalRow, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	return out
}

func (r *fakeReportRepo) UsageByProduct(_ context.Context, _, productID string, since time.Time) ([]repository.MaterialTotalRow, error) {
	r.lastSince = since
	if r.recipes != nil {
		return r.deriveUsage(productID, since), nil
	}
	return r.usage, nil
}
func (r *fakeReportRepo) UsageOverall(_ context.Context, _ string, since time.Time) ([]repository.MaterialTotalRow, error) {
	r.lastSince = since
	if r.recipes != nil {
		return r.deriveUsage("", since), nil
	}
	return r.usage, nil
}
func (r *fakeReportRepo) InwardTotals(_ context.Context, _ string, since time.Time) ([]repository.MaterialTotalRow, error) {
	return r.inward, nil
}
func (r *fakeReportRepo) CountProducts(context.Context, string) (int64, error) {
	return r.products, nil
}
func (r *fakeReportRepo) CountMaterials(context.Context, string) (int64, error) {
	return r.materials, nil
}
func (r *fakeReportRepo) ListLowStockMaterials(context.Context, string) ([]*entity.Material, error) {
	return r.lowStock, nil
}
func (r *fakeReportRepo) ListRecentOrders(context.Context, string, int) ([]repository.RecentOrderRow, error) {
	return r.orders, nil
}
func (r *fakeReportRepo) ListRecentInward(context.Context, string, int) ([]repository.RecentInwardRow, error) {
	return r.entries, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (r *fakeProductRepo) GetByCompanyAndName(string, string) (*entity.Product, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(string) error { return nil }

type fakeCompanyRepo struct{}

func (fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: "Textiles SA"}, nil
}
func (fakeCompanyRepo) GetByName(string) (*entity.Company, error) { return nil, domain.ErrNotFound }
func (fakeCompanyRepo) List(int, int) ([]*entity.Company, error)  { return nil, nil }

type fakePDF struct {
	called bool
	rows   []dto.OverallReportRowDTO
}

func (g *fakePDF) OverallReportPDF(_ context.Context, _, _ string, rows []dto.OverallReportRowDTO, _ time.Time) ([]byte, error) {
	g.called = true
	g.rows = rows
	return []byte("%PDF-"), nil
}

func buildUseCase(repo *fakeReportRepo) (*reports.ReportUseCase, *fakePDF) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"product-1": {ID: "product-1", CompanyID: companyA, Name: "Widget"},
		"product-2": {ID: "product-2", CompanyID: companyA, Name: "Gadget"},
	}}
	pdf := &fakePDF{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return reports.NewReportUseCase(repo, products, fakeCompanyRepo{}, pdf, log), pdf
}

func row(id, name string, total string) repository.MaterialTotalRow {
	return repository.MaterialTotalRow{
		MaterialID:   id,
		MaterialName: name,
		Unit:         "kg",
		Total:        decimal.RequireFromString(total),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventanas de tiempo
// ──────────────────────────────────────────────────────────────────────────────

func TestUsageOverall_VentanasPorFrecuencia(t *testing.T) {
	cases := []struct {
		frequency string
		lookback  time.Duration
	}{
		{"daily", 24 * time.Hour},
		{"", 24 * time.Hour}, // vacío equivale a daily
		{"weekly", 7 * 24 * time.Hour},
		{"monthly", 30 * 24 * time.Hour}, // aproximación fija de 30 días
	}
	for _, tc := range cases {
		repo := &fakeReportRepo{}
		uc, _ := buildUseCase(repo)

		before := time.Now()
		_, err := uc.UsageOverall(context.Background(), companyA, tc.frequency)
		require.NoError(t, err, "frecuencia %q", tc.frequency)

		expected := before.Add(-tc.lookback)
		assert.WithinDuration(t, expected, repo.lastSince, 5*time.Second,
			"frecuencia %q debe consultar desde hace %s", tc.frequency, tc.lookback)
	}
}

func TestUsageOverall_FrecuenciaInvalida(t *testing.T) {
	uc, _ := buildUseCase(&fakeReportRepo{})

	_, err := uc.UsageOverall(context.Background(), companyA, "yearly")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsageByProduct_ProductoInexistente(t *testing.T) {
	uc, _ := buildUseCase(&fakeReportRepo{})

	_, err := uc.UsageByProduct(context.Background(), companyA, "product-x", "daily")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsageByProduct_ProductoDeOtraEmpresa(t *testing.T) {
	uc, _ := buildUseCase(&fakeReportRepo{})

	_, err := uc.UsageByProduct(context.Background(), "company-b", "product-1", "daily")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cuenta de sistema sin empresa: vacío, nunca error.
func TestReportes_CuentaSinEmpresaRespondeVacio(t *testing.T) {
	uc, _ := buildUseCase(&fakeReportRepo{
		usage:  []repository.MaterialTotalRow{row("m1", "Resina", "10")},
		inward: []repository.MaterialTotalRow{row("m1", "Resina", "5")},
	})

	usage, err := uc.UsageOverall(context.Background(), "", "daily")
	require.NoError(t, err)
	assert.Empty(t, usage)

	overall, err := uc.OverallReport(context.Background(), "", "daily")
	require.NoError(t, err)
	assert.Empty(t, overall)
}

// La frecuencia inválida gana incluso sin empresa.
func TestReportes_CuentaSinEmpresaFrecuenciaInvalida(t *testing.T) {
	uc, _ := buildUseCase(&fakeReportRepo{})

	_, err := uc.UsageOverall(context.Background(), "", "hourly")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte general
// ──────────────────────────────────────────────────────────────────────────────

func TestOverallReport_CruzaEntradasYUso(t *testing.T) {
	repo := &fakeReportRepo{
		inward: []repository.MaterialTotalRow{
			row("m1", "Resina", "100"),
			row("m3", "Tela", "40"),
		},
		usage: []repository.MaterialTotalRow{
			row("m1", "Resina", "30.5"),
			row("m2", "Tornillos", "12"),
		},
	}
	uc, _ := buildUseCase(repo)

	out, err := uc.OverallReport(context.Background(), companyA, "weekly")
	require.NoError(t, err)
	require.Len(t, out, 3, "unión de materiales con entradas o uso")

	// Ordenado por nombre: Resina, Tela, Tornillos.
	resina, tela, tornillos := out[0], out[1], out[2]

	assert.Equal(t, "Resina", resina.MaterialName)
	assert.True(t, resina.Balance.Equal(decimal.RequireFromString("69.5")),
		"balance de resina: 100 - 30.5 = 69.5, fue %s", resina.Balance)

	assert.Equal(t, "Tela", tela.MaterialName)
	assert.True(t, tela.Usage.IsZero(), "tela sin uso en la ventana")
	assert.True(t, tela.Balance.Equal(decimal.NewFromInt(40)))

	assert.Equal(t, "Tornillos", tornillos.MaterialName)
	assert.True(t, tornillos.Inward.IsZero(), "tornillos sin entradas en la ventana")
	assert.True(t, tornillos.Balance.Equal(decimal.NewFromInt(-12)),
		"el balance de la ventana puede ser negativo")
}

// La suma del uso por producto sobre todos los productos de la empresa debe
// coincidir, material por material, con el uso agregado de la misma ventana.
func TestUsage_SumaPorProductoIgualaAgregado(t *testing.T) {
	now := time.Now()
	repo := &fakeReportRepo{
		recipes: map[string][]recipeLine{
			"product-1": {
				{materialID: "m1", materialName: "Resina", unit: "kg", fixedQty: decimal.RequireFromString("10.5")},
				{materialID: "m2", materialName: "Tornillos", unit: "u", fixedQty: decimal.NewFromInt(21)},
			},
			"product-2": {
				{materialID: "m1", materialName: "Resina", unit: "kg", fixedQty: decimal.RequireFromString("2.25")},
				{materialID: "m3", materialName: "Tela", unit: "m", fixedQty: decimal.NewFromInt(4)},
			},
		},
		ordersLog: []storedOrder{
			{productID: "product-1", quantity: 3, createdAt: now.Add(-2 * time.Hour)},
			{productID: "product-2", quantity: 5, createdAt: now.Add(-20 * time.Hour)},
			{productID: "product-1", quantity: 2, createdAt: now.Add(-40 * time.Hour)}, // fuera de la ventana diaria
		},
	}
	uc, _ := buildUseCase(repo)

	sums := make(map[string]decimal.Decimal)
	for _, productID := range []string{"product-1", "product-2"} {
		perProduct, err := uc.UsageByProduct(context.Background(), companyA, productID, "daily")
		require.NoError(t, err)
		for _, u := range perProduct {
			sums[u.MaterialID] = sums[u.MaterialID].Add(u.Usage)
		}
	}

	overall, err := uc.UsageOverall(context.Background(), companyA, "daily")
	require.NoError(t, err)
	require.Len(t, overall, 3, "m1 y m2 del widget más m1 y m3 del gadget")

	for _, u := range overall {
		assert.True(t, u.Usage.Equal(sums[u.MaterialID]),
			"material %s: agregado %s vs suma por producto %s",
			u.MaterialID, u.Usage, sums[u.MaterialID])
	}
	assert.Len(t, sums, len(overall), "mismos materiales en ambas vistas")

	// Valores concretos: la orden fuera de ventana no cuenta.
	byID := make(map[string]decimal.Decimal)
	for _, u := range overall {
		byID[u.MaterialID] = u.Usage
	}
	assert.True(t, byID["m1"].Equal(decimal.RequireFromString("42.75")),
		"resina: 3×10.5 + 5×2.25 = 42.75, fue %s", byID["m1"])
	assert.True(t, byID["m2"].Equal(decimal.NewFromInt(63)), "tornillos: 3×21")
	assert.True(t, byID["m3"].Equal(decimal.NewFromInt(20)), "tela: 5×4")
}

func TestOverallReportPDF_GeneraDocumento(t *testing.T) {
	repo := &fakeReportRepo{
		inward: []repository.MaterialTotalRow{row("m1", "Resina", "100")},
		usage:  []repository.MaterialTotalRow{row("m1", "Resina", "30")},
	}
	uc, pdf := buildUseCase(repo)

	data, err := uc.OverallReportPDF(context.Background(), companyA, "monthly")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, pdf.called)
	require.Len(t, pdf.rows, 1)
	assert.True(t, pdf.rows[0].Balance.Equal(decimal.NewFromInt(70)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ArmaResumen(t *testing.T) {
	now := time.Now()
	repo := &fakeReportRepo{
		products:  3,
		materials: 7,
		lowStock: []*entity.Material{
			{ID: "m1", CompanyID: companyA, Name: "Resina", Unit: "kg",
				Quantity:          decimal.NewFromInt(2),
				LowStockThreshold: decimal.NewFromInt(10)},
		},
		orders: []repository.RecentOrderRow{
			{OrderID: "o1", ProductID: "product-1", ProductName: "Widget", Quantity: 5, CreatedAt: now},
		},
		entries: []repository.RecentInwardRow{
			{EntryID: "e1", MaterialID: "m1", MaterialName: "Resina", Unit: "kg",
				Quantity: decimal.NewFromInt(20), CreatedAt: now},
		},
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := reports.NewDashboardUseCase(repo, log)

	dash, err := uc.GetDashboard(context.Background(), companyA)
	require.NoError(t, err)

	assert.EqualValues(t, 3, dash.ProductCount)
	assert.EqualValues(t, 7, dash.MaterialCount)
	require.Len(t, dash.LowStockMaterials, 1)
	assert.Equal(t, "Resina", dash.LowStockMaterials[0].Name)
	require.Len(t, dash.RecentProductionOrders, 1)
	assert.Equal(t, "Widget", dash.RecentProductionOrders[0].ProductName)
	require.Len(t, dash.RecentInwardEntries, 1)
}

func TestDashboard_CuentaSinEmpresa(t *testing.T) {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := reports.NewDashboardUseCase(&fakeReportRepo{products: 99}, log)

	dash, err := uc.GetDashboard(context.Background(), "")
	require.NoError(t, err)

	assert.Zero(t, dash.ProductCount, "sin empresa no debe consultarse nada")
	assert.Empty(t, dash.LowStockMaterials)
	assert.NotNil(t, dash.LowStockMaterials, "listas vacías, no null en JSON")
}
