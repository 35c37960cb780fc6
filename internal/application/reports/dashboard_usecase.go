package reports

import (
	"context"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

const dashboardRecentLimit = 5

// DashboardUseCase resumen operativo de la empresa para la pantalla inicial.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	log        *logger.Logger
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(reportRepo repository.ReportRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, log: log}
}

type countResult struct {
	n   int64
	err error
}

type lowStockResult struct {
	rows []*entity.Material
	err  error
}

type ordersResult struct {
	rows []repository.RecentOrderRow
	err  error
}

type inwardResult struct {
	rows []repository.RecentInwardRow
	err  error
}

// GetDashboard arma el resumen con cinco consultas en paralelo.
// Cuenta de sistema sin empresa: ceros y listas vacías, nunca error.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, companyID string) (*dto.DashboardDTO, error) {
	dash := &dto.DashboardDTO{
		LowStockMaterials:      []dto.MaterialResponse{},
		RecentProductionOrders: []dto.RecentOrderDTO{},
		RecentInwardEntries:    []dto.RecentInwardDTO{},
	}
	if companyID == "" {
		return dash, nil
	}

	productsCh := make(chan countResult, 1)
	materialsCh := make(chan countResult, 1)
	lowStockCh := make(chan lowStockResult, 1)
	ordersCh := make(chan ordersResult, 1)
	inwardCh := make(chan inwardResult, 1)

	go func() {
		n, err := uc.reportRepo.CountProducts(ctx, companyID)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountMaterials(ctx, companyID)
		materialsCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.reportRepo.ListLowStockMaterials(ctx, companyID)
		lowStockCh <- lowStockResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.ListRecentOrders(ctx, companyID, dashboardRecentLimit)
		ordersCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.ListRecentInward(ctx, companyID, dashboardRecentLimit)
		inwardCh <- inwardResult{rows, err}
	}()

	products := <-productsCh
	materials := <-materialsCh
	lowStock := <-lowStockCh
	orders := <-ordersCh
	inward := <-inwardCh

	for _, err := range []error{products.err, materials.err, lowStock.err, orders.err, inward.err} {
		if err != nil {
			uc.log.Error().Err(err).Str("company_id", companyID).Msg("error armando dashboard")
			return nil, err
		}
	}

	dash.ProductCount = products.n
	dash.MaterialCount = materials.n
	for _, m := range lowStock.rows {
		dash.LowStockMaterials = append(dash.LowStockMaterials, dto.MaterialResponse{
			ID:                m.ID,
			CompanyID:         m.CompanyID,
			Name:              m.Name,
			Style:             m.Style,
			Unit:              m.Unit,
			Quantity:          m.Quantity,
			LowStockThreshold: m.LowStockThreshold,
			CreatedAt:         m.CreatedAt,
			UpdatedAt:         m.UpdatedAt,
		})
	}
	for _, o := range orders.rows {
		dash.RecentProductionOrders = append(dash.RecentProductionOrders, dto.RecentOrderDTO{
			ID:          o.OrderID,
			ProductID:   o.ProductID,
			ProductName: o.ProductName,
			Quantity:    o.Quantity,
			CreatedAt:   o.CreatedAt,
		})
	}
	for _, e := range inward.rows {
		dash.RecentInwardEntries = append(dash.RecentInwardEntries, dto.RecentInwardDTO{
			ID:           e.EntryID,
			MaterialID:   e.MaterialID,
			MaterialName: e.MaterialName,
			Unit:         e.Unit,
			Quantity:     e.Quantity,
			CreatedAt:    e.CreatedAt,
		})
	}
	return dash, nil
}
