package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// ReportUseCase reportes de uso y entradas sobre ventanas de tiempo.
//
// El uso se calcula contra la receta VIGENTE: una orden histórica se valora
// con las fixed_quantity actuales, no con las del momento de la orden.
type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
	pdf         PDFGenerator
	log         *logger.Logger
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	pdf PDFGenerator,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
		pdf:         pdf,
		log:         log,
	}
}

func toUsageDTOs(rows []repository.MaterialTotalRow) []dto.MaterialUsageDTO {
	out := make([]dto.MaterialUsageDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MaterialUsageDTO{
			MaterialID:   r.MaterialID,
			MaterialName: r.MaterialName,
			Unit:         r.Unit,
			Usage:        r.Total,
		})
	}
	return out
}

// UsageByProduct uso por material de las órdenes de un producto en la ventana.
// Producto de otra empresa o inexistente: ErrNotFound.
func (uc *ReportUseCase) UsageByProduct(ctx context.Context, companyID, productID, frequency string) ([]dto.MaterialUsageDTO, error) {
	if companyID == "" {
		// Cuenta de sistema sin empresa: resultado vacío, nunca error.
		if _, err := resolveWindow(frequency, time.Now()); err != nil {
			return nil, err
		}
		return []dto.MaterialUsageDTO{}, nil
	}
	since, err := resolveWindow(frequency, time.Now())
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.reportRepo.UsageByProduct(ctx, companyID, productID, since)
	if err != nil {
		return nil, err
	}
	return toUsageDTOs(rows), nil
}

// UsageOverall uso por material de todas las órdenes de la empresa en la ventana.
func (uc *ReportUseCase) UsageOverall(ctx context.Context, companyID, frequency string) ([]dto.MaterialUsageDTO, error) {
	since, err := resolveWindow(frequency, time.Now())
	if err != nil {
		return nil, err
	}
	if companyID == "" {
		return []dto.MaterialUsageDTO{}, nil
	}
	rows, err := uc.reportRepo.UsageOverall(ctx, companyID, since)
	if err != nil {
		return nil, err
	}
	return toUsageDTOs(rows), nil
}

// OverallReport cruza entradas y uso por material en la ventana; el balance
// (inward - usage) es el movimiento neto de la ventana. Materiales sin
// actividad no aparecen.
func (uc *ReportUseCase) OverallReport(ctx context.Context, companyID, frequency string) ([]dto.OverallReportRowDTO, error) {
	since, err := resolveWindow(frequency, time.Now())
	if err != nil {
		return nil, err
	}
	if companyID == "" {
		return []dto.OverallReportRowDTO{}, nil
	}

	// Dos consultas independientes en paralelo, como el dashboard.
	type totalsResult struct {
		rows []repository.MaterialTotalRow
		err  error
	}
	inwardCh := make(chan totalsResult, 1)
	usageCh := make(chan totalsResult, 1)
	go func() {
		rows, err := uc.reportRepo.InwardTotals(ctx, companyID, since)
		inwardCh <- totalsResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.UsageOverall(ctx, companyID, since)
		usageCh <- totalsResult{rows, err}
	}()
	inward := <-inwardCh
	usage := <-usageCh
	if inward.err != nil {
		return nil, inward.err
	}
	if usage.err != nil {
		return nil, usage.err
	}

	byID := make(map[string]*dto.OverallReportRowDTO)
	for _, r := range inward.rows {
		byID[r.MaterialID] = &dto.OverallReportRowDTO{
			MaterialID:   r.MaterialID,
			MaterialName: r.MaterialName,
			Unit:         r.Unit,
			Inward:       r.Total,
			Usage:        decimal.Zero,
		}
	}
	for _, r := range usage.rows {
		row, ok := byID[r.MaterialID]
		if !ok {
			row = &dto.OverallReportRowDTO{
				MaterialID:   r.MaterialID,
				MaterialName: r.MaterialName,
				Unit:         r.Unit,
				Inward:       decimal.Zero,
			}
			byID[r.MaterialID] = row
		}
		row.Usage = r.Total
	}

	out := make([]dto.OverallReportRowDTO, 0, len(byID))
	for _, row := range byID {
		row.Balance = row.Inward.Sub(row.Usage)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MaterialName < out[j].MaterialName })
	return out, nil
}

// OverallReportPDF exporta el reporte general de la ventana a PDF.
func (uc *ReportUseCase) OverallReportPDF(ctx context.Context, companyID, frequency string) ([]byte, error) {
	rows, err := uc.OverallReport(ctx, companyID, frequency)
	if err != nil {
		return nil, err
	}
	companyName := ""
	if companyID != "" {
		company, err := uc.companyRepo.GetByID(companyID)
		if err != nil {
			return nil, err
		}
		companyName = company.Name
	}
	return uc.pdf.OverallReportPDF(ctx, companyName, normalizeFrequency(frequency), rows, time.Now())
}

func normalizeFrequency(frequency string) string {
	if frequency == "" {
		return FrequencyDaily
	}
	return frequency
}
