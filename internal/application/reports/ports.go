package reports

import (
	"context"
	"time"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
)

// PDFGenerator puerto de exportación del reporte general a PDF.
type PDFGenerator interface {
	OverallReportPDF(ctx context.Context, companyName, frequency string, rows []dto.OverallReportRowDTO, generatedAt time.Time) ([]byte, error)
}
