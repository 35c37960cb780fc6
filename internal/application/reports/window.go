package reports

import (
	"time"

	"github.com/Gitram007/pre-deployment--v2/internal/domain"
)

// Frecuencias de reporte aceptadas.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// resolveWindow traduce la frecuencia al inicio de la ventana de consulta.
// monthly es una aproximación fija de 30 días, no un mes calendario.
// Vacío equivale a daily; cualquier otro valor es ErrInvalidInput.
func resolveWindow(frequency string, now time.Time) (time.Time, error) {
	switch frequency {
	case FrequencyDaily, "":
		return now.Add(-24 * time.Hour), nil
	case FrequencyWeekly:
		return now.Add(-7 * 24 * time.Hour), nil
	case FrequencyMonthly:
		return now.Add(-30 * 24 * time.Hour), nil
	default:
		return time.Time{}, domain.ErrInvalidInput
	}
}
