package inventory

import (
	"context"

	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
)

// TxRunner abre el alcance atómico de una entrada de material: el insert del
// evento y el incremento de stock comparten transacción.
type TxRunner interface {
	RunInward(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		entryRepo repository.InwardEntryRepository,
	) error) error
}
