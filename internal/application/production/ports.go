package production

import (
	"context"

	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
)

// TxRunner abre el alcance atómico del planificador: fn recibe repos atados a
// una transacción y todo lo que haga dentro persiste junto o no persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		orderRepo repository.ProductionOrderRepository,
	) error) error
}
