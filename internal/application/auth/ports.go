package auth

import (
	"context"

	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
)

// TxRunner abre el alcance atómico del registro: empresa y primer usuario
// admin se crean juntos o no se crea ninguno.
type TxRunner interface {
	RunRegister(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}
