package usecase

import (
	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
)

// CompanyUseCase lecturas de empresas. El alta vive en auth.Register: una
// empresa nunca nace sin su usuario admin.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso de empresas.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// GetMine devuelve la empresa del usuario autenticado.
func (uc *CompanyUseCase) GetMine(companyID string) (*dto.CompanyResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		CreatedAt: company.CreatedAt,
	}, nil
}
