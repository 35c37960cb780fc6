package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// Umbral por defecto de stock bajo cuando el alta no lo indica.
var defaultLowStockThreshold = decimal.NewFromInt(10)

// MaterialUseCase CRUD de materiales dentro del tenant.
// Quantity solo se fija en el alta (stock inicial); después es del ledger.
type MaterialUseCase struct {
	materialRepo repository.MaterialRepository
	log          *logger.Logger
}

// NewMaterialUseCase construye el caso de uso de materiales.
func NewMaterialUseCase(materialRepo repository.MaterialRepository, log *logger.Logger) *MaterialUseCase {
	return &MaterialUseCase{materialRepo: materialRepo, log: log}
}

// Create da de alta un material con su stock inicial.
func (uc *MaterialUseCase) Create(companyID string, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if companyID == "" {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Unit == "" || req.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	threshold := defaultLowStockThreshold
	if req.LowStockThreshold != nil {
		if req.LowStockThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		threshold = *req.LowStockThreshold
	}

	now := time.Now()
	material := &entity.Material{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              name,
		Style:             strings.TrimSpace(req.Style),
		Unit:              req.Unit,
		Quantity:          req.Quantity,
		LowStockThreshold: threshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.materialRepo.Create(material); err != nil {
		return nil, err
	}

	uc.log.Info().Str("material_id", material.ID).Str("name", material.Name).Msg("material creado")
	resp := toMaterialDTO(material)
	return &resp, nil
}

// GetByID devuelve un material del tenant; de otra empresa: ErrNotFound.
func (uc *MaterialUseCase) GetByID(companyID, materialID string) (*dto.MaterialResponse, error) {
	material, err := uc.getOwned(companyID, materialID)
	if err != nil {
		return nil, err
	}
	resp := toMaterialDTO(material)
	return &resp, nil
}

// List materiales de la empresa, paginados.
func (uc *MaterialUseCase) List(companyID string, limit, offset int) (*dto.MaterialListResponse, error) {
	limit, offset = clampPage(limit, offset)
	if companyID == "" {
		return &dto.MaterialListResponse{
			Items: []dto.MaterialResponse{},
			Page:  dto.PageResponse{Limit: limit, Offset: offset},
		}, nil
	}
	materials, err := uc.materialRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		items = append(items, toMaterialDTO(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock materiales en o por debajo de su umbral.
func (uc *MaterialUseCase) ListLowStock(companyID string) ([]dto.MaterialResponse, error) {
	if companyID == "" {
		return []dto.MaterialResponse{}, nil
	}
	materials, err := uc.materialRepo.ListLowStock(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialDTO(m))
	}
	return out, nil
}

// Update modifica metadatos del material. La cantidad no es editable por esta
// vía: solo entradas y órdenes de producción la mueven.
func (uc *MaterialUseCase) Update(companyID, materialID string, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.getOwned(companyID, materialID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		material.Name = name
	}
	if req.Style != nil {
		material.Style = strings.TrimSpace(*req.Style)
	}
	if req.Unit != nil {
		if *req.Unit == "" {
			return nil, domain.ErrInvalidInput
		}
		material.Unit = *req.Unit
	}
	if req.LowStockThreshold != nil {
		if req.LowStockThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		material.LowStockThreshold = *req.LowStockThreshold
	}
	material.UpdatedAt = time.Now()
	if err := uc.materialRepo.Update(material); err != nil {
		return nil, err
	}
	resp := toMaterialDTO(material)
	return &resp, nil
}

// Delete elimina un material sin referencias. Si hay mapeos o historial la
// base lo protege (FK RESTRICT) y se devuelve ErrProtected.
func (uc *MaterialUseCase) Delete(companyID, materialID string) error {
	if _, err := uc.getOwned(companyID, materialID); err != nil {
		return err
	}
	return uc.materialRepo.Delete(materialID)
}

func (uc *MaterialUseCase) getOwned(companyID, materialID string) (*entity.Material, error) {
	material, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return material, nil
}

func toMaterialDTO(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:                m.ID,
		CompanyID:         m.CompanyID,
		Name:              m.Name,
		Style:             m.Style,
		Unit:              m.Unit,
		Quantity:          m.Quantity,
		LowStockThreshold: m.LowStockThreshold,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
