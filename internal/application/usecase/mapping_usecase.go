package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// MappingUseCase CRUD de líneas de receta (producto -> material, cantidad fija).
type MappingUseCase struct {
	mappingRepo  repository.MappingRepository
	productRepo  repository.ProductRepository
	materialRepo repository.MaterialRepository
	log          *logger.Logger
}

// NewMappingUseCase construye el caso de uso de recetas.
func NewMappingUseCase(
	mappingRepo repository.MappingRepository,
	productRepo repository.ProductRepository,
	materialRepo repository.MaterialRepository,
	log *logger.Logger,
) *MappingUseCase {
	return &MappingUseCase{
		mappingRepo:  mappingRepo,
		productRepo:  productRepo,
		materialRepo: materialRepo,
		log:          log,
	}
}

// Create agrega una línea de receta. Producto y material deben existir en la
// empresa del usuario; línea repetida (producto, material): ErrDuplicate.
func (uc *MappingUseCase) Create(companyID string, req dto.CreateMappingRequest) (*dto.MappingResponse, error) {
	if companyID == "" {
		return nil, domain.ErrForbidden
	}
	if req.ProductID == "" || req.MaterialID == "" || !req.FixedQuantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	material, err := uc.materialRepo.GetByID(req.MaterialID)
	if err != nil {
		return nil, err
	}
	if material.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mapping := &entity.ProductMaterialMapping{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		ProductID:     req.ProductID,
		MaterialID:    req.MaterialID,
		FixedQuantity: req.FixedQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.mappingRepo.Create(mapping); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("mapping_id", mapping.ID).
		Str("product_id", mapping.ProductID).
		Str("material_id", mapping.MaterialID).
		Msg("línea de receta creada")
	resp := toMappingDTO(mapping)
	return &resp, nil
}

// GetByID devuelve una línea del tenant; de otra empresa: ErrNotFound.
func (uc *MappingUseCase) GetByID(companyID, mappingID string) (*dto.MappingResponse, error) {
	mapping, err := uc.getOwned(companyID, mappingID)
	if err != nil {
		return nil, err
	}
	resp := toMappingDTO(mapping)
	return &resp, nil
}

// ListByProduct receta completa de un producto del tenant.
func (uc *MappingUseCase) ListByProduct(companyID, productID string) ([]dto.MappingResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	mappings, err := uc.mappingRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		out = append(out, toMappingDTO(m))
	}
	return out, nil
}

// List líneas de receta de la empresa, paginadas.
func (uc *MappingUseCase) List(companyID string, limit, offset int) (*dto.MappingListResponse, error) {
	limit, offset = clampPage(limit, offset)
	if companyID == "" {
		return &dto.MappingListResponse{
			Items: []dto.MappingResponse{},
			Page:  dto.PageResponse{Limit: limit, Offset: offset},
		}, nil
	}
	mappings, err := uc.mappingRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		items = append(items, toMappingDTO(m))
	}
	return &dto.MappingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update cambia la cantidad fija de una línea. Afecta cálculos futuros; las
// órdenes ya confirmadas no se recalculan.
func (uc *MappingUseCase) Update(companyID, mappingID string, req dto.UpdateMappingRequest) (*dto.MappingResponse, error) {
	if !req.FixedQuantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	mapping, err := uc.getOwned(companyID, mappingID)
	if err != nil {
		return nil, err
	}
	mapping.FixedQuantity = req.FixedQuantity
	mapping.UpdatedAt = time.Now()
	if err := uc.mappingRepo.Update(mapping); err != nil {
		return nil, err
	}
	resp := toMappingDTO(mapping)
	return &resp, nil
}

// Delete quita una línea de la receta.
func (uc *MappingUseCase) Delete(companyID, mappingID string) error {
	if _, err := uc.getOwned(companyID, mappingID); err != nil {
		return err
	}
	return uc.mappingRepo.Delete(mappingID)
}

func (uc *MappingUseCase) getOwned(companyID, mappingID string) (*entity.ProductMaterialMapping, error) {
	mapping, err := uc.mappingRepo.GetByID(mappingID)
	if err != nil {
		return nil, err
	}
	if mapping.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return mapping, nil
}

func toMappingDTO(m *entity.ProductMaterialMapping) dto.MappingResponse {
	return dto.MappingResponse{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		ProductID:     m.ProductID,
		MaterialID:    m.MaterialID,
		FixedQuantity: m.FixedQuantity,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
