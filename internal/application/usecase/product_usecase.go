package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// ProductUseCase CRUD de productos dentro del tenant.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, log: log}
}

// Create da de alta un producto. Nombre duplicado en la empresa: ErrDuplicate.
func (uc *ProductUseCase) Create(companyID string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if companyID == "" {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	resp := toProductDTO(product)
	return &resp, nil
}

// GetByID devuelve un producto del tenant; de otra empresa: ErrNotFound.
func (uc *ProductUseCase) GetByID(companyID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(companyID, productID)
	if err != nil {
		return nil, err
	}
	resp := toProductDTO(product)
	return &resp, nil
}

// List productos de la empresa, paginados.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	limit, offset = clampPage(limit, offset)
	if companyID == "" {
		return &dto.ProductListResponse{
			Items: []dto.ProductResponse{},
			Page:  dto.PageResponse{Limit: limit, Offset: offset},
		}, nil
	}
	products, err := uc.productRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductDTO(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update renombra un producto del tenant.
func (uc *ProductUseCase) Update(companyID, productID string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.getOwned(companyID, productID)
	if err != nil {
		return nil, err
	}
	product.Name = name
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	resp := toProductDTO(product)
	return &resp, nil
}

// Delete elimina un producto sin historial. Con órdenes registradas la base
// lo protege (FK RESTRICT) y se devuelve ErrProtected.
func (uc *ProductUseCase) Delete(companyID, productID string) error {
	if _, err := uc.getOwned(companyID, productID); err != nil {
		return err
	}
	return uc.productRepo.Delete(productID)
}

func (uc *ProductUseCase) getOwned(companyID, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductDTO(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
