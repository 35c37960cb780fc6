package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// InwardUseCase registra recepciones de material e incrementa el stock.
type InwardUseCase struct {
	txRunner  TxRunner
	entryRepo repository.InwardEntryRepository // lecturas fuera de transacción
	log       *logger.Logger
}

// NewInwardUseCase construye el caso de uso de entradas.
func NewInwardUseCase(txRunner TxRunner, entryRepo repository.InwardEntryRepository, log *logger.Logger) *InwardUseCase {
	return &InwardUseCase{txRunner: txRunner, entryRepo: entryRepo, log: log}
}

// RegisterEntry inserta la entrada y suma la cantidad al material en una sola
// transacción. Material inexistente o de otra empresa: ErrNotFound.
func (uc *InwardUseCase) RegisterEntry(ctx context.Context, companyID string, req dto.CreateInwardEntryRequest) (*dto.InwardEntryResponse, error) {
	if companyID == "" {
		return nil, domain.ErrForbidden
	}
	if req.MaterialID == "" || !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	entry := &entity.InwardEntry{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		MaterialID: req.MaterialID,
		Quantity:   req.Quantity,
		CreatedAt:  time.Now(),
	}
	resp := &dto.InwardEntryResponse{
		ID:         entry.ID,
		MaterialID: entry.MaterialID,
		Quantity:   entry.Quantity,
		CreatedAt:  entry.CreatedAt,
	}

	err := uc.txRunner.RunInward(ctx, func(materialRepo repository.MaterialRepository, entryRepo repository.InwardEntryRepository) error {
		// AddQuantity filtra por empresa: si no afecta fila, el material no
		// existe para este tenant y toda la transacción se revierte.
		newQty, err := materialRepo.AddQuantity(ctx, companyID, req.MaterialID, req.Quantity)
		if err != nil {
			return err
		}
		resp.UpdatedStock = newQty
		return entryRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("entry_id", entry.ID).
		Str("material_id", entry.MaterialID).
		Str("quantity", entry.Quantity.String()).
		Msg("entrada de material registrada")
	return resp, nil
}

// ListEntries historial de entradas de la empresa, recientes primero.
func (uc *InwardUseCase) ListEntries(companyID string, limit, offset int) (*dto.InwardEntryListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	entries, err := uc.entryRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InwardEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.InwardEntryResponse{
			ID:         e.ID,
			MaterialID: e.MaterialID,
			Quantity:   e.Quantity,
			CreatedAt:  e.CreatedAt,
		})
	}
	return &dto.InwardEntryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
