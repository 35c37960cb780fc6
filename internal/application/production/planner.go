package production

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// Planner confirma órdenes de producción deduciendo materiales del ledger y
// estima requerimientos sin comprometer stock.
type Planner struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	mappingRepo  repository.MappingRepository
	materialRepo repository.MaterialRepository // lecturas fuera de transacción
	orderRepo    repository.ProductionOrderRepository
	log          *logger.Logger
}

// NewPlanner construye el caso de uso de producción.
func NewPlanner(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	mappingRepo repository.MappingRepository,
	materialRepo repository.MaterialRepository,
	orderRepo repository.ProductionOrderRepository,
	log *logger.Logger,
) *Planner {
	return &Planner{
		txRunner:     txRunner,
		productRepo:  productRepo,
		mappingRepo:  mappingRepo,
		materialRepo: materialRepo,
		orderRepo:    orderRepo,
		log:          log,
	}
}

// requirement necesidad total de un material para una orden.
type requirement struct {
	materialID string
	required   decimal.Decimal
}

// buildRequirements expande la receta a necesidades totales:
// required = fixed_quantity * unidades, por material, en orden ascendente de id.
func buildRequirements(mappings []*entity.ProductMaterialMapping, units int64) []requirement {
	factor := decimal.NewFromInt(units)
	reqs := make([]requirement, 0, len(mappings))
	for _, m := range mappings {
		reqs = append(reqs, requirement{
			materialID: m.MaterialID,
			required:   m.FixedQuantity.Mul(factor),
		})
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].materialID < reqs[j].materialID })
	return reqs
}

// resolveRecipe valida producto y receta dentro del tenant.
// Producto inexistente o de otra empresa: ErrNotFound (nunca se revela que
// existe en otro tenant). Receta vacía: ErrNoRecipe.
func (p *Planner) resolveRecipe(companyID, productID string, units int64) (*entity.Product, []requirement, error) {
	if companyID == "" {
		return nil, nil, domain.ErrForbidden
	}
	if productID == "" || units <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	product, err := p.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product.CompanyID != companyID {
		return nil, nil, domain.ErrNotFound
	}
	mappings, err := p.mappingRepo.ListByProduct(product.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(mappings) == 0 {
		return nil, nil, domain.ErrNoRecipe
	}
	return product, buildRequirements(mappings, units), nil
}

// PlanAndCommit verifica suficiencia de TODOS los materiales de la receta y,
// solo si todos alcanzan, deduce los consumos y registra la orden. Todo en una
// transacción: ninguna deducción parcial es observable. Si falta stock devuelve
// *domain.ShortfallError con todas las líneas en déficit.
func (p *Planner) PlanAndCommit(ctx context.Context, companyID string, req dto.CreateProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	product, reqs, err := p.resolveRecipe(companyID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.materialID)
	}

	order := &entity.ProductionOrder{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
		CreatedAt: time.Now(),
	}
	consumed := make([]dto.ConsumedLineDTO, 0, len(reqs))

	err = p.txRunner.Run(ctx, func(materialRepo repository.MaterialRepository, orderRepo repository.ProductionOrderRepository) error {
		// Bloqueo en orden ascendente de id: dos órdenes concurrentes que
		// comparten materiales se serializan en vez de interbloquearse.
		materials, err := materialRepo.GetManyForUpdate(ctx, companyID, ids)
		if err != nil {
			return err
		}
		byID := make(map[string]*entity.Material, len(materials))
		for _, m := range materials {
			byID[m.ID] = m
		}

		var shortfalls []domain.ShortfallLine
		for _, r := range reqs {
			mat, ok := byID[r.materialID]
			if !ok {
				// Mapeo apunta a un material borrado o de otra empresa.
				return domain.ErrNotFound
			}
			if mat.Quantity.LessThan(r.required) {
				shortfalls = append(shortfalls, domain.ShortfallLine{
					MaterialID:   mat.ID,
					MaterialName: mat.Name,
					Unit:         mat.Unit,
					Required:     r.required,
					Available:    mat.Quantity,
				})
			}
		}
		if len(shortfalls) > 0 {
			return &domain.ShortfallError{Lines: shortfalls}
		}

		for _, r := range reqs {
			mat := byID[r.materialID]
			remaining := mat.Quantity.Sub(r.required)
			if err := materialRepo.SetQuantity(ctx, mat.ID, remaining); err != nil {
				return err
			}
			consumed = append(consumed, dto.ConsumedLineDTO{
				MaterialID:   mat.ID,
				MaterialName: mat.Name,
				Consumed:     r.required,
				Remaining:    remaining,
			})
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("order_id", order.ID).
		Str("product_id", product.ID).
		Int64("units", order.Quantity).
		Int("materials", len(consumed)).
		Msg("orden de producción confirmada")

	return &dto.ProductionOrderResponse{
		ID:        order.ID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		CreatedAt: order.CreatedAt,
		Consumed:  consumed,
	}, nil
}

// Estimate calcula requerimientos contra el stock actual sin bloquear filas ni
// modificar nada. El resultado es una foto: puede quedar obsoleto apenas
// calculado y no reserva stock.
func (p *Planner) Estimate(ctx context.Context, companyID string, req dto.EstimateRequest) ([]dto.EstimateLineDTO, error) {
	_, reqs, err := p.resolveRecipe(companyID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}

	lines := make([]dto.EstimateLineDTO, 0, len(reqs))
	for _, r := range reqs {
		mat, err := p.materialRepo.GetByID(r.materialID)
		if err != nil {
			return nil, err
		}
		shortfall := r.required.Sub(mat.Quantity)
		if shortfall.IsNegative() {
			shortfall = decimal.Zero
		}
		lines = append(lines, dto.EstimateLineDTO{
			MaterialID:       mat.ID,
			MaterialName:     mat.Name,
			MaterialUnit:     mat.Unit,
			RequiredQuantity: r.required,
			CurrentStock:     mat.Quantity,
			Shortfall:        shortfall,
		})
	}
	return lines, nil
}

// ListOrders devuelve el historial de órdenes de la empresa, recientes primero.
func (p *Planner) ListOrders(companyID string, limit, offset int) (*dto.ProductionOrderListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	orders, err := p.orderRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.ProductionOrderResponse{
			ID:        o.ID,
			ProductID: o.ProductID,
			Quantity:  o.Quantity,
			CreatedAt: o.CreatedAt,
		})
	}
	return &dto.ProductionOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetOrder devuelve una orden por id dentro del tenant.
func (p *Planner) GetOrder(companyID, orderID string) (*dto.ProductionOrderResponse, error) {
	order, err := p.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return &dto.ProductionOrderResponse{
		ID:        order.ID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		CreatedAt: order.CreatedAt,
	}, nil
}
