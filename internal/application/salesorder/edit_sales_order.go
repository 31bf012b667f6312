// Package salesorder contiene los casos de uso de órdenes de venta (container_order).
package salesorder

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/internal/domain"
	"github.com/jhoicas/container-sales-api/internal/domain/entity"
	"github.com/jhoicas/container-sales-api/internal/domain/repository"
	"github.com/jhoicas/container-sales-api/pkg/logger"
	"github.com/jhoicas/container-sales-api/pkg/validate"
)

// EditSalesOrderUseCase sobrescribe los campos de negocio de una orden existente.
type EditSalesOrderUseCase struct {
	repo repository.ContainerOrderRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewEditSalesOrderUseCase construye el caso de uso.
func NewEditSalesOrderUseCase(repo repository.ContainerOrderRepository, log *logger.Logger) *EditSalesOrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &EditSalesOrderUseCase{repo: repo, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *EditSalesOrderUseCase) WithClock(now func() time.Time) *EditSalesOrderUseCase {
	uc.now = now
	return uc
}

// Edit aplica la sobrescritura completa y refresca updatedAt.
//
// Un id que no existe no es error: el llamador no distingue "actualizada" de
// "no existe". Solo queda registrado en el log como advertencia.
func (uc *EditSalesOrderUseCase) Edit(ctx context.Context, in dto.EditSalesOrderRequest) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	order := &entity.ContainerOrder{
		ID:            in.ID,
		BuyersName:    in.BuyersName,
		DateOrder:     in.DateOrder,
		PlaceSales:    in.PlaceSales,
		ContainerNo:   in.ContainerNo,
		Commodity:     in.Commodity,
		Size:          in.Size,
		BoxSales:      in.BoxSales.String(),
		Price:         in.Price,
		GrossSales:    in.GrossSales,
		PayAmount:     in.PayAmount,
		Status:        in.Status,
		BalanceAmount: in.BalanceAmount,
		Location:      in.Location,
		UpdatedAt:     uc.now(),
	}

	matched, err := uc.repo.Update(ctx, order)
	if err != nil {
		return fmt.Errorf("actualizar orden %s: %w", in.ID, err)
	}
	if matched == 0 {
		uc.log.Warn().Str("order_id", in.ID).Msg("edición sin coincidencias: la orden no existe")
	}
	return nil
}
