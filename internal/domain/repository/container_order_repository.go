package repository

import (
	"context"

	"github.com/jhoicas/container-sales-api/internal/domain/entity"
)

// ContainerOrderRepository define el puerto de persistencia para las órdenes de venta.
type ContainerOrderRepository interface {
	// Update sobrescribe los campos de negocio de la orden con order.ID y refresca updatedAt.
	// Devuelve cuántos documentos coincidieron con el id; 0 no es un error.
	Update(ctx context.Context, order *entity.ContainerOrder) (matched int64, err error)
}
