package repository

import (
	"context"

	"github.com/jhoicas/container-sales-api/internal/domain/entity"
)

// ContainerRepository define el puerto de persistencia para Container (DIP).
type ContainerRepository interface {
	// Create inserta el contenedor y asigna container.ID.
	Create(ctx context.Context, container *entity.Container) error
}
