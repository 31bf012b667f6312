package repository

import (
	"context"

	"github.com/jhoicas/container-sales-api/internal/domain/entity"
)

// ActivityLogRepository puerto append-only para la bitácora de actividad.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *entity.ActivityLog) error
}
