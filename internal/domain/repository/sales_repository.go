package repository

import (
	"context"

	"github.com/jhoicas/container-sales-api/internal/domain/reporting"
	"github.com/shopspring/decimal"
)

// SalesRepository consultas de lectura (agregaciones) sobre las órdenes de venta.
// Las implementaciones devuelven cero si ningún registro coincide.
type SalesRepository interface {
	// SumGrossSales suma GrossSales de las órdenes que cumplen el filtro.
	SumGrossSales(ctx context.Context, filter reporting.Filter) (decimal.Decimal, error)

	// SumBalanceAmount suma BalanceAmount de las órdenes que cumplen el filtro.
	SumBalanceAmount(ctx context.Context, filter reporting.Filter) (decimal.Decimal, error)
}
