package mongodb

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/container-sales-api/internal/domain/reporting"
	"github.com/jhoicas/container-sales-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo agregaciones de lectura sobre "container_order".
type SalesRepo struct {
	coll *mongo.Collection
}

// NewSalesRepository construye el adaptador.
func NewSalesRepository(db *mongo.Database) *SalesRepo {
	return &SalesRepo{coll: db.Collection(CollectionContainerOrder)}
}

// SumGrossSales suma GrossSales de las órdenes que cumplen el filtro.
func (r *SalesRepo) SumGrossSales(ctx context.Context, f reporting.Filter) (decimal.Decimal, error) {
	return r.sum(ctx, f, "GrossSales")
}

// SumBalanceAmount suma BalanceAmount de las órdenes que cumplen el filtro.
func (r *SalesRepo) SumBalanceAmount(ctx context.Context, f reporting.Filter) (decimal.Decimal, error) {
	return r.sum(ctx, f, "BalanceAmount")
}

func (r *SalesRepo) sum(ctx context.Context, f reporting.Filter, field string) (decimal.Decimal, error) {
	cur, err := r.coll.Aggregate(ctx, sumPipeline(f, field))
	if err != nil {
		return decimal.Zero, fmt.Errorf("aggregate %s: %w", field, err)
	}
	defer cur.Close(ctx)

	// $group sin documentos de entrada no emite nada: total cero
	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return decimal.Zero, fmt.Errorf("aggregate %s: %w", field, err)
		}
		return decimal.Zero, nil
	}

	var row struct {
		Total bson.RawValue `bson:"total"`
	}
	if err := cur.Decode(&row); err != nil {
		return decimal.Zero, fmt.Errorf("decode %s: %w", field, err)
	}
	total, err := decimalFromRaw(row.Total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode %s: %w", field, err)
	}
	return total, nil
}
