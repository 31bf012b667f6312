package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/container-sales-api/internal/domain"
	"github.com/jhoicas/container-sales-api/internal/domain/entity"
	"github.com/jhoicas/container-sales-api/internal/domain/repository"
)

var _ repository.ContainerOrderRepository = (*ContainerOrderRepo)(nil)

// ContainerOrderRepo adaptador de escritura para "container_order".
type ContainerOrderRepo struct {
	coll *mongo.Collection
}

// NewContainerOrderRepository construye el adaptador.
func NewContainerOrderRepository(db *mongo.Database) *ContainerOrderRepo {
	return &ContainerOrderRepo{coll: db.Collection(CollectionContainerOrder)}
}

// Update sobrescribe los campos editables de la orden. Los montos se guardan
// como texto decimal, el mismo formato que leen las agregaciones ($toDecimal).
func (r *ContainerOrderRepo) Update(ctx context.Context, o *entity.ContainerOrder) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(o.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: id de orden inválido %q", domain.ErrInvalidInput, o.ID)
	}

	set := bson.D{
		{Key: "BuyersName", Value: o.BuyersName},
		{Key: "DateOrder", Value: o.DateOrder},
		{Key: "PlaceSales", Value: o.PlaceSales},
		{Key: "ContainerNo", Value: o.ContainerNo},
		{Key: "Commodity", Value: o.Commodity},
		{Key: "Size", Value: o.Size},
		{Key: "BoxSales", Value: o.BoxSales},
		{Key: "Price", Value: o.Price.String()},
		{Key: "GrossSales", Value: o.GrossSales.String()},
		{Key: "PayAmount", Value: o.PayAmount.String()},
		{Key: "Status", Value: o.Status},
		{Key: "BalanceAmount", Value: o.BalanceAmount.String()},
		{Key: "Location", Value: o.Location},
		{Key: "updatedAt", Value: o.UpdatedAt},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return 0, fmt.Errorf("update container_order: %w", err)
	}
	return res.MatchedCount, nil
}
