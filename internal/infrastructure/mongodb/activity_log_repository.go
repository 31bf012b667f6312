package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/container-sales-api/internal/domain/entity"
	"github.com/jhoicas/container-sales-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// activityLogDocument usa los nombres que ya lee el dashboard (userName, message).
type activityLogDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserName    string             `bson:"userName"`
	Location    string             `bson:"Location"`
	SpsicNo     string             `bson:"SpsicNo"`
	Message     string             `bson:"message"`
	ContainerNo string             `bson:"ContainerNo"`
	Boxes       string             `bson:"Boxes"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// ActivityLogRepo bitácora append-only en la colección "ActivityLogs".
type ActivityLogRepo struct {
	coll *mongo.Collection
}

// NewActivityLogRepository construye el adaptador.
func NewActivityLogRepository(db *mongo.Database) *ActivityLogRepo {
	return &ActivityLogRepo{coll: db.Collection(CollectionActivityLogs)}
}

// Append inserta una entrada nueva.
func (r *ActivityLogRepo) Append(ctx context.Context, e *entity.ActivityLog) error {
	res, err := r.coll.InsertOne(ctx, activityLogDocument{
		UserName:    e.UserName,
		Location:    e.Location,
		SpsicNo:     e.SpsicNo,
		Message:     e.Message,
		ContainerNo: e.ContainerNo,
		Boxes:       e.Boxes,
		CreatedAt:   e.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid.Hex()
	}
	return nil
}
