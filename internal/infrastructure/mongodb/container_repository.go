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

var _ repository.ContainerRepository = (*ContainerRepo)(nil)

// containerDocument forma del documento en la colección "container".
// Los nombres de campo son los que ya existen en la base.
type containerDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ReferenceNumber string             `bson:"ReferenceNumber"`
	SpsicNo         string             `bson:"SpsicNo"`
	DateArrived     string             `bson:"DateArrived"`
	DateSoldout     string             `bson:"DateSoldout"`
	SupplierName    string             `bson:"SupplierName"`
	ContainerNo     string             `bson:"ContainerNo"`
	ContainerType   string             `bson:"ContainerType"`
	Country         string             `bson:"Country"`
	Boxes           string             `bson:"Boxes"`
	TotalQuantity   string             `bson:"TotalQuantity"`
	TotalGrossSales string             `bson:"TotalGrossSales"`
	Commodity       string             `bson:"Commodity"`
	Size            string             `bson:"Size"`
	Freezing        string             `bson:"Freezing"`
	Status          string             `bson:"Status"`
	BoxType         string             `bson:"BoxType"`
	Remarks         string             `bson:"Remarks"`
	Location        string             `bson:"Location"`
	PlaceSales      string             `bson:"PlaceSales"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

// ContainerRepo implementación de ContainerRepository sobre MongoDB.
type ContainerRepo struct {
	coll *mongo.Collection
}

// NewContainerRepository construye el adaptador.
func NewContainerRepository(db *mongo.Database) *ContainerRepo {
	return &ContainerRepo{coll: db.Collection(CollectionContainer)}
}

// Create inserta el contenedor y asigna el _id generado.
func (r *ContainerRepo) Create(ctx context.Context, c *entity.Container) error {
	doc := containerDocument{
		ReferenceNumber: c.ReferenceNumber,
		SpsicNo:         c.SpsicNo,
		DateArrived:     c.DateArrived,
		DateSoldout:     c.DateSoldout,
		SupplierName:    c.SupplierName,
		ContainerNo:     c.ContainerNo,
		ContainerType:   c.ContainerType,
		Country:         c.Country,
		Boxes:           c.Boxes,
		TotalQuantity:   c.TotalQuantity,
		TotalGrossSales: c.TotalGrossSales,
		Commodity:       c.Commodity,
		Size:            c.Size,
		Freezing:        c.Freezing,
		Status:          c.Status,
		BoxType:         c.BoxType,
		Remarks:         c.Remarks,
		Location:        c.Location,
		PlaceSales:      c.PlaceSales,
		CreatedAt:       c.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert container: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}
