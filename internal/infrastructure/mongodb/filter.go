package mongodb

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/container-sales-api/internal/domain/reporting"
)

const sumAlias = "total"

// matchStage traduce el filtro del dominio a la condición de $match.
// DateOrder se compara como string ISO, igual que se guarda.
func matchStage(f reporting.Filter) bson.D {
	m := bson.D{}
	if f.PaymentMode != "" {
		m = append(m, bson.E{Key: "PaymentMode", Value: f.PaymentMode})
	}

	d := f.DateOrder
	switch {
	case d.MatchNone:
		// $in vacío: ningún documento coincide
		m = append(m, bson.E{Key: "DateOrder", Value: bson.D{{Key: "$in", Value: bson.A{}}}})
	case d.Equals != "":
		m = append(m, bson.E{Key: "DateOrder", Value: d.Equals})
	default:
		rng := bson.D{}
		if d.From != "" {
			rng = append(rng, bson.E{Key: "$gte", Value: d.From})
		}
		if d.Before != "" {
			rng = append(rng, bson.E{Key: "$lt", Value: d.Before})
		}
		if len(rng) > 0 {
			m = append(m, bson.E{Key: "DateOrder", Value: rng})
		}
	}

	if f.HasLocation() {
		m = append(m, bson.E{Key: "Location", Value: f.Location})
	}
	return m
}

// sumPipeline $match → $addFields (texto a decimal) → $group con la suma.
// Un valor no numérico hace fallar la agregación completa.
func sumPipeline(f reporting.Filter, field string) mongo.Pipeline {
	ref := "$" + field
	return mongo.Pipeline{
		{{Key: "$match", Value: matchStage(f)}},
		{{Key: "$addFields", Value: bson.D{{Key: field, Value: bson.D{{Key: "$toDecimal", Value: ref}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: sumAlias, Value: bson.D{{Key: "$sum", Value: ref}}},
		}}},
	}
}

// decimalFromRaw convierte el resultado de $sum. Si todos los valores eran nulos
// $sum devuelve un entero 0 en lugar de Decimal128.
func decimalFromRaw(v bson.RawValue) (decimal.Decimal, error) {
	switch v.Type {
	case bsontype.Decimal128:
		return decimal.NewFromString(v.Decimal128().String())
	case bsontype.Int32:
		return decimal.NewFromInt32(v.Int32()), nil
	case bsontype.Int64:
		return decimal.NewFromInt(v.Int64()), nil
	case bsontype.Double:
		return decimal.NewFromFloat(v.Double()), nil
	case bsontype.Null, bsontype.Undefined, 0:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("suma con tipo inesperado %s", v.Type)
	}
}
