package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salesseed/internal/domain"
)

type ProductRepo struct{ coll *mongo.Collection }

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection("products")}
}

func (r *ProductRepo) UpsertMany(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		update, err := upsertUpdate(p)
		if err != nil {
			return err
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"product_id": p.ProductID}).
			SetUpdate(update).
			SetUpsert(true))
	}
	_, err := r.coll.BulkWrite(ctx, models)
	return err
}

func (r *ProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type InventoryRepo struct{ coll *mongo.Collection }

func NewInventoryRepo(db *mongo.Database) *InventoryRepo {
	return &InventoryRepo{coll: db.Collection("inventory")}
}

func (r *InventoryRepo) Upsert(ctx context.Context, rec domain.InventoryRecord) error {
	filter := bson.M{"product_id": rec.ProductID, "location_id": rec.LocationID}
	_, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": rec}, options.Update().SetUpsert(true))
	return err
}
