package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salesseed/internal/domain"
)

type OrderRepo struct{ coll *mongo.Collection }

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection("orders")}
}

func (r *OrderRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *OrderRepo) InsertMany(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(orders))
	for _, o := range orders {
		docs = append(docs, o)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *OrderRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "order_date", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "line_items.product_id", Value: 1}, {Key: "order_date", Value: -1}},
		},
	})
	return err
}
