package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salesseed/internal/domain"
)

type CustomerRepo struct{ coll *mongo.Collection }

func NewCustomerRepo(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{coll: db.Collection("customers")}
}

func (r *CustomerRepo) UpsertMany(ctx context.Context, customers []domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(customers))
	for _, c := range customers {
		update, err := upsertUpdate(c)
		if err != nil {
			return err
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"customer_id": c.CustomerID}).
			SetUpdate(update).
			SetUpsert(true))
	}
	_, err := r.coll.BulkWrite(ctx, models)
	return err
}

func (r *CustomerRepo) InsertMany(ctx context.Context, customers []domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(customers))
	for _, c := range customers {
		docs = append(docs, c)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *CustomerRepo) FindByStatus(ctx context.Context, status string) ([]domain.Customer, error) {
	cur, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	var out []domain.Customer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerRepo) DeleteByLastName(ctx context.Context, lastName string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"last_name": lastName})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
