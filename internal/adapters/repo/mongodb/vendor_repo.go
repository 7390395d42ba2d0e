package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salesseed/internal/domain"
)

type VendorRepo struct{ coll *mongo.Collection }

func NewVendorRepo(db *mongo.Database) *VendorRepo {
	return &VendorRepo{coll: db.Collection("vendors")}
}

func (r *VendorRepo) UpsertMany(ctx context.Context, vendors []domain.Vendor) error {
	if len(vendors) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(vendors))
	for _, v := range vendors {
		update, err := upsertUpdate(v)
		if err != nil {
			return err
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"vendor_id": v.VendorID}).
			SetUpdate(update).
			SetUpsert(true))
	}
	_, err := r.coll.BulkWrite(ctx, models)
	return err
}

func (r *VendorRepo) FindByStatus(ctx context.Context, status string) ([]domain.Vendor, error) {
	cur, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	var out []domain.Vendor
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
