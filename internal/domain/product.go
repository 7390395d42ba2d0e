package domain

import (
	"context"
	"time"
)

type Product struct {
	ProductID string    `bson:"product_id"`
	Name      string    `bson:"name"`
	Category  string    `bson:"category"`
	UnitPrice float64   `bson:"unit_price"`
	VendorID  string    `bson:"vendor_id"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// InventoryRecord is keyed by (product_id, location_id); upserts keep the
// pair unique.
type InventoryRecord struct {
	ProductID   string    `bson:"product_id"`
	LocationID  string    `bson:"location_id"`
	OnHand      int       `bson:"on_hand"`
	OnOrder     int       `bson:"on_order"`
	SafetyStock int       `bson:"safety_stock"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type ProductRepo interface {
	UpsertMany(ctx context.Context, products []Product) error
	FindAll(ctx context.Context) ([]Product, error)
}

type InventoryRepo interface {
	Upsert(ctx context.Context, rec InventoryRecord) error
}
