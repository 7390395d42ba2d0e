package domain

import (
	"context"
	"time"
)

type Vendor struct {
	VendorID     string    `bson:"vendor_id"`
	Name         string    `bson:"name"`
	ContactEmail string    `bson:"contact_email"`
	Status       string    `bson:"status"`
	Terms        string    `bson:"terms"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type VendorRepo interface {
	UpsertMany(ctx context.Context, vendors []Vendor) error
	FindByStatus(ctx context.Context, status string) ([]Vendor, error)
}
