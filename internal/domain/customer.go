package domain

import (
	"context"
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type LoyaltyLevel string

const (
	LoyaltyBronze   LoyaltyLevel = "bronze"
	LoyaltySilver   LoyaltyLevel = "silver"
	LoyaltyGold     LoyaltyLevel = "gold"
	LoyaltyPlatinum LoyaltyLevel = "platinum"
)

var LoyaltyLevels = []LoyaltyLevel{LoyaltyBronze, LoyaltySilver, LoyaltyGold, LoyaltyPlatinum}

// Address is embedded in customers and copied by value onto orders, so an
// order snapshot never points back at mutable customer state.
type Address struct {
	AddressID  string `bson:"address_id"`
	Type       string `bson:"type"`
	Line1      string `bson:"line1"`
	City       string `bson:"city"`
	State      string `bson:"state"`
	PostalCode string `bson:"postal_code"`
	Country    string `bson:"country"`
	IsDefault  bool   `bson:"is_default"`
}

type Customer struct {
	CustomerID     string       `bson:"customer_id"`
	FirstName      string       `bson:"first_name"`
	LastName       string       `bson:"last_name"`
	Email          string       `bson:"email"`
	Phone          string       `bson:"phone"`
	Addresses      []Address    `bson:"addresses"`
	Status         string       `bson:"status"`
	LoyaltyLevel   LoyaltyLevel `bson:"loyalty_level"`
	MarketingOptIn bool         `bson:"marketing_opt_in"`
	CreatedAt      time.Time    `bson:"created_at"`
	UpdatedAt      time.Time    `bson:"updated_at"`
}

type CustomerRepo interface {
	// UpsertMany writes each customer keyed by customer_id, keeping the
	// stored created_at on documents that already exist.
	UpsertMany(ctx context.Context, customers []Customer) error
	// InsertMany appends unconditionally; callers own the duplicate policy.
	InsertMany(ctx context.Context, customers []Customer) error
	Count(ctx context.Context) (int64, error)
	FindByStatus(ctx context.Context, status string) ([]Customer, error)
	DeleteByLastName(ctx context.Context, lastName string) (int64, error)
}
