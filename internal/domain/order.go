package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var (
	PaymentMethods = []string{"visa", "mastercard", "amex", "paypal"}
	SalesChannels  = []string{"web", "mobile", "phone", "store"}
)

type LineItem struct {
	ProductID     string  `bson:"product_id"`
	Quantity      int     `bson:"quantity"`
	UnitPrice     float64 `bson:"unit_price"`
	ExtendedPrice float64 `bson:"extended_price"`
}

type Order struct {
	OrderID         string      `bson:"order_id"`
	CustomerID      string      `bson:"customer_id"`
	VendorID        string      `bson:"vendor_id"`
	OrderDate       time.Time   `bson:"order_date"`
	Status          OrderStatus `bson:"status"`
	LineItems       []LineItem  `bson:"line_items"`
	OrderTotal      float64     `bson:"order_total"`
	Currency        string      `bson:"currency"`
	PaymentMethod   string      `bson:"payment_method"`
	SalesChannel    string      `bson:"sales_channel"`
	ShippingAddress Address     `bson:"shipping_address"`
	BillingAddress  Address     `bson:"billing_address"`
	CreatedAt       time.Time   `bson:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at"`
}

type OrderRepo interface {
	// DeleteAll clears the collection; orders are regenerated from scratch
	// on every run.
	DeleteAll(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, orders []Order) error
	// EnsureIndexes declares the lookup indexes the order collection needs:
	// unique order_id, (customer_id, order_date desc) and
	// (line_items.product_id, order_date desc).
	EnsureIndexes(ctx context.Context) error
}
