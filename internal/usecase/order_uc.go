package usecase

import (
	"context"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"

	"salesseed/internal/domain"
	"salesseed/internal/randgen"
)

const (
	// Bounded retry for distinct product picks within one order. After
	// maxProductPicks failed draws the duplicate is accepted; line items
	// are distinct with high probability, not guaranteed.
	maxProductPicks = 5

	maxLineItems = 5
	maxQuantity  = 5
)

// OrderUC regenerates the historical order set: the collection is cleared
// and repopulated for a trailing window of DaysBack days ending at now.
type OrderUC struct {
	Customers domain.CustomerRepo
	Vendors   domain.VendorRepo
	Products  domain.ProductRepo
	Orders    domain.OrderRepo
	Rand      randgen.Rand

	DaysBack        int
	WeekdayBase     int
	WeekendBase     int
	MinOrdersPerDay int
}

// Run generates orders for the window ending at now. Preconditions are
// checked before any write: active customers, active vendors and a
// non-empty product catalog must already be committed.
func (uc *OrderUC) Run(ctx context.Context, now time.Time) (int, error) {
	customers, err := uc.Customers.FindByStatus(ctx, domain.StatusActive)
	if err != nil {
		return 0, fmt.Errorf("load active customers: %w", err)
	}
	vendors, err := uc.Vendors.FindByStatus(ctx, domain.StatusActive)
	if err != nil {
		return 0, fmt.Errorf("load active vendors: %w", err)
	}
	products, err := uc.Products.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load products: %w", err)
	}
	if len(customers) == 0 || len(vendors) == 0 || len(products) == 0 {
		return 0, fmt.Errorf("%w: need customers, vendors and products before generating orders",
			domain.ErrMissingPrerequisite)
	}

	deleted, err := uc.Orders.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear orders: %w", err)
	}
	zlog.Info().Int64("deleted", deleted).Msg("existing orders cleared")

	start := now.AddDate(0, 0, -uc.DaysBack)
	seq := 1
	total := 0
	for d := 0; d < uc.DaysBack; d++ {
		day := start.AddDate(0, 0, d)
		count := uc.dayOrderCount(day)

		orders := make([]domain.Order, 0, count)
		for i := 0; i < count; i++ {
			orders = append(orders, uc.buildOrder(customers, vendors, products, day, seq))
			seq++
		}
		if err := uc.Orders.InsertMany(ctx, orders); err != nil {
			return total, fmt.Errorf("insert orders for %s: %w", day.Format("2006-01-02"), err)
		}
		total += len(orders)
		zlog.Debug().Str("day", day.Format("2006-01-02")).Int("orders", len(orders)).Msg("day generated")
	}

	if err := uc.Orders.EnsureIndexes(ctx); err != nil {
		return total, fmt.Errorf("ensure order indexes: %w", err)
	}
	zlog.Info().Int("orders", total).Int("days", uc.DaysBack).Msg("order generation complete")
	return total, nil
}

// dayOrderCount perturbs the weekday or weekend baseline by a uniform
// offset in [-10, +25], floored at the per-day minimum.
func (uc *OrderUC) dayOrderCount(day time.Time) int {
	base := uc.WeekdayBase
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		base = uc.WeekendBase
	}
	base += uc.Rand.IntBetween(-10, 25)
	if base < uc.MinOrdersPerDay {
		base = uc.MinOrdersPerDay
	}
	return base
}

func (uc *OrderUC) buildOrder(customers []domain.Customer, vendors []domain.Vendor, products []domain.Product, day time.Time, seq int) domain.Order {
	customer := randgen.Pick(uc.Rand, customers)
	vendor := randgen.Pick(uc.Rand, vendors)
	orderDate := uc.Rand.TimeInDay(day)

	items, orderTotal := uc.buildLineItems(products)

	// First address copied by value as an immutable snapshot.
	var addr domain.Address
	if len(customer.Addresses) > 0 {
		addr = customer.Addresses[0]
	}

	return domain.Order{
		OrderID:         fmt.Sprintf("SO-%08d", seq),
		CustomerID:      customer.CustomerID,
		VendorID:        vendor.VendorID,
		OrderDate:       orderDate,
		Status:          uc.rollStatus(),
		LineItems:       items,
		OrderTotal:      orderTotal,
		Currency:        "USD",
		PaymentMethod:   randgen.Pick(uc.Rand, domain.PaymentMethods),
		SalesChannel:    randgen.Pick(uc.Rand, domain.SalesChannels),
		ShippingAddress: addr,
		BillingAddress:  addr,
		CreatedAt:       orderDate,
		UpdatedAt:       orderDate,
	}
}

func (uc *OrderUC) buildLineItems(products []domain.Product) ([]domain.LineItem, float64) {
	n := uc.Rand.IntBetween(1, maxLineItems)
	used := make(map[string]bool, n)
	items := make([]domain.LineItem, 0, n)
	var total float64

	for i := 0; i < n; i++ {
		var product domain.Product
		for attempt := 0; attempt < maxProductPicks; attempt++ {
			product = randgen.Pick(uc.Rand, products)
			if !used[product.ProductID] {
				break
			}
		}
		used[product.ProductID] = true

		qty := uc.Rand.IntBetween(1, maxQuantity)
		factor := domain.Round4(uc.Rand.FloatBetween(-0.05, 0.05))
		unitPrice := domain.Round2(product.UnitPrice * (1 + factor))
		extended := domain.Round2(float64(qty) * unitPrice)
		total += extended

		items = append(items, domain.LineItem{
			ProductID:     product.ProductID,
			Quantity:      qty,
			UnitPrice:     unitPrice,
			ExtendedPrice: extended,
		})
	}
	return items, domain.Round2(total)
}

// rollStatus maps a percentile roll to a status: ~10% cancelled, ~20%
// shipped, ~30% paid, ~40% new.
func (uc *OrderUC) rollStatus() domain.OrderStatus {
	switch roll := uc.Rand.Percentile(); {
	case roll > 90:
		return domain.OrderStatusCancelled
	case roll > 70:
		return domain.OrderStatusShipped
	case roll > 40:
		return domain.OrderStatusPaid
	default:
		return domain.OrderStatusNew
	}
}
