package usecase

import (
	"context"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"

	"salesseed/internal/domain"
	"salesseed/internal/randgen"
)

// ReferenceUC ensures the baseline catalog exists: customers, vendors,
// products and one inventory record per product. Every write is an upsert by
// natural key, so rerunning never duplicates and never resets created_at.
type ReferenceUC struct {
	Customers domain.CustomerRepo
	Vendors   domain.VendorRepo
	Products  domain.ProductRepo
	Inventory domain.InventoryRepo
	Rand      randgen.Rand

	// CatalogPath optionally points at an xlsx workbook whose Products
	// sheet replaces the built-in product fixtures.
	CatalogPath string
}

func (uc *ReferenceUC) Run(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	customers := baseCustomers()
	for i := range customers {
		customers[i].CreatedAt = now
		customers[i].UpdatedAt = now
	}
	if err := uc.Customers.UpsertMany(ctx, customers); err != nil {
		return 0, fmt.Errorf("upsert baseline customers: %w", err)
	}
	zlog.Info().Int("count", len(customers)).Msg("baseline customers upserted")

	vendors := baseVendors()
	for i := range vendors {
		vendors[i].CreatedAt = now
		vendors[i].UpdatedAt = now
	}
	if err := uc.Vendors.UpsertMany(ctx, vendors); err != nil {
		return 0, fmt.Errorf("upsert vendors: %w", err)
	}
	zlog.Info().Int("count", len(vendors)).Msg("vendors upserted")

	products := baseProducts()
	if uc.CatalogPath != "" {
		var err error
		products, err = LoadCatalogXLSX(uc.CatalogPath)
		if err != nil {
			return 0, fmt.Errorf("load catalog %s: %w", uc.CatalogPath, err)
		}
		zlog.Info().Str("path", uc.CatalogPath).Int("products", len(products)).Msg("catalog override loaded")
	}
	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
	}
	if err := uc.Products.UpsertMany(ctx, products); err != nil {
		return 0, fmt.Errorf("upsert products: %w", err)
	}

	for _, p := range products {
		rec := domain.InventoryRecord{
			ProductID:   p.ProductID,
			LocationID:  WarehouseLocation,
			OnHand:      uc.Rand.IntBetween(100, 500),
			OnOrder:     uc.Rand.IntBetween(0, 100),
			SafetyStock: 50,
			UpdatedAt:   now,
		}
		if err := uc.Inventory.Upsert(ctx, rec); err != nil {
			return 0, fmt.Errorf("upsert inventory for %s: %w", p.ProductID, err)
		}
	}
	zlog.Info().Int("count", len(products)).Msg("products and inventory upserted")

	return len(customers) + len(vendors) + len(products), nil
}
