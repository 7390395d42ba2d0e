package usecase

import (
	"context"

	"salesseed/internal/domain"
)

// In-memory repo implementations mirroring the document-store semantics the
// mongodb adapters provide.

type memCustomerRepo struct {
	docs []domain.Customer
}

func (r *memCustomerRepo) indexOf(id string) int {
	for i, c := range r.docs {
		if c.CustomerID == id {
			return i
		}
	}
	return -1
}

func (r *memCustomerRepo) UpsertMany(_ context.Context, customers []domain.Customer) error {
	for _, c := range customers {
		if i := r.indexOf(c.CustomerID); i >= 0 {
			c.CreatedAt = r.docs[i].CreatedAt // upsert keeps the original created_at
			r.docs[i] = c
		} else {
			r.docs = append(r.docs, c)
		}
	}
	return nil
}

func (r *memCustomerRepo) InsertMany(_ context.Context, customers []domain.Customer) error {
	r.docs = append(r.docs, customers...)
	return nil
}

func (r *memCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.docs)), nil
}

func (r *memCustomerRepo) FindByStatus(_ context.Context, status string) ([]domain.Customer, error) {
	var out []domain.Customer
	for _, c := range r.docs {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCustomerRepo) DeleteByLastName(_ context.Context, lastName string) (int64, error) {
	var kept []domain.Customer
	var deleted int64
	for _, c := range r.docs {
		if c.LastName == lastName {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	r.docs = kept
	return deleted, nil
}

type memVendorRepo struct {
	docs []domain.Vendor
}

func (r *memVendorRepo) UpsertMany(_ context.Context, vendors []domain.Vendor) error {
	for _, v := range vendors {
		replaced := false
		for i, existing := range r.docs {
			if existing.VendorID == v.VendorID {
				v.CreatedAt = existing.CreatedAt
				r.docs[i] = v
				replaced = true
				break
			}
		}
		if !replaced {
			r.docs = append(r.docs, v)
		}
	}
	return nil
}

func (r *memVendorRepo) FindByStatus(_ context.Context, status string) ([]domain.Vendor, error) {
	var out []domain.Vendor
	for _, v := range r.docs {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out, nil
}

type memProductRepo struct {
	docs []domain.Product
}

func (r *memProductRepo) UpsertMany(_ context.Context, products []domain.Product) error {
	for _, p := range products {
		replaced := false
		for i, existing := range r.docs {
			if existing.ProductID == p.ProductID {
				p.CreatedAt = existing.CreatedAt
				r.docs[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			r.docs = append(r.docs, p)
		}
	}
	return nil
}

func (r *memProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.docs...), nil
}

type inventoryKey struct{ productID, locationID string }

type memInventoryRepo struct {
	docs map[inventoryKey]domain.InventoryRecord
}

func (r *memInventoryRepo) Upsert(_ context.Context, rec domain.InventoryRecord) error {
	if r.docs == nil {
		r.docs = make(map[inventoryKey]domain.InventoryRecord)
	}
	r.docs[inventoryKey{rec.ProductID, rec.LocationID}] = rec
	return nil
}

type memOrderRepo struct {
	orders      []domain.Order
	deleteCalls int
	indexed     bool
}

func (r *memOrderRepo) DeleteAll(_ context.Context) (int64, error) {
	r.deleteCalls++
	n := int64(len(r.orders))
	r.orders = nil
	return n, nil
}

func (r *memOrderRepo) InsertMany(_ context.Context, orders []domain.Order) error {
	r.orders = append(r.orders, orders...)
	return nil
}

func (r *memOrderRepo) EnsureIndexes(_ context.Context) error {
	r.indexed = true
	return nil
}
