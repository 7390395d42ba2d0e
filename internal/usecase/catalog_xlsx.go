package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"salesseed/internal/domain"
)

const catalogSheet = "Products"

// LoadCatalogXLSX reads a product catalog from an xlsx workbook. The
// Products sheet carries one header row followed by
// product_id | name | category | unit_price | vendor_id rows.
func LoadCatalogXLSX(path string) ([]domain.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(catalogSheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", catalogSheet, err)
	}

	var out []domain.Product
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 5 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad unit_price %q: %w", i+1, row[3], err)
		}
		if price <= 0 {
			return nil, fmt.Errorf("row %d: unit_price must be positive, got %v", i+1, price)
		}
		out = append(out, domain.Product{
			ProductID: strings.TrimSpace(row[0]),
			Name:      strings.TrimSpace(row[1]),
			Category:  strings.TrimSpace(row[2]),
			UnitPrice: domain.Round2(price),
			VendorID:  strings.TrimSpace(row[4]),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("sheet %q has no product rows", catalogSheet)
	}
	return out, nil
}
