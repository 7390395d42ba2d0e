package usecase

import "salesseed/internal/domain"

// WarehouseLocation is the single stock location baseline inventory is
// written against.
const WarehouseLocation = "WH-CHI-01"

func baseCustomers() []domain.Customer {
	return []domain.Customer{
		{
			CustomerID: "C100001",
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane.doe@example.com",
			Phone:      "+1-312-555-0101",
			Addresses: []domain.Address{{
				AddressID: "ADDR-1", Type: "shipping", Line1: "123 Main St",
				City: "Chicago", State: "IL", PostalCode: "60601", Country: "US", IsDefault: true,
			}},
			Status:         domain.StatusActive,
			LoyaltyLevel:   domain.LoyaltyGold,
			MarketingOptIn: true,
		},
		{
			CustomerID: "C100002",
			FirstName:  "John",
			LastName:   "Smith",
			Email:      "john.smith@example.com",
			Phone:      "+1-415-555-0199",
			Addresses: []domain.Address{{
				AddressID: "ADDR-2", Type: "shipping", Line1: "500 W Madison",
				City: "Chicago", State: "IL", PostalCode: "60661", Country: "US", IsDefault: true,
			}},
			Status:       domain.StatusActive,
			LoyaltyLevel: domain.LoyaltySilver,
		},
		{
			CustomerID: "C100003",
			FirstName:  "Alice",
			LastName:   "Nguyen",
			Email:      "alice.nguyen@example.com",
			Phone:      "+1-617-555-0123",
			Addresses: []domain.Address{{
				AddressID: "ADDR-3", Type: "shipping", Line1: "1 Market St",
				City: "San Francisco", State: "CA", PostalCode: "94105", Country: "US", IsDefault: true,
			}},
			Status:         domain.StatusActive,
			LoyaltyLevel:   domain.LoyaltyPlatinum,
			MarketingOptIn: true,
		},
		{
			CustomerID: "C100004",
			FirstName:  "Robert",
			LastName:   "Garcia",
			Email:      "robert.garcia@example.com",
			Phone:      "+1-773-555-0456",
			Addresses: []domain.Address{{
				AddressID: "ADDR-4", Type: "shipping", Line1: "750 N Rush St",
				City: "Chicago", State: "IL", PostalCode: "60611", Country: "US", IsDefault: true,
			}},
			Status:         domain.StatusActive,
			LoyaltyLevel:   domain.LoyaltyBronze,
			MarketingOptIn: true,
		},
		{
			CustomerID: "C100005",
			FirstName:  "Emily",
			LastName:   "Chen",
			Email:      "emily.chen@example.com",
			Phone:      "+1-213-555-0789",
			Addresses: []domain.Address{{
				AddressID: "ADDR-5", Type: "shipping", Line1: "200 Spring St",
				City: "Los Angeles", State: "CA", PostalCode: "90013", Country: "US", IsDefault: true,
			}},
			Status:       domain.StatusActive,
			LoyaltyLevel: domain.LoyaltyBronze,
		},
	}
}

func baseVendors() []domain.Vendor {
	return []domain.Vendor{
		{VendorID: "V1001", Name: "Acme Supplies", ContactEmail: "sales@acmesupplies.com", Status: domain.StatusActive, Terms: "NET_30"},
		{VendorID: "V1002", Name: "Global Tech Distributors", ContactEmail: "accounts@globaltech.example", Status: domain.StatusActive, Terms: "NET_45"},
		{VendorID: "V1003", Name: "Midwest Retail Partners", ContactEmail: "info@midwestretail.example", Status: domain.StatusActive, Terms: "NET_30"},
	}
}

func baseProducts() []domain.Product {
	return []domain.Product{
		{ProductID: "P1001", Name: "Wireless Mouse", Category: "Electronics", UnitPrice: 24.99, VendorID: "V1001"},
		{ProductID: "P1002", Name: "Mechanical Keyboard", Category: "Electronics", UnitPrice: 89.99, VendorID: "V1001"},
		{ProductID: "P1003", Name: "USB-C Docking Station", Category: "Accessories", UnitPrice: 149.99, VendorID: "V1002"},
		{ProductID: "P1004", Name: "27\" 4K Monitor", Category: "Displays", UnitPrice: 329.99, VendorID: "V1002"},
		{ProductID: "P1005", Name: "Noise-Cancelling Headphones", Category: "Audio", UnitPrice: 199.99, VendorID: "V1003"},
	}
}
