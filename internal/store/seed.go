package store

import (
	"context"
	"fmt"
	"log"

	"agrovet-rest-api/internal/model"
)

// Seed writes the demonstration dataset, but only when no inventory
// collection has ever been persisted. It is idempotent and never
// overwrites existing data.
func (s *Store) Seed(ctx context.Context) error {
	raw, err := s.storage.Get(ctx, inventoryKey)
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if raw != nil {
		return nil
	}

	if err := save(ctx, s, inventoryKey, seedInventory()); err != nil {
		return err
	}
	if err := save(ctx, s, customersKey, seedCustomers()); err != nil {
		return err
	}
	if err := save(ctx, s, salesKey, seedSales()); err != nil {
		return err
	}

	log.Println("[Store] Seeded demonstration data")
	return nil
}

func seedInventory() []model.InventoryItem {
	return []model.InventoryItem{
		{ID: 1, Name: "Animal Feed - Dairy", Category: "Feed", SKU: "AF001", Quantity: 150, Price: 25.50, Supplier: "FarmSupplies Ltd", ReorderLevel: 30, LastUpdated: "2025-05-10"},
		{ID: 2, Name: "Antibiotics - Livestock", Category: "Medicine", SKU: "AL002", Quantity: 75, Price: 45.00, Supplier: "VetPharma Inc", ReorderLevel: 20, LastUpdated: "2025-05-08"},
		{ID: 3, Name: "Pesticide - General", Category: "Crop Care", SKU: "PG003", Quantity: 50, Price: 35.75, Supplier: "AgriChem Co", ReorderLevel: 15, LastUpdated: "2025-05-12"},
		{ID: 4, Name: "Milking Equipment", Category: "Equipment", SKU: "ME004", Quantity: 10, Price: 120.00, Supplier: "FarmTech Solutions", ReorderLevel: 5, LastUpdated: "2025-05-01"},
		{ID: 5, Name: "Fertilizer - NPK", Category: "Crop Care", SKU: "FN005", Quantity: 200, Price: 30.25, Supplier: "AgriChem Co", ReorderLevel: 40, LastUpdated: "2025-05-09"},
		{ID: 6, Name: "Vitamins - Poultry", Category: "Supplements", SKU: "VP006", Quantity: 85, Price: 18.50, Supplier: "VetPharma Inc", ReorderLevel: 25, LastUpdated: "2025-05-07"},
		{ID: 7, Name: "Seeds - Maize", Category: "Seeds", SKU: "SM007", Quantity: 300, Price: 5.75, Supplier: "SeedTech", ReorderLevel: 50, LastUpdated: "2025-05-05"},
		{ID: 8, Name: "Dewormers - Cattle", Category: "Medicine", SKU: "DC008", Quantity: 60, Price: 42.00, Supplier: "VetPharma Inc", ReorderLevel: 20, LastUpdated: "2025-05-11"},
	}
}

func seedCustomers() []model.Customer {
	return []model.Customer{
		{ID: 1, Name: "John Farmer", Phone: "123-456-7890", Email: "john@farm.com", Address: "Rural Route 5", LastPurchase: "2025-05-09", TotalSpent: 1250.75},
		{ID: 2, Name: "Sarah Fields", Phone: "234-567-8901", Email: "sarah@fields.com", Address: "County Road 8", LastPurchase: "2025-05-10", TotalSpent: 875.50},
		{ID: 3, Name: "Green Acres Ltd", Phone: "345-678-9012", Email: "info@greenacres.com", Address: "Farm Valley, Plot 23", LastPurchase: "2025-05-01", TotalSpent: 5430.25},
		{ID: 4, Name: "Michael Ranch", Phone: "456-789-0123", Email: "mike@ranch.com", Address: "Livestock Lane 12", LastPurchase: "2025-05-08", TotalSpent: 2340.00},
	}
}

func seedSales() []model.Sale {
	return []model.Sale{
		{ID: 1, Date: "2025-05-10", CustomerID: 1, Items: []model.SaleItem{{ProductID: 1, Quantity: 5, Price: 25.50}, {ProductID: 8, Quantity: 2, Price: 42.00}}, Total: 211.50, PaymentMethod: "Cash", Status: DefaultSaleStatus},
		{ID: 2, Date: "2025-05-10", CustomerID: 2, Items: []model.SaleItem{{ProductID: 3, Quantity: 1, Price: 35.75}, {ProductID: 5, Quantity: 3, Price: 30.25}}, Total: 126.50, PaymentMethod: "Credit", Status: DefaultSaleStatus},
		{ID: 3, Date: "2025-05-09", CustomerID: 3, Items: []model.SaleItem{{ProductID: 2, Quantity: 10, Price: 45.00}, {ProductID: 7, Quantity: 20, Price: 5.75}}, Total: 565.00, PaymentMethod: "Bank Transfer", Status: DefaultSaleStatus},
		{ID: 4, Date: "2025-05-08", CustomerID: 4, Items: []model.SaleItem{{ProductID: 1, Quantity: 8, Price: 25.50}, {ProductID: 4, Quantity: 1, Price: 120.00}}, Total: 324.00, PaymentMethod: "Cash", Status: DefaultSaleStatus},
	}
}
