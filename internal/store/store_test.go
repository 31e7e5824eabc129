package store

import (
	"context"
	"testing"
	"time"

	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToday = "2025-06-01"

func newTestStore() *Store {
	s := New(storage.NewMemoryStorage())
	s.now = func() time.Time {
		t, _ := time.Parse(model.DateLayout, testToday)
		return t
	}
	return s
}

func TestAddInventoryItemAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	first, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "Cattle Feed", Category: "Feed", Price: 45.99, Quantity: 20, ReorderLevel: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, testToday, first.LastUpdated)

	second, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "Dewormer", Category: "Medicine", Price: 18.25, Quantity: 10, ReorderLevel: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// Deleting the highest id still moves the sequence forward from max.
	require.NoError(t, s.DeleteInventoryItem(ctx, 1))
	third, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "Vaccine", Category: "Medicine", Price: 75.50, Quantity: 8, ReorderLevel: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestAddThenGetByIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	input := model.InventoryItem{
		Name:         "Tick Spray",
		Category:     "Parasiticides",
		SKU:          "TS001",
		Price:        29.99,
		Quantity:     120,
		ReorderLevel: 40,
		Supplier:     "AgriChem Co",
		Description:  "Tick control for cattle and goats",
	}
	created, err := s.AddInventoryItem(ctx, input)
	require.NoError(t, err)

	got, err := s.InventoryItem(ctx, created.ID)
	require.NoError(t, err)

	want := input
	want.ID = created.ID
	want.LastUpdated = testToday
	assert.Equal(t, &want, got)
}

func TestGetByIDMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.InventoryItem(ctx, 42)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = s.Customer(ctx, 42)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = s.Sale(ctx, 42)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateInventoryItemMergesPatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	created, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "NPK Fertilizer", Category: "Crop Care", Price: 30.25, Quantity: 200, ReorderLevel: 40, Supplier: "AgriChem Co"})
	require.NoError(t, err)

	price := 32.50
	quantity := 180
	updated, err := s.UpdateInventoryItem(ctx, created.ID, model.InventoryPatch{Price: &price, Quantity: &quantity})
	require.NoError(t, err)

	assert.Equal(t, 32.50, updated.Price)
	assert.Equal(t, 180, updated.Quantity)
	// Unpatched fields are retained.
	assert.Equal(t, "NPK Fertilizer", updated.Name)
	assert.Equal(t, "AgriChem Co", updated.Supplier)
	assert.Equal(t, testToday, updated.LastUpdated)
}

func TestUpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "Maize Seeds", Category: "Seeds", Price: 5.75, Quantity: 300, ReorderLevel: 50})
	require.NoError(t, err)

	before, err := s.Inventory(ctx)
	require.NoError(t, err)

	name := "Renamed"
	_, err = s.UpdateInventoryItem(ctx, 99, model.InventoryPatch{Name: &name})
	assert.ErrorIs(t, err, model.ErrNotFound)

	after, err := s.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteInventoryItem(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	a, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "A", Category: "Feed", Price: 1, Quantity: 1})
	require.NoError(t, err)
	b, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "B", Category: "Feed", Price: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeleteInventoryItem(ctx, a.ID))

	items, err := s.Inventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	assert.ErrorIs(t, s.DeleteInventoryItem(ctx, a.ID), model.ErrNotFound)
}

func TestMalformedStoredDataDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	backing := storage.NewMemoryStorage()
	s := New(backing)

	require.NoError(t, backing.Set(ctx, inventoryKey, []byte("{definitely not json")))

	items, err := s.Inventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.AddCustomer(ctx, model.Customer{Name: "John Farmer", Phone: "123-456-7890", Email: "john@farm.com"})
	require.NoError(t, err)
	_, err = s.AddCustomer(ctx, model.Customer{Name: "Sarah Fields", Phone: "234-567-8901"})
	require.NoError(t, err)

	first, err := s.Customers(ctx)
	require.NoError(t, err)

	// A fresh store over the same backing storage sees identical data.
	reloaded, err := New(s.storage).Customers(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, reloaded)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	require.NoError(t, s.Seed(ctx))

	items, err := s.Inventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 8)

	// Mutate, re-seed, and verify nothing was overwritten.
	require.NoError(t, s.DeleteInventoryItem(ctx, 1))
	require.NoError(t, s.Seed(ctx))

	items, err = s.Inventory(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 7)
}

func TestRecordSale(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	product, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "Poultry Feed", Category: "Feed", Price: 38.50, Quantity: 20, ReorderLevel: 5})
	require.NoError(t, err)
	customer, err := s.AddCustomer(ctx, model.Customer{Name: "Michael Ranch", Phone: "456-789-0123", TotalSpent: 100})
	require.NoError(t, err)

	sale, err := s.RecordSale(ctx, model.NewSale{
		CustomerID:    customer.ID,
		Items:         []model.SaleItem{{ProductID: product.ID, Quantity: 5, Price: 38.50}},
		PaymentMethod: "Cash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), sale.ID)
	assert.Equal(t, testToday, sale.Date)
	assert.Equal(t, 192.50, sale.Total)
	assert.Equal(t, DefaultSaleStatus, sale.Status)

	// Stock decremented, timestamp refreshed.
	updatedProduct, err := s.InventoryItem(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, updatedProduct.Quantity)
	assert.Equal(t, testToday, updatedProduct.LastUpdated)

	// Customer accumulator and last purchase updated.
	updatedCustomer, err := s.Customer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 292.50, updatedCustomer.TotalSpent)
	assert.Equal(t, testToday, updatedCustomer.LastPurchase)

	// Sale appended.
	sales, err := s.Sales(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestRecordSaleUnknownCustomer(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	product, err := s.AddInventoryItem(ctx, model.InventoryItem{Name: "Feed", Category: "Feed", Price: 10, Quantity: 10})
	require.NoError(t, err)

	_, err = s.RecordSale(ctx, model.NewSale{
		CustomerID: 99,
		Items:      []model.SaleItem{{ProductID: product.ID, Quantity: 1, Price: 10}},
	})
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Nothing was written.
	unchanged, err := s.InventoryItem(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, unchanged.Quantity)
	sales, err := s.Sales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRecordSaleSkipsUnknownProducts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	customer, err := s.AddCustomer(ctx, model.Customer{Name: "Green Acres Ltd", Phone: "345-678-9012"})
	require.NoError(t, err)

	sale, err := s.RecordSale(ctx, model.NewSale{
		CustomerID: customer.ID,
		Items:      []model.SaleItem{{ProductID: 77, Quantity: 2, Price: 45.00}},
	})
	require.NoError(t, err)

	// The line is kept and billed even though the product is gone.
	assert.Equal(t, 90.00, sale.Total)
}

func TestRecordSaleKeepsSuppliedDate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	customer, err := s.AddCustomer(ctx, model.Customer{Name: "Robert Grains", Phone: "756-789-0123"})
	require.NoError(t, err)

	sale, err := s.RecordSale(ctx, model.NewSale{
		CustomerID: customer.ID,
		Date:       "2025-05-20",
		Items:      []model.SaleItem{{ProductID: 1, Quantity: 1, Price: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-05-20", sale.Date)
}

func TestAdminAccounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	admin := model.Admin{Username: "manager", PasswordHash: "$2a$10$hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.AddAdmin(ctx, admin))

	got, err := s.AdminByUsername(ctx, "manager")
	require.NoError(t, err)
	assert.Equal(t, admin.Username, got.Username)

	assert.ErrorIs(t, s.AddAdmin(ctx, admin), model.ErrConflict)

	_, err = s.AdminByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
