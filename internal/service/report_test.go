package service

import (
	"context"
	"testing"

	"agrovet-rest-api/internal/cache"
	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/storage"
	"agrovet-rest-api/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newReportFixture builds a store with two products, two customers and
// three sales across two days.
func newReportFixture(t *testing.T) (*ReportService, *store.Store) {
	t.Helper()
	ctx := context.Background()
	st := store.New(storage.NewMemoryStorage())

	feed, err := st.AddInventoryItem(ctx, model.InventoryItem{Name: "Cattle Feed", Category: "Feed", Price: 40, Quantity: 100, ReorderLevel: 20})
	require.NoError(t, err)
	spray, err := st.AddInventoryItem(ctx, model.InventoryItem{Name: "Tick Spray", Category: "Parasiticides", Price: 30, Quantity: 5, ReorderLevel: 10})
	require.NoError(t, err)

	john, err := st.AddCustomer(ctx, model.Customer{Name: "John Farmer", Phone: "111"})
	require.NoError(t, err)
	sarah, err := st.AddCustomer(ctx, model.Customer{Name: "Sarah Fields", Phone: "222"})
	require.NoError(t, err)

	_, err = st.RecordSale(ctx, model.NewSale{CustomerID: john.ID, Date: "2025-05-10",
		Items: []model.SaleItem{{ProductID: feed.ID, Quantity: 2, Price: 40}}})
	require.NoError(t, err)
	_, err = st.RecordSale(ctx, model.NewSale{CustomerID: sarah.ID, Date: "2025-05-10",
		Items: []model.SaleItem{{ProductID: spray.ID, Quantity: 1, Price: 30}}})
	require.NoError(t, err)
	_, err = st.RecordSale(ctx, model.NewSale{CustomerID: john.ID, Date: "2025-05-11",
		Items: []model.SaleItem{{ProductID: feed.ID, Quantity: 1, Price: 40}}})
	require.NoError(t, err)

	return NewReportService(st, nil), st
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	reports, _ := newReportFixture(t)

	summary, err := reports.DashboardSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Equal(t, 3, summary.TotalSales)
	assert.Equal(t, 150.0, summary.TotalRevenue)
	// Spray sits below its reorder level after the fixture sale.
	assert.Equal(t, 1, summary.LowStockCount)
	// 97 x $40 + 4 x $30
	assert.Equal(t, 4000.0, summary.InventoryValue)
}

func TestSalesInRangeReport(t *testing.T) {
	ctx := context.Background()
	reports, _ := newReportFixture(t)

	report, err := reports.SalesInRange(ctx, "2025-05-10", "2025-05-10")
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalSales)
	assert.Equal(t, 110.0, report.Revenue)
	assert.Equal(t, 55.0, report.AverageSale)
	assert.Equal(t, 2, report.UniqueCustomers)

	require.Len(t, report.Daily, 1)
	assert.Equal(t, "2025-05-10", report.Daily[0].Date)
	assert.Equal(t, 2, report.Daily[0].Count)

	require.Len(t, report.TopProducts, 2)
	// Ranked by revenue within the range.
	assert.Equal(t, "Cattle Feed", report.TopProducts[0].Name)
	assert.Equal(t, 80.0, report.TopProducts[0].TotalValue)
}

func TestStockHealthReport(t *testing.T) {
	ctx := context.Background()
	st := store.New(storage.NewMemoryStorage())
	reports := NewReportService(st, nil)

	add := func(quantity, reorder int) {
		_, err := st.AddInventoryItem(ctx, model.InventoryItem{Name: "x", Category: "Feed", Price: 1, Quantity: quantity, ReorderLevel: reorder})
		require.NoError(t, err)
	}
	add(0, 10)  // out of stock
	add(5, 10)  // low
	add(15, 10) // healthy (within 2x reorder)
	add(50, 10) // overstock

	health, err := reports.StockHealthReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, health.TotalItems)
	assert.Equal(t, 1, health.OutOfStock)
	assert.Equal(t, 1, health.LowStock)
	assert.Equal(t, 1, health.Healthy)
	assert.Equal(t, 1, health.Overstock)
}

func TestTextReports(t *testing.T) {
	ctx := context.Background()
	reports, _ := newReportFixture(t)

	inventory, err := reports.InventoryReportText(ctx)
	require.NoError(t, err)
	assert.Contains(t, inventory, "INVENTORY REPORT")
	assert.Contains(t, inventory, "Cattle Feed")
	assert.Contains(t, inventory, "** LOW STOCK - REORDER **")

	sales, err := reports.SalesReportText(ctx, "2025-05-10", "2025-05-11")
	require.NoError(t, err)
	assert.Contains(t, sales, "SALES REPORT")
	assert.Contains(t, sales, "John Farmer")
	assert.Contains(t, sales, "Total sales:      3")

	customers, err := reports.CustomerReportText(ctx)
	require.NoError(t, err)
	assert.Contains(t, customers, "CUSTOMER REPORT")
	assert.Contains(t, customers, "Sarah Fields")

	performance, err := reports.PerformanceReportText(ctx)
	require.NoError(t, err)
	assert.Contains(t, performance, "PERFORMANCE METRICS")
	assert.Contains(t, performance, "Top selling products")
}

func TestSummaryUsesCache(t *testing.T) {
	ctx := context.Background()
	_, st := newReportFixture(t)

	c := cache.NewMemoryCache()
	t.Cleanup(func() { c.Close() })
	reports := NewReportService(st, c)

	first, err := reports.DashboardSummary(ctx)
	require.NoError(t, err)

	// A mutation inside the cache TTL is not reflected yet.
	_, err = st.AddCustomer(ctx, model.Customer{Name: "New Customer", Phone: "333"})
	require.NoError(t, err)

	second, err := reports.DashboardSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.TotalCustomers, second.TotalCustomers)
}
