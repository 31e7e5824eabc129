package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"agrovet-rest-api/internal/cache"
	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/store"
)

const (
	summaryCacheKey = "report:summary"
	summaryCacheTTL = 30 * time.Second
)

// ReportService computes the dashboard aggregates and renders the
// downloadable plain-text reports. All results derive from current
// collection state; nothing is stored.
type ReportService struct {
	store *store.Store
	cache cache.Cache // optional; nil disables summary caching
}

// NewReportService creates a report service. cache may be nil.
func NewReportService(st *store.Store, c cache.Cache) *ReportService {
	return &ReportService{store: st, cache: c}
}

// Summary is the dashboard headline block.
type Summary struct {
	TotalProducts  int     `json:"total_products"`
	InventoryValue float64 `json:"inventory_value"`
	LowStockCount  int     `json:"low_stock_count"`
	TotalCustomers int     `json:"total_customers"`
	TotalSales     int     `json:"total_sales"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// DashboardSummary returns the headline numbers, cached briefly when a
// cache is configured.
func (s *ReportService) DashboardSummary(ctx context.Context) (*Summary, error) {
	if s.cache == nil {
		return s.computeSummary(ctx)
	}

	payload, err := s.cache.GetOrSet(ctx, summaryCacheKey, summaryCacheTTL, func() ([]byte, error) {
		summary, err := s.computeSummary(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(summary)
	})
	if err != nil {
		return nil, err
	}

	var summary Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &summary, nil
}

func (s *ReportService) computeSummary(ctx context.Context) (*Summary, error) {
	inventory, err := s.store.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.store.Sales(ctx)
	if err != nil {
		return nil, err
	}
	value, err := s.store.InventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	low, err := s.store.LowStockItems(ctx)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, sale := range sales {
		revenue += sale.Total
	}

	return &Summary{
		TotalProducts:  len(inventory),
		InventoryValue: value,
		LowStockCount:  len(low),
		TotalCustomers: len(customers),
		TotalSales:     len(sales),
		TotalRevenue:   revenue,
	}, nil
}

// DailySales is one day's bucket in a sales report.
type DailySales struct {
	Date  string  `json:"date"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// SalesReport summarizes sales within a date range.
type SalesReport struct {
	StartDate       string               `json:"start_date,omitempty"`
	EndDate         string               `json:"end_date,omitempty"`
	TotalSales      int                  `json:"total_sales"`
	Revenue         float64              `json:"revenue"`
	AverageSale     float64              `json:"average_sale"`
	UniqueCustomers int                  `json:"unique_customers"`
	Daily           []DailySales         `json:"daily"`
	TopProducts     []model.ProductSales `json:"top_products"`
}

// SalesInRange computes the sales report for the inclusive date range;
// empty bounds are unbounded.
func (s *ReportService) SalesInRange(ctx context.Context, start, end string) (*SalesReport, error) {
	sales, err := s.store.SalesInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	inventory, err := s.store.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		StartDate:  start,
		EndDate:    end,
		TotalSales: len(sales),
		Daily:      []DailySales{},
	}

	customerIDs := make(map[int64]struct{})
	days := make(map[string]*DailySales)
	totals := make(map[int64]*model.ProductSales)

	for _, sale := range sales {
		report.Revenue += sale.Total
		customerIDs[sale.CustomerID] = struct{}{}

		day, ok := days[sale.Date]
		if !ok {
			day = &DailySales{Date: sale.Date}
			days[sale.Date] = day
		}
		day.Count++
		day.Total += sale.Total

		for _, item := range sale.Items {
			ps, ok := totals[item.ProductID]
			if !ok {
				ps = &model.ProductSales{ProductID: item.ProductID}
				totals[item.ProductID] = ps
			}
			ps.TotalQuantity += item.Quantity
			ps.TotalValue += float64(item.Quantity) * item.Price
		}
	}

	if report.TotalSales > 0 {
		report.AverageSale = report.Revenue / float64(report.TotalSales)
	}
	report.UniqueCustomers = len(customerIDs)

	for _, day := range days {
		report.Daily = append(report.Daily, *day)
	}
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date < report.Daily[j].Date
	})

	report.TopProducts = []model.ProductSales{}
	for _, ps := range totals {
		named := *ps
		named.Name = store.UnknownProductName
		for _, item := range inventory {
			if item.ID == ps.ProductID {
				named.Name = item.Name
				break
			}
		}
		report.TopProducts = append(report.TopProducts, named)
	}
	sort.SliceStable(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].TotalValue > report.TopProducts[j].TotalValue
	})
	if len(report.TopProducts) > 3 {
		report.TopProducts = report.TopProducts[:3]
	}

	return report, nil
}

// StockHealth buckets inventory by stock status.
type StockHealth struct {
	TotalItems int `json:"total_items"`
	OutOfStock int `json:"out_of_stock"`
	LowStock   int `json:"low_stock"`
	Healthy    int `json:"healthy"`
	Overstock  int `json:"overstock"`
}

// StockHealthReport categorizes every inventory item: out of stock,
// at/below reorder level, healthy (up to twice the reorder level), or
// overstocked.
func (s *ReportService) StockHealthReport(ctx context.Context) (*StockHealth, error) {
	inventory, err := s.store.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	health := &StockHealth{TotalItems: len(inventory)}
	for _, item := range inventory {
		switch {
		case item.Quantity == 0:
			health.OutOfStock++
		case item.Quantity <= item.ReorderLevel:
			health.LowStock++
		case item.Quantity <= item.ReorderLevel*2:
			health.Healthy++
		default:
			health.Overstock++
		}
	}
	return health, nil
}

// reportHeader writes the shared report banner.
func reportHeader(b *strings.Builder, title string, now time.Time) {
	fmt.Fprintf(b, "AGROVET DASHBOARD - %s\n", strings.ToUpper(title))
	fmt.Fprintf(b, "Generated: %s\n", now.UTC().Format(time.RFC3339))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
}

// InventoryReportText renders the inventory report as plain text.
func (s *ReportService) InventoryReportText(ctx context.Context) (string, error) {
	inventory, err := s.store.Inventory(ctx)
	if err != nil {
		return "", err
	}
	value, err := s.store.InventoryValue(ctx)
	if err != nil {
		return "", err
	}
	low, err := s.store.LowStockItems(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	reportHeader(&b, "Inventory Report", time.Now())

	fmt.Fprintf(&b, "Total items:     %d\n", len(inventory))
	fmt.Fprintf(&b, "Inventory value: $%.2f\n", value)
	fmt.Fprintf(&b, "Low stock items: %d\n\n", len(low))

	for _, item := range inventory {
		b.WriteString(strings.Repeat("-", 50) + "\n")
		fmt.Fprintf(&b, "#%d  %s\n", item.ID, item.Name)
		fmt.Fprintf(&b, "    Category:     %s\n", item.Category)
		if item.SKU != "" {
			fmt.Fprintf(&b, "    SKU:          %s\n", item.SKU)
		}
		fmt.Fprintf(&b, "    Quantity:     %d (reorder at %d)\n", item.Quantity, item.ReorderLevel)
		fmt.Fprintf(&b, "    Unit price:   $%.2f\n", item.Price)
		if item.Supplier != "" {
			fmt.Fprintf(&b, "    Supplier:     %s\n", item.Supplier)
		}
		fmt.Fprintf(&b, "    Last updated: %s\n", item.LastUpdated)
		if item.Quantity == 0 {
			b.WriteString("    ** OUT OF STOCK **\n")
		} else if item.Quantity <= item.ReorderLevel {
			b.WriteString("    ** LOW STOCK - REORDER **\n")
		}
	}

	return b.String(), nil
}

// SalesReportText renders the sales-in-range report as plain text.
func (s *ReportService) SalesReportText(ctx context.Context, start, end string) (string, error) {
	report, err := s.SalesInRange(ctx, start, end)
	if err != nil {
		return "", err
	}
	sales, err := s.store.SalesInRange(ctx, start, end)
	if err != nil {
		return "", err
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return "", err
	}

	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	var b strings.Builder
	reportHeader(&b, "Sales Report", time.Now())

	rangeLabel := "all time"
	if start != "" || end != "" {
		rangeLabel = fmt.Sprintf("%s .. %s", orAny(start), orAny(end))
	}
	fmt.Fprintf(&b, "Period:           %s\n", rangeLabel)
	fmt.Fprintf(&b, "Total sales:      %d\n", report.TotalSales)
	fmt.Fprintf(&b, "Revenue:          $%.2f\n", report.Revenue)
	fmt.Fprintf(&b, "Average sale:     $%.2f\n", report.AverageSale)
	fmt.Fprintf(&b, "Unique customers: %d\n\n", report.UniqueCustomers)

	for _, sale := range sales {
		customer, ok := names[sale.CustomerID]
		if !ok {
			customer = "Unknown Customer"
		}
		b.WriteString(strings.Repeat("-", 50) + "\n")
		fmt.Fprintf(&b, "Sale #%d  %s  %s\n", sale.ID, sale.Date, customer)
		for _, item := range sale.Items {
			fmt.Fprintf(&b, "    product %d x%d @ $%.2f\n", item.ProductID, item.Quantity, item.Price)
		}
		fmt.Fprintf(&b, "    Total: $%.2f (%s)\n", sale.Total, sale.Status)
	}

	return b.String(), nil
}

// CustomerReportText renders the customer report as plain text.
func (s *ReportService) CustomerReportText(ctx context.Context) (string, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	reportHeader(&b, "Customer Report", time.Now())

	fmt.Fprintf(&b, "Total customers: %d\n\n", len(customers))

	for _, c := range customers {
		b.WriteString(strings.Repeat("-", 50) + "\n")
		fmt.Fprintf(&b, "#%d  %s\n", c.ID, c.Name)
		fmt.Fprintf(&b, "    Phone:         %s\n", c.Phone)
		if c.Email != "" {
			fmt.Fprintf(&b, "    Email:         %s\n", c.Email)
		}
		if c.Address != "" {
			fmt.Fprintf(&b, "    Address:       %s\n", c.Address)
		}
		if c.LastPurchase != "" {
			fmt.Fprintf(&b, "    Last purchase: %s\n", c.LastPurchase)
		}
		fmt.Fprintf(&b, "    Total spent:   $%.2f\n", c.TotalSpent)
	}

	return b.String(), nil
}

// PerformanceReportText renders the performance metrics report as
// plain text: headline numbers, stock health and top sellers.
func (s *ReportService) PerformanceReportText(ctx context.Context) (string, error) {
	summary, err := s.computeSummary(ctx)
	if err != nil {
		return "", err
	}
	health, err := s.StockHealthReport(ctx)
	if err != nil {
		return "", err
	}
	top, err := s.store.TopSellingProducts(ctx, store.DefaultTopProducts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	reportHeader(&b, "Performance Metrics", time.Now())

	fmt.Fprintf(&b, "Products:        %d\n", summary.TotalProducts)
	fmt.Fprintf(&b, "Inventory value: $%.2f\n", summary.InventoryValue)
	fmt.Fprintf(&b, "Customers:       %d\n", summary.TotalCustomers)
	fmt.Fprintf(&b, "Sales recorded:  %d\n", summary.TotalSales)
	fmt.Fprintf(&b, "Total revenue:   $%.2f\n\n", summary.TotalRevenue)

	b.WriteString("Stock health\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&b, "    Out of stock: %d\n", health.OutOfStock)
	fmt.Fprintf(&b, "    Low stock:    %d\n", health.LowStock)
	fmt.Fprintf(&b, "    Healthy:      %d\n", health.Healthy)
	fmt.Fprintf(&b, "    Overstock:    %d\n\n", health.Overstock)

	b.WriteString("Top selling products\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for i, product := range top {
		fmt.Fprintf(&b, "    %d. %s - %d units ($%.2f)\n",
			i+1, product.Name, product.TotalQuantity, product.TotalValue)
	}

	return b.String(), nil
}

func orAny(bound string) string {
	if bound == "" {
		return "any"
	}
	return bound
}
