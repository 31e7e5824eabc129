package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"agrovet-rest-api/internal/model"
)

// UnknownProductName is reported for sale lines whose product has been
// deleted from inventory.
const UnknownProductName = "Unknown Product"

// DefaultTopProducts is the product count returned when no limit is given.
const DefaultTopProducts = 5

// InventoryValue returns the total stock valuation: the sum of
// quantity x unit price over all inventory items, rounded to 2 decimal
// places.
func (s *Store) InventoryValue(ctx context.Context) (float64, error) {
	items, err := s.Inventory(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return round2(total), nil
}

// LowStockItems returns every inventory item at or below its reorder
// level, including out-of-stock items.
func (s *Store) LowStockItems(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	low := []model.InventoryItem{}
	for _, item := range items {
		if item.Quantity <= item.ReorderLevel {
			low = append(low, item)
		}
	}
	return low, nil
}

// TopSellingProducts aggregates quantities sold per product across all
// sales, joins current product names, and returns at most limit entries
// ordered by descending total quantity. Ties keep first-sold order.
func (s *Store) TopSellingProducts(ctx context.Context, limit int) ([]model.ProductSales, error) {
	if limit <= 0 {
		limit = DefaultTopProducts
	}

	sales, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]*model.ProductSales)
	order := []int64{}
	for _, sale := range sales {
		for _, item := range sale.Items {
			ps, ok := totals[item.ProductID]
			if !ok {
				ps = &model.ProductSales{ProductID: item.ProductID}
				totals[item.ProductID] = ps
				order = append(order, item.ProductID)
			}
			ps.TotalQuantity += item.Quantity
			ps.TotalValue = round2(ps.TotalValue + float64(item.Quantity)*item.Price)
		}
	}

	products := make([]model.ProductSales, 0, len(order))
	for _, id := range order {
		ps := *totals[id]
		ps.Name = UnknownProductName
		for _, item := range inventory {
			if item.ID == id {
				ps.Name = item.Name
				break
			}
		}
		products = append(products, ps)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].TotalQuantity > products[j].TotalQuantity
	})

	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

// SalesInRange returns sales whose date falls inclusively between start
// and end. An empty bound is unbounded on that side. Sales with
// unparseable dates are excluded whenever a bound is set.
func (s *Store) SalesInRange(ctx context.Context, start, end string) ([]model.Sale, error) {
	var startTime, endTime time.Time
	var err error

	if start != "" {
		startTime, err = time.Parse(model.DateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", start, err)
		}
	}
	if end != "" {
		endTime, err = time.Parse(model.DateLayout, end)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", end, err)
		}
	}

	sales, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}

	if start == "" && end == "" {
		return sales, nil
	}

	inRange := []model.Sale{}
	for _, sale := range sales {
		saleTime, err := time.Parse(model.DateLayout, sale.Date)
		if err != nil {
			continue
		}
		if start != "" && saleTime.Before(startTime) {
			continue
		}
		if end != "" && saleTime.After(endTime) {
			continue
		}
		inRange = append(inRange, sale)
	}
	return inRange, nil
}
