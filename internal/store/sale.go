package store

import (
	"context"
	"fmt"

	"agrovet-rest-api/internal/model"
)

// DefaultSaleStatus is assigned to sales recorded without an explicit status.
const DefaultSaleStatus = "Completed"

// Sales returns the full ordered sales collection.
func (s *Store) Sales(ctx context.Context) ([]model.Sale, error) {
	return load[model.Sale](ctx, s, salesKey)
}

// Sale returns the sale with the given id, or model.ErrNotFound.
func (s *Store) Sale(ctx context.Context, id int64) (*model.Sale, error) {
	sales, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].ID == id {
			return &sales[i], nil
		}
	}
	return nil, model.ErrNotFound
}

// RecordSale is the store's one unit of work across collections. From a
// single in-memory snapshot it appends the new sale, decrements the
// quantity of every referenced inventory item, updates the customer's
// last purchase date and cumulative spend, and persists all three
// collections. Line items referencing unknown products are skipped
// (matching historical behavior); an unknown customer id is an error.
func (s *Store) RecordSale(ctx context.Context, input model.NewSale) (*model.Sale, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("sale requires at least one item")
	}

	inventory, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}

	customerIdx := -1
	for i := range customers {
		if customers[i].ID == input.CustomerID {
			customerIdx = i
			break
		}
	}
	if customerIdx < 0 {
		return nil, model.ErrNotFound
	}

	ids := make([]int64, len(sales))
	for i, sa := range sales {
		ids[i] = sa.ID
	}

	date := input.Date
	if date == "" {
		date = s.today()
	}

	var total float64
	for _, item := range input.Items {
		total += float64(item.Quantity) * item.Price
	}

	sale := model.Sale{
		ID:            nextID(ids),
		Date:          date,
		CustomerID:    input.CustomerID,
		Items:         input.Items,
		Total:         round2(total),
		PaymentMethod: input.PaymentMethod,
		Status:        DefaultSaleStatus,
	}

	for _, item := range sale.Items {
		for i := range inventory {
			if inventory[i].ID == item.ProductID {
				inventory[i].Quantity -= item.Quantity
				inventory[i].LastUpdated = sale.Date
				break
			}
		}
	}

	customers[customerIdx].LastPurchase = sale.Date
	customers[customerIdx].TotalSpent = round2(customers[customerIdx].TotalSpent + sale.Total)

	sales = append(sales, sale)

	// All three writes come from the one snapshot above. There is no
	// rollback: a failure mid-sequence leaves earlier writes in place.
	if err := save(ctx, s, salesKey, sales); err != nil {
		return nil, err
	}
	if err := save(ctx, s, inventoryKey, inventory); err != nil {
		return nil, err
	}
	if err := save(ctx, s, customersKey, customers); err != nil {
		return nil, err
	}

	return &sale, nil
}

// DeleteSale removes the sale with the given id. Inventory quantities
// and customer totals are not recalculated; those accumulators reflect
// the sale history at the time each sale was recorded.
func (s *Store) DeleteSale(ctx context.Context, id int64) error {
	sales, err := s.Sales(ctx)
	if err != nil {
		return err
	}

	filtered := sales[:0:0]
	for _, sa := range sales {
		if sa.ID != id {
			filtered = append(filtered, sa)
		}
	}
	if len(filtered) == len(sales) {
		return model.ErrNotFound
	}
	return save(ctx, s, salesKey, filtered)
}
