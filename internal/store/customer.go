package store

import (
	"context"

	"agrovet-rest-api/internal/model"
)

// Customers returns the full ordered customer collection.
func (s *Store) Customers(ctx context.Context) ([]model.Customer, error) {
	return load[model.Customer](ctx, s, customersKey)
}

// Customer returns the customer with the given id, or model.ErrNotFound.
func (s *Store) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, model.ErrNotFound
}

// AddCustomer assigns the next id, appends the customer and persists.
// Any id supplied by the caller is ignored.
func (s *Store) AddCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(customers))
	for i, c := range customers {
		ids[i] = c.ID
	}
	customer.ID = nextID(ids)

	customers = append(customers, customer)
	if err := save(ctx, s, customersKey, customers); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer shallow-merges the set patch fields onto the existing
// customer and persists. Returns model.ErrNotFound without touching the
// collection when id is unknown. LastPurchase and TotalSpent are owned
// by RecordSale and cannot be patched here.
func (s *Store) UpdateCustomer(ctx context.Context, id int64, patch model.CustomerPatch) (*model.Customer, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range customers {
		if customers[i].ID != id {
			continue
		}

		if patch.Name != nil {
			customers[i].Name = *patch.Name
		}
		if patch.Phone != nil {
			customers[i].Phone = *patch.Phone
		}
		if patch.Email != nil {
			customers[i].Email = *patch.Email
		}
		if patch.Address != nil {
			customers[i].Address = *patch.Address
		}

		if err := save(ctx, s, customersKey, customers); err != nil {
			return nil, err
		}
		return &customers[i], nil
	}
	return nil, model.ErrNotFound
}

// DeleteCustomer removes the customer with the given id. Historical
// sales keep their customer id; reports resolve the missing name as
// "Unknown Customer".
func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	customers, err := s.Customers(ctx)
	if err != nil {
		return err
	}

	filtered := customers[:0:0]
	for _, c := range customers {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == len(customers) {
		return model.ErrNotFound
	}
	return save(ctx, s, customersKey, filtered)
}
