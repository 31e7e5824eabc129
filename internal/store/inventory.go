package store

import (
	"context"

	"agrovet-rest-api/internal/model"
)

// Inventory returns the full ordered inventory collection.
func (s *Store) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	return load[model.InventoryItem](ctx, s, inventoryKey)
}

// InventoryItem returns the inventory item with the given id, or
// model.ErrNotFound.
func (s *Store) InventoryItem(ctx context.Context, id int64) (*model.InventoryItem, error) {
	items, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, model.ErrNotFound
}

// AddInventoryItem assigns the next id, stamps LastUpdated, appends the
// item and persists. Any id supplied by the caller is ignored.
func (s *Store) AddInventoryItem(ctx context.Context, item model.InventoryItem) (*model.InventoryItem, error) {
	items, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	item.ID = nextID(ids)
	item.LastUpdated = s.today()

	items = append(items, item)
	if err := save(ctx, s, inventoryKey, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateInventoryItem shallow-merges the set patch fields onto the
// existing item, refreshes LastUpdated and persists. Returns
// model.ErrNotFound without touching the collection when id is unknown.
func (s *Store) UpdateInventoryItem(ctx context.Context, id int64, patch model.InventoryPatch) (*model.InventoryItem, error) {
	items, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}

		applyInventoryPatch(&items[i], patch)
		items[i].LastUpdated = s.today()

		if err := save(ctx, s, inventoryKey, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, model.ErrNotFound
}

func applyInventoryPatch(item *model.InventoryItem, patch model.InventoryPatch) {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.SKU != nil {
		item.SKU = *patch.SKU
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.ReorderLevel != nil {
		item.ReorderLevel = *patch.ReorderLevel
	}
	if patch.Supplier != nil {
		item.Supplier = *patch.Supplier
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
}

// DeleteInventoryItem removes the item with the given id. Historical
// sales referencing the item are left untouched; reports resolve the
// missing product name as "Unknown Product".
func (s *Store) DeleteInventoryItem(ctx context.Context, id int64) error {
	items, err := s.Inventory(ctx)
	if err != nil {
		return err
	}

	filtered := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			filtered = append(filtered, it)
		}
	}
	if len(filtered) == len(items) {
		return model.ErrNotFound
	}
	return save(ctx, s, inventoryKey, filtered)
}
