package model

// DateLayout is the calendar-day format used for entity date fields.
const DateLayout = "2006-01-02"

// InventoryItem represents a stocked product.
type InventoryItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	SKU          string  `json:"sku,omitempty"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorder_level"`
	Supplier     string  `json:"supplier,omitempty"`
	Description  string  `json:"description,omitempty"`
	LastUpdated  string  `json:"last_updated"`
}

// InventoryPatch holds the updatable fields of an inventory item.
// Nil fields are left unchanged.
type InventoryPatch struct {
	Name         *string  `json:"name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	SKU          *string  `json:"sku,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Quantity     *int     `json:"quantity,omitempty"`
	ReorderLevel *int     `json:"reorder_level,omitempty"`
	Supplier     *string  `json:"supplier,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// ProductSales is an aggregated sales total for one product.
type ProductSales struct {
	ProductID     int64   `json:"product_id"`
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}
