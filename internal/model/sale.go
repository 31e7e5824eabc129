package model

// SaleItem is one line of a sale. Price is the unit price at the time
// of sale, not the product's current price.
type SaleItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Sale represents a completed transaction. Customers are referenced by
// id; display names are joined at read time.
type Sale struct {
	ID            int64      `json:"id"`
	Date          string     `json:"date"`
	CustomerID    int64      `json:"customer_id"`
	Items         []SaleItem `json:"items"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Status        string     `json:"status"`
}

// NewSale is the input for recording a sale. Date defaults to today
// and Total is computed from the items.
type NewSale struct {
	CustomerID    int64      `json:"customer_id"`
	Date          string     `json:"date,omitempty"`
	Items         []SaleItem `json:"items"`
	PaymentMethod string     `json:"payment_method,omitempty"`
}
