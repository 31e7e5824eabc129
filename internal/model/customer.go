package model

// Customer represents a retail customer account.
type Customer struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email,omitempty"`
	Address      string  `json:"address,omitempty"`
	LastPurchase string  `json:"last_purchase,omitempty"`
	TotalSpent   float64 `json:"total_spent"`
}

// CustomerPatch holds the updatable fields of a customer.
// Nil fields are left unchanged.
type CustomerPatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}
