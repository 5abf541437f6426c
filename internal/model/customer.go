package model

import "time"

type Customer struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	CreditBalance float64   `json:"credit_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// CustomerPurchase is one past sale of a customer with its item count, as
// shown on the customer history screen.
type CustomerPurchase struct {
	Sale
	ItemCount int `json:"item_count"`
}
