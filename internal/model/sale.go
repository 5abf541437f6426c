package model

import "time"

type Sale struct {
	ID            int64     `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	CustomerID    *int64    `json:"customer_id,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	Discount      float64   `json:"discount"`
	PaymentMethod string    `json:"payment_method"`
	Profit        float64   `json:"profit"`
	CreatedAt     time.Time `json:"created_at"`
}

type SaleItem struct {
	ID        int64   `json:"id"`
	SaleID    int64   `json:"sale_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
	Profit    float64 `json:"profit"`

	// Populated on item listings only.
	ProductName string `json:"product_name,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
}

// SaleLine is one line of a checkout request: the cart snapshot handed to the
// sale transaction flow.
type SaleLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
	Profit    float64 `json:"profit"`
}

type SaleCreateRequest struct {
	CustomerID    *int64     `json:"customer_id,omitempty"`
	Discount      float64    `json:"discount"`
	PaymentMethod string     `json:"payment_method"`
	Lines         []SaleLine `json:"lines"`
}
