package model

import "time"

type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand,omitempty"`
	Category      string    `json:"category,omitempty"`
	PurchasePrice float64   `json:"purchase_price"`
	SellingPrice  float64   `json:"selling_price"`
	StockQuantity int       `json:"stock_quantity"`
	Barcode       string    `json:"barcode,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProductCreateRequest struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	StockQuantity int     `json:"stock_quantity"`
	Barcode       string  `json:"barcode"`
}
