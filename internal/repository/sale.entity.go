package repository

import (
	"time"

	"github.com/mobileshop/pos/internal/model"
)

type SaleEntity struct {
	ID            int64     `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	InvoiceNumber string    `db:"invoice_number" gorm:"column:invoice_number;not null;unique"`
	CustomerID    *int64    `db:"customer_id"    gorm:"column:customer_id"`
	TotalAmount   float64   `db:"total_amount"   gorm:"column:total_amount;not null"`
	Discount      float64   `db:"discount"       gorm:"column:discount;not null;default:0"`
	PaymentMethod string    `db:"payment_method" gorm:"column:payment_method;not null"`
	Profit        float64   `db:"profit"         gorm:"column:profit;not null;default:0"`
	CreatedAt     time.Time `db:"created_at"     gorm:"column:created_at"`
}

func (SaleEntity) TableName() string {
	return "sales"
}

type SaleItemEntity struct {
	ID        int64   `db:"id"         gorm:"primaryKey;autoIncrement;column:id"`
	SaleID    int64   `db:"sale_id"    gorm:"column:sale_id;not null;index"`
	ProductID int64   `db:"product_id" gorm:"column:product_id;not null;index"`
	Quantity  int     `db:"quantity"   gorm:"column:quantity;not null"`
	Price     float64 `db:"price"      gorm:"column:price;not null"`
	Total     float64 `db:"total"      gorm:"column:total;not null"`
	Profit    float64 `db:"profit"     gorm:"column:profit;not null;default:0"`
}

func (SaleItemEntity) TableName() string {
	return "sale_items"
}

func toSaleEntity(m *model.Sale) *SaleEntity {
	if m == nil {
		return nil
	}
	return &SaleEntity{
		ID:            m.ID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		TotalAmount:   m.TotalAmount,
		Discount:      m.Discount,
		PaymentMethod: m.PaymentMethod,
		Profit:        m.Profit,
		CreatedAt:     m.CreatedAt,
	}
}

func toSaleModel(e *SaleEntity) *model.Sale {
	if e == nil {
		return nil
	}
	return &model.Sale{
		ID:            e.ID,
		InvoiceNumber: e.InvoiceNumber,
		CustomerID:    e.CustomerID,
		TotalAmount:   e.TotalAmount,
		Discount:      e.Discount,
		PaymentMethod: e.PaymentMethod,
		Profit:        e.Profit,
		CreatedAt:     e.CreatedAt,
	}
}

func toSaleModels(entities []*SaleEntity) []*model.Sale {
	if entities == nil {
		return nil
	}
	models := make([]*model.Sale, len(entities))
	for i, e := range entities {
		models[i] = toSaleModel(e)
	}
	return models
}

func toSaleItemEntity(m *model.SaleItem) *SaleItemEntity {
	if m == nil {
		return nil
	}
	return &SaleItemEntity{
		ID:        m.ID,
		SaleID:    m.SaleID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price,
		Total:     m.Total,
		Profit:    m.Profit,
	}
}

func toSaleItemModel(e *SaleItemEntity) *model.SaleItem {
	if e == nil {
		return nil
	}
	return &model.SaleItem{
		ID:        e.ID,
		SaleID:    e.SaleID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		Price:     e.Price,
		Total:     e.Total,
		Profit:    e.Profit,
	}
}
