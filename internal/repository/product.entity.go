package repository

import (
	"time"

	"github.com/mobileshop/pos/internal/model"
)

type ProductEntity struct {
	ID            int64     `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	Name          string    `db:"name"           gorm:"column:name;not null"`
	Brand         *string   `db:"brand"          gorm:"column:brand"`
	Category      *string   `db:"category"       gorm:"column:category"`
	PurchasePrice float64   `db:"purchase_price" gorm:"column:purchase_price;not null"`
	SellingPrice  float64   `db:"selling_price"  gorm:"column:selling_price;not null"`
	StockQuantity int       `db:"stock_quantity" gorm:"column:stock_quantity;not null;default:0"`
	Barcode       *string   `db:"barcode"        gorm:"column:barcode;unique"`
	CreatedAt     time.Time `db:"created_at"     gorm:"column:created_at"`
	UpdatedAt     time.Time `db:"updated_at"     gorm:"column:updated_at"`
}

func (ProductEntity) TableName() string {
	return "products"
}

func toProductEntity(m *model.Product) *ProductEntity {
	if m == nil {
		return nil
	}
	return &ProductEntity{
		ID:            m.ID,
		Name:          m.Name,
		Brand:         optional(m.Brand),
		Category:      optional(m.Category),
		PurchasePrice: m.PurchasePrice,
		SellingPrice:  m.SellingPrice,
		StockQuantity: m.StockQuantity,
		Barcode:       optional(m.Barcode),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toProductModel(e *ProductEntity) *model.Product {
	if e == nil {
		return nil
	}
	return &model.Product{
		ID:            e.ID,
		Name:          e.Name,
		Brand:         deref(e.Brand),
		Category:      deref(e.Category),
		PurchasePrice: e.PurchasePrice,
		SellingPrice:  e.SellingPrice,
		StockQuantity: e.StockQuantity,
		Barcode:       deref(e.Barcode),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toProductModels(entities []*ProductEntity) []*model.Product {
	if entities == nil {
		return nil
	}
	models := make([]*model.Product, len(entities))
	for i, e := range entities {
		models[i] = toProductModel(e)
	}
	return models
}

// optional maps the empty string to NULL so unique columns (barcode) do not
// collide on blanks.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
