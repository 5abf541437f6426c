package repository

import (
	"context"
	"errors"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/pkg/sqlite"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a decrement would take
	// stock_quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

type ProductRepository struct {
	*sqlite.DB
}

func NewProductRepository(db *sqlite.DB) *ProductRepository {
	return &ProductRepository{
		db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	entity := toProductEntity(p)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toProductModel(entity), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	entity := toProductEntity(p)

	result := r.Write(ctx).Model(&ProductEntity{}).
		Where("id = ?", p.ID).
		Select("name", "brand", "category", "purchase_price", "selling_price", "stock_quantity", "barcode", "updated_at").
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&ProductEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var entity ProductEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return toProductModel(&entity), nil
}

func (r *ProductRepository) GetByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var entity ProductEntity
	err := r.Read(ctx).Where("barcode = ?", barcode).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return toProductModel(&entity), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	var entities []*ProductEntity
	if err := r.Read(ctx).Order("name").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toProductModels(entities), nil
}

// DeductStock atomically decrements stock_quantity inside the caller's
// transaction, failing the whole transaction when stock would go negative.
func (r *ProductRepository) DeductStock(ctx context.Context, productID int64, quantity int) error {
	var entity ProductEntity

	err := r.Write(ctx).Where("id = ?", productID).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if entity.StockQuantity < quantity {
		return ErrInsufficientStock
	}

	result := r.Write(ctx).Model(&ProductEntity{}).
		Where("id = ?", productID).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// LowStock returns products with 0 < stock_quantity <= threshold, lowest first.
func (r *ProductRepository) LowStock(ctx context.Context, threshold int) ([]*model.Product, error) {
	var entities []*ProductEntity
	err := r.Read(ctx).
		Where("stock_quantity <= ? AND stock_quantity > 0", threshold).
		Order("stock_quantity").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toProductModels(entities), nil
}

func (r *ProductRepository) OutOfStock(ctx context.Context) ([]*model.Product, error) {
	var entities []*ProductEntity
	err := r.Read(ctx).
		Where("stock_quantity = 0").
		Order("name").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toProductModels(entities), nil
}
