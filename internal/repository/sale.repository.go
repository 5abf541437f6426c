package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/pkg/sqlite"
	"gorm.io/gorm"
)

var ErrSaleNotFound = errors.New("sale not found")

type SaleRepository struct {
	*sqlite.DB
}

func NewSaleRepository(db *sqlite.DB) *SaleRepository {
	return &SaleRepository{
		db,
	}
}

// Create inserts the sale row and its items. It joins the transaction carried
// in ctx; the sale transaction flow owns commit and rollback.
func (r *SaleRepository) Create(ctx context.Context, sale *model.Sale, items []*model.SaleItem) (*model.Sale, error) {
	entity := toSaleEntity(sale)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	for _, item := range items {
		ie := toSaleItemEntity(item)
		ie.SaleID = entity.ID
		if err := r.Write(ctx).Create(ie).Error; err != nil {
			return nil, err
		}
		item.ID = ie.ID
		item.SaleID = entity.ID
	}

	return toSaleModel(entity), nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	var entity SaleEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return toSaleModel(&entity), nil
}

// Last returns the most recent sale, or ErrSaleNotFound on an empty store.
func (r *SaleRepository) Last(ctx context.Context) (*model.Sale, error) {
	var entity SaleEntity
	err := r.Read(ctx).Order("id DESC").First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return toSaleModel(&entity), nil
}

// ListByDate returns sales of one calendar day (YYYY-MM-DD), newest first.
func (r *SaleRepository) ListByDate(ctx context.Context, date string) ([]*model.Sale, error) {
	var entities []*SaleEntity
	err := r.Read(ctx).
		Where("DATE(created_at) = ?", date).
		Order("created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toSaleModels(entities), nil
}

func (r *SaleRepository) ListByMonth(ctx context.Context, year, month int) ([]*model.Sale, error) {
	var entities []*SaleEntity
	err := r.Read(ctx).
		Where("strftime('%Y', created_at) = ? AND strftime('%m', created_at) = ?",
			fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month)).
		Order("created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toSaleModels(entities), nil
}

// Items lists a sale's lines enriched with product name and barcode.
func (r *SaleRepository) Items(ctx context.Context, saleID int64) ([]*model.SaleItem, error) {
	var rows []struct {
		SaleItemEntity
		ProductName *string `gorm:"column:product_name"`
		Barcode     *string `gorm:"column:barcode"`
	}

	err := r.Read(ctx).
		Table("sale_items si").
		Select("si.*, p.name AS product_name, p.barcode AS barcode").
		Joins("LEFT JOIN products p ON si.product_id = p.id").
		Where("si.sale_id = ?", saleID).
		Order("si.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*model.SaleItem, len(rows))
	for i, row := range rows {
		item := toSaleItemModel(&row.SaleItemEntity)
		item.ProductName = deref(row.ProductName)
		item.Barcode = deref(row.Barcode)
		items[i] = item
	}
	return items, nil
}
