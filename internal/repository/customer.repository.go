package repository

import (
	"context"
	"errors"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/pkg/sqlite"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerRepository struct {
	*sqlite.DB
}

func NewCustomerRepository(db *sqlite.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(c)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCustomerModel(entity), nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	result := r.Write(ctx).Model(&CustomerEntity{}).
		Where("id = ?", c.ID).
		Select("name", "phone", "credit_balance").
		Updates(toCustomerEntity(c))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&CustomerEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var entity CustomerEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return toCustomerModel(&entity), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	var entities []*CustomerEntity
	if err := r.Read(ctx).Order("name").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toCustomerModels(entities), nil
}

// Purchases lists a customer's past sales with item counts, newest first.
func (r *CustomerRepository) Purchases(ctx context.Context, customerID int64) ([]*model.CustomerPurchase, error) {
	var rows []struct {
		SaleEntity
		ItemCount int `gorm:"column:item_count"`
	}

	err := r.Read(ctx).
		Table("sales s").
		Select("s.*, COUNT(si.id) AS item_count").
		Joins("LEFT JOIN sale_items si ON s.id = si.sale_id").
		Where("s.customer_id = ?", customerID).
		Group("s.id").
		Order("s.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	purchases := make([]*model.CustomerPurchase, len(rows))
	for i, row := range rows {
		purchases[i] = &model.CustomerPurchase{
			Sale:      *toSaleModel(&row.SaleEntity),
			ItemCount: row.ItemCount,
		}
	}
	return purchases, nil
}
