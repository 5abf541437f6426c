package repository

import (
	"time"

	"github.com/mobileshop/pos/internal/model"
)

type CustomerEntity struct {
	ID            int64     `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	Name          string    `db:"name"           gorm:"column:name;not null"`
	Phone         *string   `db:"phone"          gorm:"column:phone"`
	CreditBalance float64   `db:"credit_balance" gorm:"column:credit_balance;not null;default:0"`
	CreatedAt     time.Time `db:"created_at"     gorm:"column:created_at"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:            m.ID,
		Name:          m.Name,
		Phone:         optional(m.Phone),
		CreditBalance: m.CreditBalance,
		CreatedAt:     m.CreatedAt,
	}
}

func toCustomerModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		ID:            e.ID,
		Name:          e.Name,
		Phone:         deref(e.Phone),
		CreditBalance: e.CreditBalance,
		CreatedAt:     e.CreatedAt,
	}
}

func toCustomerModels(entities []*CustomerEntity) []*model.Customer {
	if entities == nil {
		return nil
	}
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e)
	}
	return models
}
