package repository

import (
	"time"

	"github.com/mobileshop/pos/internal/model"
)

type ExpenseEntity struct {
	ID          int64     `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	Category    string    `db:"category"    gorm:"column:category;not null"`
	Amount      float64   `db:"amount"      gorm:"column:amount;not null"`
	Description *string   `db:"description" gorm:"column:description"`
	Date        string    `db:"date"        gorm:"column:date;not null"`
	CreatedAt   time.Time `db:"created_at"  gorm:"column:created_at"`
}

func (ExpenseEntity) TableName() string {
	return "expenses"
}

func toExpenseEntity(m *model.Expense) *ExpenseEntity {
	if m == nil {
		return nil
	}
	return &ExpenseEntity{
		ID:          m.ID,
		Category:    m.Category,
		Amount:      m.Amount,
		Description: optional(m.Description),
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

func toExpenseModel(e *ExpenseEntity) *model.Expense {
	if e == nil {
		return nil
	}
	return &model.Expense{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: deref(e.Description),
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

func toExpenseModels(entities []*ExpenseEntity) []*model.Expense {
	if entities == nil {
		return nil
	}
	models := make([]*model.Expense, len(entities))
	for i, e := range entities {
		models[i] = toExpenseModel(e)
	}
	return models
}
