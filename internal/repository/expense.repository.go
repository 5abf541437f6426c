package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/pkg/sqlite"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseRepository struct {
	*sqlite.DB
}

func NewExpenseRepository(db *sqlite.DB) *ExpenseRepository {
	return &ExpenseRepository{
		db,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *model.Expense) (*model.Expense, error) {
	entity := toExpenseEntity(e)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toExpenseModel(entity), nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *model.Expense) error {
	result := r.Write(ctx).Model(&ExpenseEntity{}).
		Where("id = ?", e.ID).
		Select("category", "amount", "description", "date").
		Updates(toExpenseEntity(e))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Delete(&ExpenseEntity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context) ([]*model.Expense, error) {
	var entities []*ExpenseEntity
	err := r.Read(ctx).
		Order("date DESC, created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toExpenseModels(entities), nil
}

func (r *ExpenseRepository) ListByDate(ctx context.Context, date string) ([]*model.Expense, error) {
	var entities []*ExpenseEntity
	err := r.Read(ctx).
		Where("date = ?", date).
		Order("created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toExpenseModels(entities), nil
}

func (r *ExpenseRepository) ListByMonth(ctx context.Context, year, month int) ([]*model.Expense, error) {
	var entities []*ExpenseEntity
	err := r.Read(ctx).
		Where("strftime('%Y', date) = ? AND strftime('%m', date) = ?",
			fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month)).
		Order("date DESC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toExpenseModels(entities), nil
}

func (r *ExpenseRepository) TotalByDate(ctx context.Context, date string) (float64, error) {
	var total float64
	err := r.Read(ctx).Model(&ExpenseEntity{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("date = ?", date).
		Scan(&total).Error
	return total, err
}

func (r *ExpenseRepository) TotalByMonth(ctx context.Context, year, month int) (float64, error) {
	var total float64
	err := r.Read(ctx).Model(&ExpenseEntity{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("strftime('%Y', date) = ? AND strftime('%m', date) = ?",
			fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month)).
		Scan(&total).Error
	return total, err
}
