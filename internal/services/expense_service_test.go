package services

import (
	"context"
	"testing"

	"github.com/mobileshop/pos/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExpenseRepository struct {
	mock.Mock
}

func (m *mockExpenseRepository) Create(ctx context.Context, e *model.Expense) (*model.Expense, error) {
	args := m.Called(ctx, e)
	if v := args.Get(0); v != nil {
		return v.(*model.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseRepository) Update(ctx context.Context, e *model.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockExpenseRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockExpenseRepository) List(ctx context.Context) ([]*model.Expense, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseRepository) ListByDate(ctx context.Context, date string) ([]*model.Expense, error) {
	args := m.Called(ctx, date)
	if v := args.Get(0); v != nil {
		return v.([]*model.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseRepository) ListByMonth(ctx context.Context, year, month int) ([]*model.Expense, error) {
	args := m.Called(ctx, year, month)
	if v := args.Get(0); v != nil {
		return v.([]*model.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseRepository) TotalByDate(ctx context.Context, date string) (float64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockExpenseRepository) TotalByMonth(ctx context.Context, year, month int) (float64, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).(float64), args.Error(1)
}

func TestExpenseService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid expense", func(t *testing.T) {
		repo := &mockExpenseRepository{}
		repo.On("Create", ctx, mock.AnythingOfType("*model.Expense")).
			Run(func(args mock.Arguments) {
				e := args.Get(1).(*model.Expense)
				assert.Equal(t, "Rent", e.Category)
				assert.Equal(t, "2025-03-01", e.Date)
			}).
			Return(&model.Expense{ID: 1}, nil)
		svc := NewExpenseService(repo)

		_, err := svc.Create(ctx, model.ExpenseCreateRequest{
			Category: " Rent ",
			Amount:   15000,
			Date:     " 2025-03-01 ",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank category", func(t *testing.T) {
		svc := NewExpenseService(&mockExpenseRepository{})

		_, err := svc.Create(ctx, model.ExpenseCreateRequest{Amount: 100, Date: "2025-03-01"})

		assert.ErrorIs(t, err, ErrEmptyExpenseCategory)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc := NewExpenseService(&mockExpenseRepository{})

		_, err := svc.Create(ctx, model.ExpenseCreateRequest{Category: "Rent", Amount: 0, Date: "2025-03-01"})

		assert.ErrorIs(t, err, ErrInvalidExpenseAmount)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc := NewExpenseService(&mockExpenseRepository{})

		_, err := svc.Create(ctx, model.ExpenseCreateRequest{Category: "Rent", Amount: 100, Date: "01/03/2025"})

		assert.ErrorIs(t, err, ErrInvalidExpenseDate)
	})
}
