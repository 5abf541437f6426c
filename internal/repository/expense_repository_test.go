package repository

import (
	"context"
	"testing"

	"github.com/mobileshop/pos/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	seed := []*model.Expense{
		{Category: "Rent", Amount: 20000, Date: "2025-08-01"},
		{Category: "Utilities", Amount: 3500, Description: "electricity", Date: "2025-08-15"},
		{Category: "Tea", Amount: 500, Date: "2025-09-01"},
	}
	for _, e := range seed {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	t.Run("list by date", func(t *testing.T) {
		expenses, err := repo.ListByDate(ctx, "2025-08-15")
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, "Utilities", expenses[0].Category)
		assert.Equal(t, "electricity", expenses[0].Description)
	})

	t.Run("list by month", func(t *testing.T) {
		expenses, err := repo.ListByMonth(ctx, 2025, 8)
		require.NoError(t, err)
		assert.Len(t, expenses, 2)
	})

	t.Run("total by date", func(t *testing.T) {
		total, err := repo.TotalByDate(ctx, "2025-08-01")
		require.NoError(t, err)
		assert.Equal(t, 20000.0, total)
	})

	t.Run("total by month", func(t *testing.T) {
		total, err := repo.TotalByMonth(ctx, 2025, 8)
		require.NoError(t, err)
		assert.Equal(t, 23500.0, total)
	})

	t.Run("total of empty day is zero", func(t *testing.T) {
		total, err := repo.TotalByDate(ctx, "2020-01-01")
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("update", func(t *testing.T) {
		expenses, err := repo.ListByDate(ctx, "2025-09-01")
		require.NoError(t, err)
		require.Len(t, expenses, 1)

		e := expenses[0]
		e.Amount = 750
		require.NoError(t, repo.Update(ctx, e))

		total, err := repo.TotalByDate(ctx, "2025-09-01")
		require.NoError(t, err)
		assert.Equal(t, 750.0, total)
	})

	t.Run("delete", func(t *testing.T) {
		expenses, err := repo.ListByDate(ctx, "2025-09-01")
		require.NoError(t, err)
		require.Len(t, expenses, 1)

		require.NoError(t, repo.Delete(ctx, expenses[0].ID))

		err = repo.Delete(ctx, expenses[0].ID)
		assert.ErrorIs(t, err, ErrExpenseNotFound)
	})
}
