package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepository(db)
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Get(ctx, "shop_name")
		assert.ErrorIs(t, err, ErrSettingNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "shop_name", "Mobile Shop"))

		v, err := repo.Get(ctx, "shop_name")
		require.NoError(t, err)
		assert.Equal(t, "Mobile Shop", v)
	})

	t.Run("set replaces existing value", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "shop_name", "City Mobiles"))

		v, err := repo.Get(ctx, "shop_name")
		require.NoError(t, err)
		assert.Equal(t, "City Mobiles", v)
	})

	t.Run("set if absent keeps existing value", func(t *testing.T) {
		require.NoError(t, repo.SetIfAbsent(ctx, "shop_name", "Default Shop"))

		v, err := repo.Get(ctx, "shop_name")
		require.NoError(t, err)
		assert.Equal(t, "City Mobiles", v)
	})

	t.Run("all", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "currency", "PKR"))

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"shop_name": "City Mobiles",
			"currency":  "PKR",
		}, all)
	})
}
