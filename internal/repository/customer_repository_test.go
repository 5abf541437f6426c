package repository

import (
	"context"
	"testing"

	"github.com/mobileshop/pos/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("create and list ordered by name", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Customer{Name: "Zafar", Phone: "0300-1234567"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.Customer{Name: "Ali"})
		require.NoError(t, err)

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Ali", customers[0].Name)
		assert.Equal(t, "Zafar", customers[1].Name)
	})

	t.Run("update", func(t *testing.T) {
		customers, err := repo.List(ctx)
		require.NoError(t, err)

		c := customers[0]
		c.CreditBalance = 500
		require.NoError(t, repo.Update(ctx, c))

		got, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 500.0, got.CreditBalance)
	})

	t.Run("delete", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Customer{Name: "Temp"})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))
		_, err = repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestCustomerRepository_Purchases(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := NewCustomerRepository(db)
	saleRepo := NewSaleRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	customer, err := customerRepo.Create(ctx, &model.Customer{Name: "Regular"})
	require.NoError(t, err)

	product, err := productRepo.Create(ctx, &model.Product{Name: "Handsfree", PurchasePrice: 80, SellingPrice: 120, StockQuantity: 50})
	require.NoError(t, err)

	_, err = saleRepo.Create(ctx, &model.Sale{
		InvoiceNumber: "INV-20250901-3001",
		CustomerID:    &customer.ID,
		TotalAmount:   240,
		PaymentMethod: "Credit",
		Profit:        80,
	}, []*model.SaleItem{
		{ProductID: product.ID, Quantity: 2, Price: 120, Total: 240, Profit: 80},
	})
	require.NoError(t, err)

	purchases, err := customerRepo.Purchases(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "INV-20250901-3001", purchases[0].InvoiceNumber)
	assert.Equal(t, 1, purchases[0].ItemCount)

	none, err := customerRepo.Purchases(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
