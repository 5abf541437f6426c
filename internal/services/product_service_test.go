package services

import (
	"context"
	"testing"

	"github.com/mobileshop/pos/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	args := m.Called(ctx, p)
	if v := args.Get(0); v != nil {
		return v.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) GetByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	args := m.Called(ctx, barcode)
	if v := args.Get(0); v != nil {
		return v.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) LowStock(ctx context.Context, threshold int) ([]*model.Product, error) {
	args := m.Called(ctx, threshold)
	if v := args.Get(0); v != nil {
		return v.([]*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) DeductStock(ctx context.Context, productID int64, quantity int) error {
	return m.Called(ctx, productID, quantity).Error(0)
}

func (m *mockProductRepository) OutOfStock(ctx context.Context) ([]*model.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("trims fields before storing", func(t *testing.T) {
		repo := &mockProductRepository{}
		repo.On("Create", ctx, mock.AnythingOfType("*model.Product")).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*model.Product)
				assert.Equal(t, "Galaxy A15", p.Name)
				assert.Equal(t, "629104", p.Barcode)
			}).
			Return(&model.Product{ID: 1}, nil)
		svc := NewProductService(repo, 10)

		_, err := svc.Create(ctx, model.ProductCreateRequest{
			Name:          "  Galaxy A15 ",
			PurchasePrice: 100,
			SellingPrice:  150,
			StockQuantity: 5,
			Barcode:       " 629104 ",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		svc := NewProductService(&mockProductRepository{}, 10)

		_, err := svc.Create(ctx, model.ProductCreateRequest{Name: "   "})

		assert.ErrorIs(t, err, ErrEmptyProductName)
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		svc := NewProductService(&mockProductRepository{}, 10)

		_, err := svc.Create(ctx, model.ProductCreateRequest{Name: "Charger", SellingPrice: -1})

		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		svc := NewProductService(&mockProductRepository{}, 10)

		_, err := svc.Create(ctx, model.ProductCreateRequest{Name: "Charger", StockQuantity: -3})

		assert.ErrorIs(t, err, ErrNegativeStock)
	})
}

func TestProductService_GetByBarcodeTrimsInput(t *testing.T) {
	ctx := context.Background()
	repo := &mockProductRepository{}
	repo.On("GetByBarcode", ctx, "629104").Return(&model.Product{ID: 1}, nil)
	svc := NewProductService(repo, 10)

	p, err := svc.GetByBarcode(ctx, "  629104\n")

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	repo.AssertExpectations(t)
}

func TestProductService_DeductStock(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates valid corrections", func(t *testing.T) {
		repo := &mockProductRepository{}
		repo.On("DeductStock", ctx, int64(1), 2).Return(nil)
		svc := NewProductService(repo, 10)

		require.NoError(t, svc.DeductStock(ctx, 1, 2))
		repo.AssertExpectations(t)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc := NewProductService(&mockProductRepository{}, 10)

		assert.ErrorIs(t, svc.DeductStock(ctx, 1, 0), ErrInvalidQuantity)
	})
}

func TestProductService_LowStockUsesConfiguredThreshold(t *testing.T) {
	ctx := context.Background()
	repo := &mockProductRepository{}
	repo.On("LowStock", ctx, 5).Return([]*model.Product{}, nil)
	svc := NewProductService(repo, 5)

	_, err := svc.LowStock(ctx)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
