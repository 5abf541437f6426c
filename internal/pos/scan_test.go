package pos

import (
	"context"
	"errors"
	"testing"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductLookup struct {
	mock.Mock
}

func (m *mockProductLookup) GetByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	args := m.Called(ctx, barcode)
	if p := args.Get(0); p != nil {
		return p.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestScanService_Scan(t *testing.T) {
	ctx := context.Background()

	t.Run("adds known product to the cart", func(t *testing.T) {
		lookup := &mockProductLookup{}
		lookup.On("GetByBarcode", ctx, "629104").Return(phone(1, 5), nil)
		svc := NewScanService(lookup)
		cart := NewCart()

		result, err := svc.Scan(ctx, cart, "629104")

		require.NoError(t, err)
		assert.Equal(t, ScanAdded, result.Status)
		assert.Equal(t, int64(1), result.Product.ID)
		assert.Equal(t, 1, cart.Len())
		lookup.AssertExpectations(t)
	})

	t.Run("unknown barcode leaves the cart alone", func(t *testing.T) {
		lookup := &mockProductLookup{}
		lookup.On("GetByBarcode", ctx, "000000").Return(nil, repository.ErrProductNotFound)
		svc := NewScanService(lookup)
		cart := NewCart()

		result, err := svc.Scan(ctx, cart, "000000")

		require.NoError(t, err)
		assert.Equal(t, ScanNotFound, result.Status)
		assert.Nil(t, result.Product)
		assert.Contains(t, result.Message, "000000")
		assert.True(t, cart.IsEmpty())
	})

	t.Run("out of stock is reported, not added", func(t *testing.T) {
		lookup := &mockProductLookup{}
		lookup.On("GetByBarcode", ctx, "629104").Return(phone(1, 0), nil)
		svc := NewScanService(lookup)
		cart := NewCart()

		result, err := svc.Scan(ctx, cart, "629104")

		require.NoError(t, err)
		assert.Equal(t, ScanOutOfStock, result.Status)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("stock limit keeps the existing quantity", func(t *testing.T) {
		lookup := &mockProductLookup{}
		lookup.On("GetByBarcode", ctx, "629104").Return(phone(1, 1), nil)
		svc := NewScanService(lookup)
		cart := NewCart()

		first, err := svc.Scan(ctx, cart, "629104")
		require.NoError(t, err)
		require.Equal(t, ScanAdded, first.Status)

		second, err := svc.Scan(ctx, cart, "629104")

		require.NoError(t, err)
		assert.Equal(t, ScanStockLimit, second.Status)
		assert.Contains(t, second.Message, "1 items available")
		assert.Equal(t, 1, cart.Lines()[0].Quantity)
	})

	t.Run("storage errors propagate", func(t *testing.T) {
		lookup := &mockProductLookup{}
		lookup.On("GetByBarcode", ctx, "629104").Return(nil, errors.New("database is locked"))
		svc := NewScanService(lookup)

		result, err := svc.Scan(ctx, NewCart(), "629104")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
