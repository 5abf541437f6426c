package pos

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/internal/repository"
	"github.com/mobileshop/pos/pkg/prom"
)

// ScanStatus tells the presentation layer what happened to a scanned code;
// it renders the message, nothing more.
type ScanStatus int

const (
	ScanAdded ScanStatus = iota
	ScanNotFound
	ScanOutOfStock
	ScanStockLimit
)

func (s ScanStatus) String() string {
	switch s {
	case ScanAdded:
		return "added"
	case ScanNotFound:
		return "not_found"
	case ScanOutOfStock:
		return "out_of_stock"
	case ScanStockLimit:
		return "stock_limit"
	default:
		return "unknown"
	}
}

type ScanResult struct {
	Status  ScanStatus
	Product *model.Product
	Message string
}

type ProductLookup interface {
	GetByBarcode(ctx context.Context, barcode string) (*model.Product, error)
}

// ScanService resolves scanned codes against the catalog and applies them to
// a cart. Rejections never mutate the cart.
type ScanService struct {
	products ProductLookup
}

func NewScanService(products ProductLookup) *ScanService {
	return &ScanService{products: products}
}

func (s *ScanService) Scan(ctx context.Context, cart *Cart, code string) (*ScanResult, error) {
	product, err := s.products.GetByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return s.result(ScanNotFound, nil, fmt.Sprintf("product not found for barcode: %s", code)), nil
		}
		return nil, err
	}

	switch err := cart.Add(product); {
	case errors.Is(err, ErrOutOfStock):
		return s.result(ScanOutOfStock, product, fmt.Sprintf("product %q is out of stock", product.Name)), nil
	case errors.Is(err, ErrStockLimit):
		return s.result(ScanStockLimit, product, fmt.Sprintf("only %d items available in stock", product.StockQuantity)), nil
	case err != nil:
		return nil, err
	}

	return s.result(ScanAdded, product, ""), nil
}

func (s *ScanService) result(status ScanStatus, product *model.Product, message string) *ScanResult {
	prom.IncCounterVec(prom.SystemScans, prom.MetricScansTotal, status.String())
	return &ScanResult{Status: status, Product: product, Message: message}
}
