package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mobileshop/pos/internal/model"
)

var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrInvalidPrice     = errors.New("prices cannot be negative")
	ErrNegativeStock    = errors.New("stock quantity cannot be negative")
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	LowStock(ctx context.Context, threshold int) ([]*model.Product, error)
	OutOfStock(ctx context.Context) ([]*model.Product, error)
	DeductStock(ctx context.Context, productID int64, quantity int) error
}

type ProductService struct {
	repo              ProductRepository
	lowStockThreshold int
}

func NewProductService(repo ProductRepository, lowStockThreshold int) *ProductService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	return &ProductService{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *ProductService) Create(ctx context.Context, req model.ProductCreateRequest) (*model.Product, error) {
	p := &model.Product{
		Name:          strings.TrimSpace(req.Name),
		Brand:         strings.TrimSpace(req.Brand),
		Category:      strings.TrimSpace(req.Category),
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockQuantity: req.StockQuantity,
		Barcode:       strings.TrimSpace(req.Barcode),
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Barcode = strings.TrimSpace(p.Barcode)
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func validateProduct(p *model.Product) error {
	if p.Name == "" {
		return ErrEmptyProductName
	}
	if p.PurchasePrice < 0 || p.SellingPrice < 0 {
		return ErrInvalidPrice
	}
	if p.StockQuantity < 0 {
		return ErrNegativeStock
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	return s.repo.GetByBarcode(ctx, strings.TrimSpace(barcode))
}

func (s *ProductService) List(ctx context.Context) ([]*model.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) LowStock(ctx context.Context) ([]*model.Product, error) {
	return s.repo.LowStock(ctx, s.lowStockThreshold)
}

func (s *ProductService) OutOfStock(ctx context.Context) ([]*model.Product, error) {
	return s.repo.OutOfStock(ctx)
}

// DeductStock is the manual stock correction used outside a sale, for
// breakage or returns to a supplier. Sales decrement through their own
// transaction flow.
func (s *ProductService) DeductStock(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.DeductStock(ctx, productID, quantity)
}
