package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/internal/repository"
	"github.com/mobileshop/pos/pkg/logger"
	"github.com/mobileshop/pos/pkg/prom"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNegativeDiscount  = errors.New("discount cannot be negative")
	ErrInvalidTotal      = errors.New("total amount must be greater than zero")
	ErrInvalidQuantity   = errors.New("line quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock for sale")
)

type SaleRepository interface {
	Create(ctx context.Context, sale *model.Sale, items []*model.SaleItem) (*model.Sale, error)
	GetByID(ctx context.Context, id int64) (*model.Sale, error)
	Last(ctx context.Context) (*model.Sale, error)
	ListByDate(ctx context.Context, date string) ([]*model.Sale, error)
	ListByMonth(ctx context.Context, year, month int) ([]*model.Sale, error)
	Items(ctx context.Context, saleID int64) ([]*model.SaleItem, error)
}

type StockDeducter interface {
	DeductStock(ctx context.Context, productID int64, quantity int) error
}

type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SaleService owns the sale transaction flow: one cart becomes one sale row,
// its item rows, and the matching stock decrements, all inside a single
// transaction. Either everything lands or the store is untouched.
type SaleService struct {
	saleRepo    SaleRepository
	productRepo StockDeducter
	tx          Transactor
	now         func() time.Time
}

func NewSaleService(saleRepo SaleRepository, productRepo StockDeducter, tx Transactor) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		tx:          tx,
		now:         time.Now,
	}
}

func (s *SaleService) Create(ctx context.Context, req model.SaleCreateRequest) (*model.Sale, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if req.Discount < 0 {
		return nil, ErrNegativeDiscount
	}

	var subtotal, profit float64
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		subtotal += line.Total
		profit += line.Profit
	}

	total := subtotal - req.Discount
	if total <= 0 {
		return nil, ErrInvalidTotal
	}

	sale := &model.Sale{
		InvoiceNumber: s.generateInvoiceNumber(),
		CustomerID:    req.CustomerID,
		TotalAmount:   total,
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		Profit:        profit,
	}

	items := make([]*model.SaleItem, len(req.Lines))
	for i, line := range req.Lines {
		items[i] = &model.SaleItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Total:     line.Total,
			Profit:    line.Profit,
		}
	}

	var created *model.Sale
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		res, err := s.saleRepo.Create(ctx, sale, items)
		if err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		created = res

		for _, item := range items {
			if err := s.productRepo.DeductStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return ErrInsufficientStock
				}
				return fmt.Errorf("deduct stock for product %d: %w", item.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		prom.IncCounterVec(prom.SystemSales, prom.MetricSalesCompleted, "failure")
		return nil, err
	}

	prom.IncCounterVec(prom.SystemSales, prom.MetricSalesCompleted, "success")
	logger.Info("sale completed", "invoice", created.InvoiceNumber, "total", created.TotalAmount)
	return created, nil
}

// generateInvoiceNumber builds INV-YYYYMMDD-RRRR with a 4-digit random
// suffix. A collision is rejected by the unique constraint on insert; the
// operator simply retries the checkout.
func (s *SaleService) generateInvoiceNumber() string {
	return fmt.Sprintf("INV-%s-%04d", s.now().Format("20060102"), rand.Intn(10000))
}

func (s *SaleService) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}

func (s *SaleService) Last(ctx context.Context) (*model.Sale, error) {
	return s.saleRepo.Last(ctx)
}

func (s *SaleService) ListByDate(ctx context.Context, date string) ([]*model.Sale, error) {
	return s.saleRepo.ListByDate(ctx, date)
}

func (s *SaleService) ListByMonth(ctx context.Context, year, month int) ([]*model.Sale, error) {
	return s.saleRepo.ListByMonth(ctx, year, month)
}

func (s *SaleService) Items(ctx context.Context, saleID int64) ([]*model.SaleItem, error) {
	return s.saleRepo.Items(ctx, saleID)
}
