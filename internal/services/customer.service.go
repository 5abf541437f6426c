package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mobileshop/pos/internal/model"
)

var ErrEmptyCustomerName = errors.New("customer name cannot be empty")

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	Purchases(ctx context.Context, customerID int64) ([]*model.CustomerPurchase, error)
}

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, ErrEmptyCustomerName
	}
	return s.repo.Create(ctx, c)
}

func (s *CustomerService) Update(ctx context.Context, c *model.Customer) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrEmptyCustomerName
	}
	return s.repo.Update(ctx, c)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*model.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Purchases(ctx context.Context, customerID int64) ([]*model.CustomerPurchase, error) {
	return s.repo.Purchases(ctx, customerID)
}
