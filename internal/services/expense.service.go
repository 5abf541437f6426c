package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mobileshop/pos/internal/model"
)

var (
	ErrEmptyExpenseCategory = errors.New("expense category cannot be empty")
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")
	ErrInvalidExpenseDate   = errors.New("expense date must be YYYY-MM-DD")
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) (*model.Expense, error)
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Expense, error)
	ListByDate(ctx context.Context, date string) ([]*model.Expense, error)
	ListByMonth(ctx context.Context, year, month int) ([]*model.Expense, error)
	TotalByDate(ctx context.Context, date string) (float64, error)
	TotalByMonth(ctx context.Context, year, month int) (float64, error)
}

type ExpenseService struct {
	repo ExpenseRepository
}

func NewExpenseService(repo ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

func (s *ExpenseService) Create(ctx context.Context, req model.ExpenseCreateRequest) (*model.Expense, error) {
	e := &model.Expense{
		Category:    strings.TrimSpace(req.Category),
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Date:        strings.TrimSpace(req.Date),
	}
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, e)
}

func (s *ExpenseService) Update(ctx context.Context, e *model.Expense) error {
	e.Category = strings.TrimSpace(e.Category)
	if err := validateExpense(e); err != nil {
		return err
	}
	return s.repo.Update(ctx, e)
}

func validateExpense(e *model.Expense) error {
	if e.Category == "" {
		return ErrEmptyExpenseCategory
	}
	if e.Amount <= 0 {
		return ErrInvalidExpenseAmount
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return ErrInvalidExpenseDate
	}
	return nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *ExpenseService) List(ctx context.Context) ([]*model.Expense, error) {
	return s.repo.List(ctx)
}

func (s *ExpenseService) ListByDate(ctx context.Context, date string) ([]*model.Expense, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *ExpenseService) ListByMonth(ctx context.Context, year, month int) ([]*model.Expense, error) {
	return s.repo.ListByMonth(ctx, year, month)
}

func (s *ExpenseService) TotalByDate(ctx context.Context, date string) (float64, error) {
	return s.repo.TotalByDate(ctx, date)
}

func (s *ExpenseService) TotalByMonth(ctx context.Context, year, month int) (float64, error) {
	return s.repo.TotalByMonth(ctx, year, month)
}
