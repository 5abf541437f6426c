package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mobileshop/pos/internal/model"
)

type ReportRepository interface {
	SaleTotalsByDate(ctx context.Context, date string) (totalSales, totalProfit float64, count int, err error)
	SaleTotalsByMonth(ctx context.Context, year, month int) (totalSales, totalProfit float64, count int, err error)
	ExpenseCountByDate(ctx context.Context, date string) (int, error)
	BestSelling(ctx context.Context, limit int) ([]*model.ProductSales, error)
	DeadStock(ctx context.Context) ([]*model.Product, error)
}

type ExpenseTotals interface {
	TotalByDate(ctx context.Context, date string) (float64, error)
	TotalByMonth(ctx context.Context, year, month int) (float64, error)
}

type LowStockLister interface {
	LowStock(ctx context.Context, threshold int) ([]*model.Product, error)
}

// ReportService derives the business reports. Everything is a pure read over
// stored rows; netEarnings = totalProfit - totalExpenses throughout.
type ReportService struct {
	reports           ReportRepository
	expenses          ExpenseTotals
	products          LowStockLister
	lowStockThreshold int
}

func NewReportService(reports ReportRepository, expenses ExpenseTotals, products LowStockLister, lowStockThreshold int) *ReportService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	return &ReportService{
		reports:           reports,
		expenses:          expenses,
		products:          products,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *ReportService) Daily(ctx context.Context, date string) (*model.DailyReport, error) {
	totalSales, totalProfit, salesCount, err := s.reports.SaleTotalsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenses.TotalByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	expensesCount, err := s.reports.ExpenseCountByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &model.DailyReport{
		Date:          date,
		TotalSales:    totalSales,
		TotalProfit:   totalProfit,
		TotalExpenses: totalExpenses,
		NetEarnings:   totalProfit - totalExpenses,
		SalesCount:    salesCount,
		ExpensesCount: expensesCount,
	}, nil
}

func (s *ReportService) Monthly(ctx context.Context, year, month int) (*model.MonthlyReport, error) {
	totalSales, totalProfit, salesCount, err := s.reports.SaleTotalsByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenses.TotalByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	dailies, err := s.DailyForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	lossDays := 0
	for _, d := range dailies {
		if d.NetEarnings < 0 {
			lossDays++
		}
	}

	return &model.MonthlyReport{
		Year:          year,
		Month:         month,
		TotalSales:    totalSales,
		TotalProfit:   totalProfit,
		TotalExpenses: totalExpenses,
		NetEarnings:   totalProfit - totalExpenses,
		SalesCount:    salesCount,
		LossDays:      lossDays,
	}, nil
}

// DailyForMonth returns one report per calendar day. The per-day reads are
// independent, so a context cancellation between days aborts cleanly.
func (s *ReportService) DailyForMonth(ctx context.Context, year, month int) ([]*model.DailyReport, error) {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	reports := make([]*model.DailyReport, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		report, err := s.Daily(ctx, date)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *ReportService) BestSelling(ctx context.Context, limit int) ([]*model.ProductSales, error) {
	return s.reports.BestSelling(ctx, limit)
}

func (s *ReportService) DeadStock(ctx context.Context) ([]*model.Product, error) {
	return s.reports.DeadStock(ctx)
}

func (s *ReportService) LowStock(ctx context.Context) ([]*model.Product, error) {
	return s.products.LowStock(ctx, s.lowStockThreshold)
}
