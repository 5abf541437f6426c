package repository

import (
	"context"
	"fmt"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/pkg/sqlite"
)

// ReportRepository holds the read-side aggregation queries over sales,
// sale_items, products and expenses. Everything here is deterministic over
// stored rows; the sums happen in SQL, not in Go.
type ReportRepository struct {
	*sqlite.DB
}

func NewReportRepository(db *sqlite.DB) *ReportRepository {
	return &ReportRepository{
		db,
	}
}

type saleTotals struct {
	TotalSales  float64 `gorm:"column:total_sales"`
	TotalProfit float64 `gorm:"column:total_profit"`
	SalesCount  int     `gorm:"column:sales_count"`
}

// SaleTotalsByDate sums total_amount and profit over one calendar day.
func (r *ReportRepository) SaleTotalsByDate(ctx context.Context, date string) (totalSales, totalProfit float64, count int, err error) {
	var t saleTotals
	err = r.Read(ctx).
		Table("sales").
		Select("COALESCE(SUM(total_amount), 0) AS total_sales, COALESCE(SUM(profit), 0) AS total_profit, COUNT(*) AS sales_count").
		Where("DATE(created_at) = ?", date).
		Scan(&t).Error
	return t.TotalSales, t.TotalProfit, t.SalesCount, err
}

func (r *ReportRepository) SaleTotalsByMonth(ctx context.Context, year, month int) (totalSales, totalProfit float64, count int, err error) {
	var t saleTotals
	err = r.Read(ctx).
		Table("sales").
		Select("COALESCE(SUM(total_amount), 0) AS total_sales, COALESCE(SUM(profit), 0) AS total_profit, COUNT(*) AS sales_count").
		Where("strftime('%Y', created_at) = ? AND strftime('%m', created_at) = ?",
			fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month)).
		Scan(&t).Error
	return t.TotalSales, t.TotalProfit, t.SalesCount, err
}

// ExpenseCountByDate counts expense rows of one calendar day.
func (r *ReportRepository) ExpenseCountByDate(ctx context.Context, date string) (int, error) {
	var count int64
	err := r.Read(ctx).Model(&ExpenseEntity{}).
		Where("date = ?", date).
		Count(&count).Error
	return int(count), err
}

// BestSelling groups sale items per product and orders by units sold.
func (r *ReportRepository) BestSelling(ctx context.Context, limit int) ([]*model.ProductSales, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []struct {
		ProductEntity
		TotalSold    int     `gorm:"column:total_sold"`
		TotalRevenue float64 `gorm:"column:total_revenue"`
	}

	err := r.Read(ctx).
		Table("products p").
		Select("p.*, SUM(si.quantity) AS total_sold, SUM(si.total) AS total_revenue").
		Joins("JOIN sale_items si ON p.id = si.product_id").
		Group("p.id").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*model.ProductSales, len(rows))
	for i, row := range rows {
		out[i] = &model.ProductSales{
			Product:      *toProductModel(&row.ProductEntity),
			TotalSold:    row.TotalSold,
			TotalRevenue: row.TotalRevenue,
		}
	}
	return out, nil
}

// DeadStock returns products that hold stock but have never been sold.
func (r *ReportRepository) DeadStock(ctx context.Context) ([]*model.Product, error) {
	var entities []*ProductEntity
	err := r.Read(ctx).
		Table("products").
		Where("stock_quantity > 0 AND id NOT IN (SELECT DISTINCT product_id FROM sale_items)").
		Order("stock_quantity DESC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toProductModels(entities), nil
}
