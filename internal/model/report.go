package model

// DailyReport rolls up one calendar day of sales and expenses.
type DailyReport struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	TotalSales    float64 `json:"total_sales"`
	TotalProfit   float64 `json:"total_profit"`
	TotalExpenses float64 `json:"total_expenses"`
	NetEarnings   float64 `json:"net_earnings"`
	SalesCount    int     `json:"sales_count"`
	ExpensesCount int     `json:"expenses_count"`
}

// MonthlyReport rolls up a whole month, plus the count of days that closed
// with negative net earnings.
type MonthlyReport struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	TotalSales    float64 `json:"total_sales"`
	TotalProfit   float64 `json:"total_profit"`
	TotalExpenses float64 `json:"total_expenses"`
	NetEarnings   float64 `json:"net_earnings"`
	SalesCount    int     `json:"sales_count"`
	LossDays      int     `json:"loss_days"`
}

// ProductSales is a best-seller row: a product with its lifetime units sold
// and revenue.
type ProductSales struct {
	Product
	TotalSold    int     `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}
