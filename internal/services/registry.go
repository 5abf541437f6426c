package services

import (
	"time"

	"github.com/mobileshop/pos/internal/pos"
	"github.com/mobileshop/pos/pkg/sqlite"
)

// Registry is the full typed surface handed to the presentation layer. The
// UI never touches the store file; everything it can do is a method on one
// of these services (plus the raw gateway operations on Store for backup
// and restore).
type Registry struct {
	Products  *ProductService
	Customers *CustomerService
	Expenses  *ExpenseService
	Settings  *SettingsService
	Sales     *SaleService
	Reports   *ReportService
	Auth      *AuthService
	Scans     *pos.ScanService
	Store     *sqlite.DB

	scanDebounce  time.Duration
	scanQuiescent time.Duration
}

// SetScanWindows records the configured keystroke timing for NewScanner.
func (r *Registry) SetScanWindows(debounce, quiescent time.Duration) {
	r.scanDebounce = debounce
	r.scanQuiescent = quiescent
}

// NewScanner builds a keystroke scanner with the configured timing windows.
// The presentation layer owns the dispatch callback; one scanner per open
// checkout screen.
func (r *Registry) NewScanner(dispatch func(code string)) *pos.Scanner {
	return pos.NewScanner(r.scanDebounce, r.scanQuiescent, dispatch)
}
