// Package pos holds the point-of-sale screen logic that runs before any row
// is written: the in-memory cart and the barcode scan aggregation.
package pos

import (
	"errors"

	"github.com/mobileshop/pos/internal/model"
)

var (
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrStockLimit is returned when a line would exceed the stock known
	// at scan time.
	ErrStockLimit = errors.New("stock limit reached")
)

// CartLine is one unsaved sale line. Price and profit are snapshots taken at
// scan time; later price edits on the product do not touch an open cart.
type CartLine struct {
	Product  model.Product
	Quantity int
	Price    float64
	Total    float64
	Profit   float64
}

type Cart struct {
	lines []*CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add aggregates by product: a product already in the cart gets its quantity
// incremented, capped at the stock known at scan time; a new product becomes
// a new line at quantity 1.
func (c *Cart) Add(p *model.Product) error {
	if p.StockQuantity <= 0 {
		return ErrOutOfStock
	}

	for _, line := range c.lines {
		if line.Product.ID == p.ID {
			if line.Quantity >= p.StockQuantity {
				return ErrStockLimit
			}
			line.Quantity++
			line.recompute()
			return nil
		}
	}

	line := &CartLine{
		Product:  *p,
		Quantity: 1,
		Price:    p.SellingPrice,
	}
	line.recompute()
	c.lines = append(c.lines, line)
	return nil
}

func (l *CartLine) recompute() {
	l.Total = float64(l.Quantity) * l.Price
	l.Profit = float64(l.Quantity) * (l.Price - l.Product.PurchasePrice)
}

// SetQuantity adjusts a line; a quantity below 1 removes it.
func (c *Cart) SetQuantity(productID int64, quantity int) error {
	if quantity < 1 {
		c.Remove(productID)
		return nil
	}
	for _, line := range c.lines {
		if line.Product.ID == productID {
			if quantity > line.Product.StockQuantity {
				return ErrStockLimit
			}
			line.Quantity = quantity
			line.recompute()
			return nil
		}
	}
	return nil
}

func (c *Cart) Remove(productID int64) {
	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy; the cart stays the only mutator of its lines.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, line := range c.lines {
		out[i] = *line
	}
	return out
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Total
	}
	return sum
}

func (c *Cart) Total(discount float64) float64 {
	return c.Subtotal() - discount
}

func (c *Cart) Profit() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Profit
	}
	return sum
}

// ToSaleLines converts the cart into the checkout request payload.
func (c *Cart) ToSaleLines() []model.SaleLine {
	lines := make([]model.SaleLine, len(c.lines))
	for i, line := range c.lines {
		lines[i] = model.SaleLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Total:     line.Total,
			Profit:    line.Profit,
		}
	}
	return lines
}
