// internal/core/domain/cart.go
package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one product-and-quantity entry in an active cart.
type LineItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is the ordered sequence of line items in the current
// transaction. Insertion order is preserved for display. Mutations
// return a new Cart value; the receiver is never modified.
//
// Invariant: at most one LineItem per product id, and no LineItem with
// zero quantity is ever retained.
type Cart struct {
	items []LineItem
}

// Items returns the line items in insertion order. The returned slice
// is a copy and safe for the caller to hold.
func (c Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct line items.
func (c Cart) Len() int {
	return len(c.items)
}

// AddItem merges qty into the existing line item for the product, or
// appends a new one. qty must be positive; that is the caller's
// contract, not a recoverable error.
func (c Cart) AddItem(p Product, qty int) Cart {
	items := c.Items()
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += qty
			return Cart{items: items}
		}
	}
	items = append(items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  qty,
	})
	return Cart{items: items}
}

// UpdateQuantity adjusts the quantity of the line item for productID by
// delta, clamped at zero. A line item that reaches zero is removed.
// Unknown product ids are a no-op.
func (c Cart) UpdateQuantity(productID uuid.UUID, delta int) Cart {
	items := make([]LineItem, 0, len(c.items))
	for _, li := range c.items {
		if li.ProductID == productID {
			li.Quantity += delta
			if li.Quantity <= 0 {
				continue
			}
		}
		items = append(items, li)
	}
	return Cart{items: items}
}

// Totals holds the derived values of a cart. They are recomputed on
// every call and never stored.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	ItemCount  int             `json:"item_count"`
}

// ComputeTotals derives subtotal, tax and grand total from the line
// items. Tax is rounded to precision decimal places; the grand total is
// exactly subtotal plus rounded tax. An empty cart yields all zeros.
func (c Cart) ComputeTotals(taxRate decimal.Decimal, precision int32) Totals {
	subtotal := decimal.Zero
	count := 0
	for _, li := range c.items {
		subtotal = subtotal.Add(li.Subtotal())
		count += li.Quantity
	}

	tax := subtotal.Mul(taxRate).Round(precision)
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
		ItemCount:  count,
	}
}
