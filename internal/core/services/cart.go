// internal/core/services/cart.go
package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avelara/pos-be/internal/core/domain"
)

// CartService owns the cart of the current POS transaction. It binds
// the value-level cart to the configured tax rate and currency
// precision, and is driven synchronously by the checkout screen's
// event handlers.
type CartService struct {
	cart      domain.Cart
	taxRate   decimal.Decimal
	precision int32
	logger    *slog.Logger
}

// NewCartService creates a cart service with an empty cart.
func NewCartService(taxRate decimal.Decimal, precision int32, logger *slog.Logger) *CartService {
	return &CartService{
		taxRate:   taxRate,
		precision: precision,
		logger:    logger.With(slog.String("service", "cart")),
	}
}

// AddItem adds qty units of the product to the cart, merging into an
// existing line item when the product is already present. qty must be
// positive.
func (s *CartService) AddItem(p domain.Product, qty int) {
	s.cart = s.cart.AddItem(p, qty)

	s.logger.Debug("added to cart",
		slog.String("product_id", p.ID.String()),
		slog.String("name", p.Name),
		slog.Int("qty", qty))
}

// UpdateQuantity applies a quantity delta to the product's line item,
// removing it when the quantity reaches zero. Unknown ids are a no-op.
func (s *CartService) UpdateQuantity(productID uuid.UUID, delta int) {
	s.cart = s.cart.UpdateQuantity(productID, delta)

	s.logger.Debug("updated cart quantity",
		slog.String("product_id", productID.String()),
		slog.Int("delta", delta))
}

// Items returns the current line items in insertion order.
func (s *CartService) Items() []domain.LineItem {
	return s.cart.Items()
}

// Totals recomputes the derived totals for the current cart.
func (s *CartService) Totals() domain.Totals {
	return s.cart.ComputeTotals(s.taxRate, s.precision)
}

// Clear empties the cart, as happens when a transaction completes.
func (s *CartService) Clear() {
	s.cart = domain.Cart{}
	s.logger.Debug("cart cleared")
}
