package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/avelara/pos-be/internal/core/domain"
)

func testProduct(name, price string) domain.Product {
	return domain.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestCart_AddItem(t *testing.T) {
	t.Run("appends_new_line_item", func(t *testing.T) {
		p := testProduct("Item 1", "5.00")

		cart := domain.Cart{}.AddItem(p, 1)

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, p.ID, items[0].ProductID)
		assert.Equal(t, "Item 1", items[0].Name)
		assert.Equal(t, 1, items[0].Quantity)
		assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("5.00")))
	})

	t.Run("merges_repeat_adds_into_one_line_item", func(t *testing.T) {
		p := testProduct("Item 1", "5.00")

		cart := domain.Cart{}.AddItem(p, 1).AddItem(p, 2)

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)

		totals := cart.ComputeTotals(decimal.RequireFromString("0.05"), 2)
		assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("15.00")),
			"expected subtotal 15.00, got %s", totals.Subtotal)
	})

	t.Run("preserves_insertion_order", func(t *testing.T) {
		a := testProduct("A", "1.00")
		b := testProduct("B", "2.00")
		c := testProduct("C", "3.00")

		cart := domain.Cart{}.AddItem(a, 1).AddItem(b, 1).AddItem(c, 1).AddItem(a, 1)

		items := cart.Items()
		require.Len(t, items, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{items[0].Name, items[1].Name, items[2].Name})
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("does_not_mutate_the_receiver", func(t *testing.T) {
		p := testProduct("Item 1", "5.00")
		before := domain.Cart{}.AddItem(p, 1)

		_ = before.AddItem(p, 5)

		require.Len(t, before.Items(), 1)
		assert.Equal(t, 1, before.Items()[0].Quantity)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	p := testProduct("Item 1", "5.00")

	tests := []struct {
		name        string
		startQty    int
		delta       int
		wantRemoved bool
		wantQty     int
	}{
		{name: "increments_quantity", startQty: 1, delta: 2, wantQty: 3},
		{name: "decrements_quantity", startQty: 3, delta: -1, wantQty: 2},
		{name: "removes_line_item_at_zero", startQty: 1, delta: -1, wantRemoved: true},
		{name: "clamps_below_zero_and_removes", startQty: 2, delta: -10, wantRemoved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.Cart{}.AddItem(p, tt.startQty).UpdateQuantity(p.ID, tt.delta)

			if tt.wantRemoved {
				assert.Equal(t, 0, cart.Len())
				return
			}
			items := cart.Items()
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantQty, items[0].Quantity)
		})
	}

	t.Run("unknown_product_id_is_a_noop", func(t *testing.T) {
		cart := domain.Cart{}.AddItem(p, 2)

		updated := cart.UpdateQuantity(uuid.New(), -1)

		assert.Equal(t, cart.Items(), updated.Items())
	})
}

func TestCart_ComputeTotals(t *testing.T) {
	taxRate := decimal.RequireFromString("0.05")

	t.Run("empty_cart_yields_all_zero_totals", func(t *testing.T) {
		totals := domain.Cart{}.ComputeTotals(taxRate, 2)

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.GrandTotal.IsZero())
		assert.Equal(t, 0, totals.ItemCount)
	})

	t.Run("computes_subtotal_tax_and_grand_total", func(t *testing.T) {
		a := testProduct("A", "5.00")
		b := testProduct("B", "2.50")
		cart := domain.Cart{}.AddItem(a, 3).AddItem(b, 2)

		totals := cart.ComputeTotals(taxRate, 2)

		assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("20.00")))
		assert.True(t, totals.Tax.Equal(decimal.RequireFromString("1.00")))
		assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("21.00")))
		assert.Equal(t, 5, totals.ItemCount)
	})

	t.Run("tax_is_rounded_to_currency_precision", func(t *testing.T) {
		p := testProduct("A", "0.99")
		cart := domain.Cart{}.AddItem(p, 1)

		totals := cart.ComputeTotals(taxRate, 2)

		// 0.99 * 0.05 = 0.0495, rounds to 0.05
		assert.True(t, totals.Tax.Equal(decimal.RequireFromString("0.05")),
			"expected tax 0.05, got %s", totals.Tax)
		assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.Tax)))
	})
}

// TestCart_Invariants drives random op sequences against the cart and
// checks the structural invariants after every step.
func TestCart_Invariants(t *testing.T) {
	products := []domain.Product{
		testProduct("A", "0.99"),
		testProduct("B", "5.00"),
		testProduct("C", "12.75"),
		testProduct("D", "19.99"),
	}
	taxRate := decimal.RequireFromString("0.05")

	rapid.Check(t, func(rt *rapid.T) {
		cart := domain.Cart{}
		steps := rapid.IntRange(0, 60).Draw(rt, "steps")

		for i := 0; i < steps; i++ {
			p := products[rapid.IntRange(0, len(products)-1).Draw(rt, "product")]
			if rapid.Bool().Draw(rt, "add") {
				cart = cart.AddItem(p, rapid.IntRange(1, 5).Draw(rt, "qty"))
			} else {
				cart = cart.UpdateQuantity(p.ID, rapid.IntRange(-4, 4).Draw(rt, "delta"))
			}

			seen := make(map[uuid.UUID]bool)
			for _, li := range cart.Items() {
				if seen[li.ProductID] {
					rt.Fatalf("duplicate line item for product %s", li.ProductID)
				}
				seen[li.ProductID] = true
				if li.Quantity <= 0 {
					rt.Fatalf("retained line item with quantity %d", li.Quantity)
				}
			}
		}

		totals := cart.ComputeTotals(taxRate, 2)

		wantCount := 0
		wantSubtotal := decimal.Zero
		for _, li := range cart.Items() {
			wantCount += li.Quantity
			wantSubtotal = wantSubtotal.Add(li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))))
		}

		if totals.ItemCount != wantCount {
			rt.Fatalf("item count %d, want %d", totals.ItemCount, wantCount)
		}
		if !totals.Subtotal.Equal(wantSubtotal) {
			rt.Fatalf("subtotal %s, want %s", totals.Subtotal, wantSubtotal)
		}
		if !totals.GrandTotal.Equal(totals.Subtotal.Add(totals.Tax)) {
			rt.Fatalf("grand total %s != subtotal %s + tax %s",
				totals.GrandTotal, totals.Subtotal, totals.Tax)
		}
	})
}
