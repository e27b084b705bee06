package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/pos-be/internal/core/services"
	"github.com/avelara/pos-be/test/helpers"
)

func newTestCart() *services.CartService {
	return services.NewCartService(decimal.RequireFromString("0.05"), 2, helpers.TestLogger())
}

func TestCartService_AddItem(t *testing.T) {
	cart := newTestCart()
	p := helpers.CreateTestProduct()

	cart.AddItem(*p, 1)
	cart.AddItem(*p, 2)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, p.ID, items[0].ProductID)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cart := newTestCart()
	p := helpers.CreateTestProduct()
	cart.AddItem(*p, 1)

	cart.UpdateQuantity(p.ID, -1)

	assert.Empty(t, cart.Items())

	// unknown id after removal is still a no-op
	cart.UpdateQuantity(uuid.New(), 5)
	assert.Empty(t, cart.Items())
}

func TestCartService_Totals(t *testing.T) {
	cart := newTestCart()

	totals := cart.Totals()
	assert.Equal(t, 0, totals.ItemCount)
	assert.True(t, totals.GrandTotal.IsZero())

	p := helpers.CreateTestProduct() // 10.00
	cart.AddItem(*p, 2)

	totals = cart.Totals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("1.00")))
	assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("21.00")))
}

func TestCartService_Clear(t *testing.T) {
	cart := newTestCart()
	p := helpers.CreateTestProduct()
	cart.AddItem(*p, 3)
	require.NotEmpty(t, cart.Items())

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.Totals().ItemCount)
}
