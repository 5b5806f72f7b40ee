package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	var cart Cart
	p := Product{ID: 1, Name: "Nasi Goreng", Price: 25000}

	cart.Add(p)
	cart.Add(p)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].Quantity)
}

func TestCart_AddKeepsInsertionOrder(t *testing.T) {
	var cart Cart
	cart.Add(Product{ID: 2, Price: 5000})
	cart.Add(Product{ID: 1, Price: 25000})
	cart.Add(Product{ID: 2, Price: 5000})

	assert.Equal(t, uint64(2), cart.Lines[0].Product.ID)
	assert.Equal(t, uint64(1), cart.Lines[1].Product.ID)
}

func TestCart_Remove(t *testing.T) {
	var cart Cart
	cart.Add(Product{ID: 1})
	cart.Add(Product{ID: 2})

	cart.Remove(1)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, uint64(2), cart.Lines[0].Product.ID)

	// Removing an absent id is a no-op.
	cart.Remove(99)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_SetQuantity(t *testing.T) {
	var cart Cart
	cart.Add(Product{ID: 1})

	cart.SetQuantity(1, 5)
	assert.Equal(t, int64(5), cart.Lines[0].Quantity)

	cart.SetQuantity(1, 0)
	assert.Empty(t, cart.Lines)

	cart.Add(Product{ID: 2})
	cart.SetQuantity(2, -3)
	assert.Empty(t, cart.Lines)
}

func TestCart_SetQuantityUnknownProductIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(Product{ID: 1})

	cart.SetQuantity(42, 3)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Lines[0].Quantity)
}

func TestCart_Totals(t *testing.T) {
	var cart Cart
	cart.Add(Product{ID: 1, Price: 10000})
	cart.SetQuantity(1, 2)
	cart.Add(Product{ID: 2, Price: 5000})

	assert.Equal(t, int64(3), cart.TotalItems())
	assert.Equal(t, int64(25000), cart.TotalPrice())
}

func TestCart_TotalPriceUsesCapturedPrice(t *testing.T) {
	var cart Cart
	cart.Add(Product{ID: 1, Price: 10000})

	// A later catalog price change must not affect the captured line price.
	cart.SetQuantity(1, 3)

	assert.Equal(t, int64(30000), cart.TotalPrice())
}

func TestCart_Clear(t *testing.T) {
	var cart Cart
	cart.Add(Product{ID: 1, Price: 10000})
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.TotalItems())
	assert.Equal(t, int64(0), cart.TotalPrice())
}
