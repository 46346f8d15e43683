package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id ProductID, price float64) *Product {
	t.Helper()
	p, err := NewProduct(id, "Samsung", "Toaster", 4, price)
	require.NoError(t, err)
	return p
}

func TestCartStartsEmpty(t *testing.T) {
	c := NewCart()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Items())
	assert.Equal(t, 0.0, c.Total())
}

func TestCartAddMergesQuantities(t *testing.T) {
	c := NewCart()
	p := mustProduct(t, 1, 100)

	require.NoError(t, c.AddItem(p, 2))
	require.NoError(t, c.AddItem(p, 3))

	assert.Equal(t, 5, c.Quantity(p.ID()))
	assert.Equal(t, 1, c.Len())
}

func TestCartRemoveClampsToDeletion(t *testing.T) {
	c := NewCart()
	p := mustProduct(t, 1, 100)
	require.NoError(t, c.AddItem(p, 5))

	require.NoError(t, c.RemoveItem(p, 10))

	assert.Equal(t, 0, c.Quantity(p.ID()))
	_, ok := c.Items()[p.ID()]
	assert.False(t, ok)
	assert.True(t, c.IsEmpty())
}

func TestCartRemoveExactQuantityDeletes(t *testing.T) {
	c := NewCart()
	p := mustProduct(t, 1, 100)
	require.NoError(t, c.AddItem(p, 2))

	require.NoError(t, c.RemoveItem(p, 2))
	assert.True(t, c.IsEmpty())
}

func TestCartRemoveDecrements(t *testing.T) {
	c := NewCart()
	p := mustProduct(t, 1, 100)
	require.NoError(t, c.AddItem(p, 5))

	require.NoError(t, c.RemoveItem(p, 2))
	assert.Equal(t, 3, c.Quantity(p.ID()))
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	c := NewCart()
	present := mustProduct(t, 1, 100)
	absent := mustProduct(t, 2, 100)
	require.NoError(t, c.AddItem(present, 1))

	assert.NoError(t, c.RemoveItem(absent, 1))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Quantity(present.ID()))
}

func TestCartRejectsInvalidArguments(t *testing.T) {
	c := NewCart()
	p := mustProduct(t, 1, 100)

	assert.ErrorIs(t, c.AddItem(nil, 1), ErrInvalidArgument)
	assert.ErrorIs(t, c.AddItem(p, 0), ErrInvalidArgument)
	assert.ErrorIs(t, c.AddItem(p, -1), ErrInvalidArgument)
	assert.ErrorIs(t, c.RemoveItem(nil, 1), ErrInvalidArgument)
	assert.ErrorIs(t, c.RemoveItem(p, 0), ErrInvalidArgument)
	assert.True(t, c.IsEmpty())
}

func TestCartRejectedRemoveLeavesEntry(t *testing.T) {
	c := NewCart()
	p := mustProduct(t, 1, 100)
	require.NoError(t, c.AddItem(p, 3))

	assert.ErrorIs(t, c.RemoveItem(p, -2), ErrInvalidArgument)
	assert.Equal(t, 3, c.Quantity(p.ID()))
}

func TestCartItemsIsSnapshot(t *testing.T) {
	c := NewCart()
	p := mustProduct(t, 1, 100)
	require.NoError(t, c.AddItem(p, 1))

	items := c.Items()
	items[p.ID()] = CartItem{Product: p, Quantity: 99}
	delete(items, p.ID())
	items[42] = CartItem{Product: p, Quantity: 1}

	assert.Equal(t, 1, c.Quantity(p.ID()))
	assert.Equal(t, 1, c.Len())
}

func TestCartSameFieldsDifferentProductsAreDistinct(t *testing.T) {
	c := NewCart()
	a := mustProduct(t, 1, 100)
	b := mustProduct(t, 2, 100)

	require.NoError(t, c.AddItem(a, 1))
	require.NoError(t, c.AddItem(b, 1))

	assert.Equal(t, 2, c.Len())
}

func TestCartLinesKeepInsertionOrder(t *testing.T) {
	c := NewCart()
	first := mustProduct(t, 3, 100)
	second := mustProduct(t, 1, 100)
	third := mustProduct(t, 2, 100)
	require.NoError(t, c.AddItem(first, 1))
	require.NoError(t, c.AddItem(second, 1))
	require.NoError(t, c.AddItem(third, 1))
	require.NoError(t, c.RemoveItem(second, 1))
	require.NoError(t, c.AddItem(first, 1))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, first.ID(), lines[0].Product.ID())
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, third.ID(), lines[1].Product.ID())
}

func TestCartTotalRoundsToCents(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddItem(mustProduct(t, 1, 0.1), 3))
	require.NoError(t, c.AddItem(mustProduct(t, 2, 0.2), 1))

	assert.Equal(t, 0.5, c.Total())
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 1.23, RoundCents(1.234))
	assert.Equal(t, 1.24, RoundCents(1.236))
	assert.Equal(t, 0.3, RoundCents(0.1+0.2))
}
