package model

import (
	"fmt"
	"math"
)

// CartItem is a product together with how many of it are in a cart
type CartItem struct {
	Product  *Product
	Quantity int
}

// Subtotal is price times quantity, unrounded
func (i CartItem) Subtotal() float64 {
	return i.Product.Price() * float64(i.Quantity)
}

// Cart maps products to positive quantities. An entry whose quantity
// would drop to zero or below is removed.
type Cart struct {
	items map[ProductID]*CartItem
	order []ProductID // insertion order, for stable display
}

// NewCart creates an empty Cart
func NewCart() *Cart {
	return &Cart{items: make(map[ProductID]*CartItem)}
}

// AddItem adds quantity units of product, merging with any existing entry
func (c *Cart) AddItem(product *Product, quantity int) error {
	if err := validateCartArgs(product, quantity); err != nil {
		return err
	}

	if item, ok := c.items[product.ID()]; ok {
		item.Quantity += quantity
		return nil
	}
	c.items[product.ID()] = &CartItem{Product: product, Quantity: quantity}
	c.order = append(c.order, product.ID())
	return nil
}

// RemoveItem takes quantity units of product out of the cart. Removing at
// least as many as are present deletes the entry; an absent product is a no-op.
func (c *Cart) RemoveItem(product *Product, quantity int) error {
	if err := validateCartArgs(product, quantity); err != nil {
		return err
	}

	item, ok := c.items[product.ID()]
	if !ok {
		return nil
	}
	if item.Quantity <= quantity {
		c.delete(product.ID())
		return nil
	}
	item.Quantity -= quantity
	return nil
}

// Items returns a copy of the cart contents keyed by product id
func (c *Cart) Items() map[ProductID]CartItem {
	snapshot := make(map[ProductID]CartItem, len(c.items))
	for id, item := range c.items {
		snapshot[id] = *item
	}
	return snapshot
}

// Lines returns a copy of the cart contents in the order products were first added
func (c *Cart) Lines() []CartItem {
	lines := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.items[id])
	}
	return lines
}

// Quantity returns how many units of the product are in the cart
func (c *Cart) Quantity(id ProductID) int {
	if item, ok := c.items[id]; ok {
		return item.Quantity
	}
	return 0
}

func (c *Cart) Len() int      { return len(c.items) }
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Total sums price times quantity over every entry, rounded to 2 decimals
func (c *Cart) Total() float64 {
	var total float64
	for _, id := range c.order {
		total += c.items[id].Subtotal()
	}
	return RoundCents(total)
}

func (c *Cart) delete(id ProductID) {
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func validateCartArgs(product *Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("%w: product is required", ErrInvalidArgument)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer, got %d", ErrInvalidArgument, quantity)
	}
	return nil
}

// RoundCents rounds v to 2 decimal places
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
