package client

import (
	"context"
	"errors"
	"sync"

	"food-ordering/internal/domain"
)

// CartLine pairs a menu item with how many of it the customer wants.
type CartLine struct {
	MenuItem domain.MenuItem
	Quantity int
}

// Cart accumulates line items for one customer session. Total and ItemCount
// are recomputed inside the same critical section as every mutation, so no
// caller can ever observe them disagreeing with the lines.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
	total float64
	count int
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the item in the cart, stacking onto an existing
// line when the item is already there.
func (c *Cart) AddItem(item domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.ID == item.ID {
			c.lines[i].Quantity++
			c.recompute()
			return
		}
	}
	c.lines = append(c.lines, CartLine{MenuItem: item, Quantity: 1})
	c.recompute()
}

func (c *Cart) RemoveItem(menuItemID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(menuItemID)
	c.recompute()
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
// Nothing is ever rejected here, only clamped.
func (c *Cart) UpdateQuantity(menuItemID uint64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(menuItemID)
		c.recompute()
		return
	}
	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			c.lines[i].Quantity = quantity
			break
		}
	}
	c.recompute()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.recompute()
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Lines returns a snapshot of the cart contents.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// BuildPayload turns the cart into an order submission body. The server
// recomputes the total from its own prices; the cart total is display data.
func (c *Cart) BuildPayload(customerName, phone, email, address string, orderType domain.OrderType) OrderPayload {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := OrderPayload{
		CustomerName:    customerName,
		CustomerPhone:   phone,
		CustomerEmail:   email,
		DeliveryAddress: address,
		OrderType:       orderType,
	}
	for _, line := range c.lines {
		payload.Items = append(payload.Items, OrderLine{
			MenuItemID: line.MenuItem.ID,
			Quantity:   line.Quantity,
		})
	}
	return payload
}

var ErrEmptyCart = errors.New("cart is empty")

// Checkout submits the cart and clears it only when submission succeeds.
func (c *Cart) Checkout(ctx context.Context, api *APIClient, payload OrderPayload) (*OrderReceipt, error) {
	if len(payload.Items) == 0 {
		return nil, ErrEmptyCart
	}
	receipt, err := api.SubmitOrder(ctx, payload)
	if err != nil {
		return nil, err
	}
	c.Clear()
	return receipt, nil
}

func (c *Cart) recompute() {
	total := 0.0
	count := 0
	for _, line := range c.lines {
		total += line.MenuItem.Price * float64(line.Quantity)
		count += line.Quantity
	}
	c.total = total
	c.count = count
}

func (c *Cart) removeLocked(menuItemID uint64) {
	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}
