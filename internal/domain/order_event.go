package domain

import "time"

// OrderPlacedEvent is published after a successful checkout.
type OrderPlacedEvent struct {
	OrderID       uint64    `json:"order_id"`
	CustomerEmail string    `json:"customer_email"`
	TotalAmount   int64     `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}
