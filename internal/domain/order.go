package domain

import "time"

// OrderStatus labels are owned by the BiteSwift API. The set is open; only
// the labels the storefront knows about are named here.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderDraft is the checkout payload before the server accepts it.
type OrderDraft struct {
	CustomerEmail   string           `json:"customer_email"`
	CustomerName    string           `json:"customer_name"`
	ShippingAddress string           `json:"shipping_address"`
	OrderItems      []OrderDraftItem `json:"order_items"`
}

// OrderDraftItem references a product and the quantity to order.
type OrderDraftItem struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// OrderItem is one line on a confirmed order. PriceAtTime is
// server-authoritative but may come back zero, in which case the checkout
// flow backfills it from the cart snapshot for display.
type OrderItem struct {
	ID          uint64 `json:"id"`
	ProductID   uint64 `json:"product_id"`
	OrderID     uint64 `json:"order_id"`
	Quantity    int64  `json:"quantity"`
	PriceAtTime int64  `json:"price_at_time"`
	ProductName string `json:"product_name,omitempty"`
}

// Order is the server-confirmed purchase record.
type Order struct {
	ID              uint64      `json:"id"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerName    string      `json:"customer_name"`
	ShippingAddress string      `json:"shipping_address"`
	TotalAmount     int64       `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	OrderItems      []OrderItem `json:"order_items"`
}
