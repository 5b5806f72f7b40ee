package http

import "storefront-service/internal/domain"

type AddCartItemRequest struct {
	Product domain.Product `json:"product" binding:"required"`
}

// Quantity is a pointer so an explicit zero (remove the line) still binds.
type UpdateCartItemRequest struct {
	Quantity *int64 `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	CustomerEmail   string `json:"customer_email"`
	CustomerName    string `json:"customer_name"`
	ShippingAddress string `json:"shipping_address"`
}

type CartResponse struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalItems int64             `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
}
