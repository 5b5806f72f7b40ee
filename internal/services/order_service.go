package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"storefront-service/internal/domain"
	"storefront-service/internal/infra"
	rabbit "storefront-service/internal/infra/rabbitmq"
)

var (
	ErrMissingCheckoutField = errors.New("customer email, name and shipping address are required")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrEmailRequired        = errors.New("email is required")
)

// OrderService submits checkouts and reads order history through the gateway.
type OrderService struct {
	cart      *CartService
	gateway   infra.GatewayClientInterface
	publisher rabbit.PublisherInterface
	logger    *zap.Logger
}

// NewOrderService wires the checkout flow. publisher may be nil, in which
// case no events are emitted.
func NewOrderService(cart *CartService, gateway infra.GatewayClientInterface, publisher rabbit.PublisherInterface, logger *zap.Logger) *OrderService {
	return &OrderService{
		cart:      cart,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout validates the draft locally, derives the order items from the
// cart and submits the order. Validation failures never reach the network.
// The cart is cleared only after the gateway accepts the order.
func (s *OrderService) Checkout(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	if strings.TrimSpace(draft.CustomerEmail) == "" ||
		strings.TrimSpace(draft.CustomerName) == "" ||
		strings.TrimSpace(draft.ShippingAddress) == "" {
		return nil, ErrMissingCheckoutField
	}

	cart := s.cart.Cart()
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	draft.OrderItems = make([]domain.OrderDraftItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		draft.OrderItems = append(draft.OrderItems, domain.OrderDraftItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}

	order, err := s.gateway.CreateOrder(ctx, draft)
	if err != nil {
		return nil, err
	}

	fillReceiptDetails(order, cart.Lines)
	s.cart.Clear(ctx)

	if s.publisher != nil {
		go s.publishOrderPlaced(context.Background(), order)
	}

	return order, nil
}

// History lists the orders placed with the given email. An empty result is a
// valid empty history, not an error.
func (s *OrderService) History(ctx context.Context, email string) ([]domain.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}

	orders, err := s.gateway.ListOrders(ctx, email)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// fillReceiptDetails backfills display fields the server may omit from echoed
// order items, using the product snapshots captured in the cart. The filled
// price_at_time can diverge from the authoritative order total.
func fillReceiptDetails(order *domain.Order, lines []domain.CartLine) {
	byID := make(map[uint64]domain.Product, len(lines))
	for _, l := range lines {
		byID[l.Product.ID] = l.Product
	}

	for i := range order.OrderItems {
		p, ok := byID[order.OrderItems[i].ProductID]
		if !ok {
			continue
		}
		if order.OrderItems[i].PriceAtTime == 0 {
			order.OrderItems[i].PriceAtTime = p.Price
		}
		if order.OrderItems[i].ProductName == "" {
			order.OrderItems[i].ProductName = p.Name
		}
	}
}

func (s *OrderService) publishOrderPlaced(ctx context.Context, order *domain.Order) {
	evt := domain.OrderPlacedEvent{
		OrderID:       order.ID,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		CreatedAt:     order.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, "order.placed", evt); err != nil {
		s.logger.Warn("failed to publish order.placed event",
			zap.Uint64("order_id", order.ID),
			zap.Error(err),
		)
	}
}
