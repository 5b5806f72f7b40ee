package infra

import (
	"context"

	"storefront-service/internal/domain"
)

type GatewayClientInterface interface {
	ListProducts(ctx context.Context, category, sortOption string) ([]domain.Product, error)
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error)
	ListOrders(ctx context.Context, email string) ([]domain.Order, error)
}

var _ GatewayClientInterface = (*GatewayClient)(nil)
