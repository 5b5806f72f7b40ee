package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront-service/internal/domain"
)

type MockCartStore struct {
	mock.Mock
}

type MockGatewayClient struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockCartStore) Load(ctx context.Context) ([]domain.CartLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartLine), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, lines []domain.CartLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *MockCartStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGatewayClient) ListProducts(ctx context.Context, category, sortOption string) ([]domain.Product, error) {
	args := m.Called(ctx, category, sortOption)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockGatewayClient) CreateOrder(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockGatewayClient) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
