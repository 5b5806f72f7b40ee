package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

// CartService is the single source of truth for the shopping cart. Every
// mutation is written through to the store before returning; persistence is
// fire-and-forget, so store failures are logged and the in-memory cart keeps
// working.
type CartService struct {
	mu     sync.Mutex
	cart   domain.Cart
	store  repository.CartStore
	logger *zap.Logger
}

// NewCartService loads the persisted cart. A missing or unreadable record
// starts an empty cart; no error is surfaced.
func NewCartService(ctx context.Context, store repository.CartStore, logger *zap.Logger) *CartService {
	s := &CartService{store: store, logger: logger}

	lines, err := store.Load(ctx)
	if err != nil {
		logger.Warn("stored cart unreadable, starting empty", zap.Error(err))
		return s
	}
	s.cart.Lines = lines
	return s
}

func (s *CartService) AddProduct(ctx context.Context, p domain.Product) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
	s.persist(ctx)
	return s.snapshot()
}

func (s *CartService) RemoveProduct(ctx context.Context, productID uint64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	s.persist(ctx)
	return s.snapshot()
}

func (s *CartService) SetQuantity(ctx context.Context, productID uint64, quantity int64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productID, quantity)
	s.persist(ctx)
	return s.snapshot()
}

// Clear empties the cart and erases the persisted record entirely, which is
// not the same as persisting an empty cart.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn("failed to erase persisted cart", zap.Error(err))
	}
}

// Cart returns a copy of the current cart.
func (s *CartService) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *CartService) TotalItems() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

func (s *CartService) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

func (s *CartService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.cart.Lines); err != nil {
		s.logger.Warn("failed to persist cart", zap.Error(err))
	}
}

func (s *CartService) snapshot() domain.Cart {
	return domain.Cart{Lines: append([]domain.CartLine(nil), s.cart.Lines...)}
}
