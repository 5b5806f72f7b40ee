package repository

import (
	"context"

	"storefront-service/internal/domain"
)

// CartStore persists the serialized cart under a fixed storage key. Load
// returns nil lines when nothing is stored. Clear erases the record entirely,
// which is distinct from saving an empty cart.
type CartStore interface {
	Load(ctx context.Context) ([]domain.CartLine, error)
	Save(ctx context.Context, lines []domain.CartLine) error
	Clear(ctx context.Context) error
}
