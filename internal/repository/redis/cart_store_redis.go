package redis

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

type cartStore struct {
	client *redis.Client
	key    string
}

// NewCartStore persists the cart as a JSON blob under key.
func NewCartStore(client *redis.Client, key string) repository.CartStore {
	return &cartStore{client: client, key: key}
}

func (s *cartStore) Load(ctx context.Context) ([]domain.CartLine, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(b, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *cartStore) Save(ctx context.Context, lines []domain.CartLine) error {
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, b, 0).Err()
}

func (s *cartStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
