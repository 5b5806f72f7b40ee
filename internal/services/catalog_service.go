package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"storefront-service/internal/domain"
	"storefront-service/internal/infra"
)

const productCacheKey = "products:all"

// CatalogService serves the browsable product list. The upstream fetch is
// cached in Redis for a short TTL and collapsed through singleflight so a
// burst of browsers does not fan out into duplicate gateway calls.
type CatalogService struct {
	gateway     infra.GatewayClientInterface
	redisClient *redis.Client
	cacheTTL    time.Duration
	group       singleflight.Group
	logger      *zap.Logger
}

func NewCatalogService(gateway infra.GatewayClientInterface, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		gateway:  gateway,
		cacheTTL: 10 * time.Second,
		logger:   logger,
	}
}

// SetRedisClient enables the product list cache.
func (s *CatalogService) SetRedisClient(client *redis.Client, ttl time.Duration) {
	s.redisClient = client
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// Browse fetches the catalog and projects it through the filter/sort pipeline.
func (s *CatalogService) Browse(ctx context.Context, q domain.CatalogQuery) ([]domain.Product, error) {
	products, err := s.listProducts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterProducts(products, q), nil
}

// Categories returns the distinct categories across the full catalog.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.listProducts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Categories(products), nil
}

func (s *CatalogService) listProducts(ctx context.Context) ([]domain.Product, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, productCacheKey).Bytes()
		if err == nil {
			var products []domain.Product
			if err := json.Unmarshal(cached, &products); err == nil {
				return products, nil
			}
		}
	}

	v, err, _ := s.group.Do(productCacheKey, func() (any, error) {
		products, err := s.gateway.ListProducts(ctx, "", "")
		if err != nil {
			return nil, err
		}

		if s.redisClient != nil {
			if data, err := json.Marshal(products); err == nil {
				if err := s.redisClient.Set(ctx, productCacheKey, data, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache product list", zap.Error(err))
				}
			}
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}
