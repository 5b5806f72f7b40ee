package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"storefront-service/internal/config"
	"storefront-service/internal/controllers/http"
	"storefront-service/internal/infra"
	mmysql "storefront-service/internal/infra/mysql"
	"storefront-service/internal/infra/rabbitmq"
	"storefront-service/internal/logger"
	"storefront-service/internal/repository"
	mysqlrepo "storefront-service/internal/repository/mysql"
	redisrepo "storefront-service/internal/repository/redis"
	"storefront-service/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	}

	var store repository.CartStore
	switch cfg.Cart.Driver {
	case "mysql":
		db, err := mmysql.NewMySQL(cfg.MySQL)
		if err != nil {
			log.Fatal("failed to connect to mysql", zap.Error(err))
		}
		store, err = mysqlrepo.NewCartStore(db, cfg.Cart.StorageKey)
		if err != nil {
			log.Fatal("failed to init mysql cart store", zap.Error(err))
		}
	default:
		if redisClient == nil {
			log.Fatal("redis cart driver selected but redis.addr is empty")
		}
		store = redisrepo.NewCartStore(redisClient, cfg.Cart.StorageKey)
	}

	gateway := infra.NewGatewayClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout)

	var publisher rabbitmq.PublisherInterface
	if cfg.AMQP.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal("failed to init publisher", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	cartService := services.NewCartService(ctx, store, log)

	catalogService := services.NewCatalogService(gateway, log)
	if redisClient != nil {
		catalogService.SetRedisClient(redisClient, cfg.Catalog.CacheTTL)
	}

	orderService := services.NewOrderService(cartService, gateway, publisher, log)

	handler := http.NewHandler(catalogService, cartService, orderService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.GinMiddleware(log), gin.Recovery())

	handler.RegisterRoutes(r)

	log.Info("starting storefront service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("gateway", cfg.Gateway.BaseURL),
		zap.String("cart_driver", cfg.Cart.Driver),
	)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("server run", zap.Error(err))
	}
}
