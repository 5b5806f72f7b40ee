package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration
type Config struct {
	App     AppConfig
	Log     LogConfig
	Gateway GatewayConfig
	Redis   RedisConfig
	MySQL   MySQLConfig
	Cart    CartConfig
	Catalog CatalogConfig
	AMQP    AMQPConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// GatewayConfig points at the remote BiteSwift API
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MySQLConfig holds MySQL connection settings for the mysql cart driver
type MySQLConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// CartConfig selects the cart persistence driver ("redis" or "mysql") and the
// fixed storage key the serialized cart lives under
type CartConfig struct {
	Driver     string
	StorageKey string
}

// CatalogConfig holds product list cache settings
type CatalogConfig struct {
	CacheTTL time.Duration
}

// AMQPConfig holds event publishing settings; an empty URL disables publishing
type AMQPConfig struct {
	URL      string
	Exchange string
}

// Load loads configuration from an optional config.toml and environment
// variables. Priority (highest to lowest):
// 1. Environment variables with STOREFRONT_ prefix (e.g. STOREFRONT_APP_PORT)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Gateway: GatewayConfig{
			BaseURL: v.GetString("gateway.base_url"),
			Timeout: v.GetDuration("gateway.timeout"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		MySQL: MySQLConfig{
			Host:     v.GetString("mysql.host"),
			Port:     v.GetInt("mysql.port"),
			User:     v.GetString("mysql.user"),
			Password: v.GetString("mysql.password"),
			DBName:   v.GetString("mysql.dbname"),
		},
		Cart: CartConfig{
			Driver:     v.GetString("cart.driver"),
			StorageKey: v.GetString("cart.storage_key"),
		},
		Catalog: CatalogConfig{
			CacheTTL: v.GetDuration("catalog.cache_ttl"),
		},
		AMQP: AMQPConfig{
			URL:      v.GetString("amqp.url"),
			Exchange: v.GetString("amqp.exchange"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "biteswift-storefront")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("gateway.base_url", "http://localhost:8000")
	v.SetDefault("gateway.timeout", 5*time.Second)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("mysql.host", "localhost")
	v.SetDefault("mysql.port", 3306)
	v.SetDefault("cart.driver", "redis")
	v.SetDefault("cart.storage_key", "biteswift_cart")
	v.SetDefault("catalog.cache_ttl", 10*time.Second)
	v.SetDefault("amqp.exchange", "storefront.exchange")
}
