package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Gateway.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "redis", cfg.Cart.Driver)
	assert.Equal(t, "biteswift_cart", cfg.Cart.StorageKey)
	assert.Equal(t, 10*time.Second, cfg.Catalog.CacheTTL)
	assert.Equal(t, "storefront.exchange", cfg.AMQP.Exchange)
	assert.Empty(t, cfg.AMQP.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_APP_PORT", "9090")
	t.Setenv("STOREFRONT_GATEWAY_BASE_URL", "http://api.internal:8000")
	t.Setenv("STOREFRONT_CART_DRIVER", "mysql")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "http://api.internal:8000", cfg.Gateway.BaseURL)
	assert.Equal(t, "mysql", cfg.Cart.Driver)
	assert.Equal(t, "biteswift_cart", cfg.Cart.StorageKey)
}
