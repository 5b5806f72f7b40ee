package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/domain"
)

func TestGatewayClient_ListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Drinks", r.URL.Query().Get("category"))
		assert.Equal(t, "price_asc", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Es Teh Manis","description":"Sweet iced tea","price":5000,"image_url":"/img/teh.jpg","category":"Drinks","stock":20,"created_at":"2024-03-01T12:00:00Z"},
			{"id":2,"name":"Kopi Susu","description":"Iced coffee","price":12000,"image_url":"/img/kopi.jpg","category":"Drinks","stock":15,"created_at":"2024-03-02T12:00:00Z"}
		]`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, 2*time.Second)
	products, err := client.ListProducts(context.Background(), "Drinks", "price_asc")

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint64(1), products[0].ID)
	assert.Equal(t, "Es Teh Manis", products[0].Name)
	assert.Equal(t, int64(5000), products[0].Price)
	assert.Equal(t, int64(20), products[0].Stock)
}

func TestGatewayClient_ListProductsNoParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, 2*time.Second)
	products, err := client.ListProducts(context.Background(), "", "")

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGatewayClient_ListProductsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, 2*time.Second)
	_, err := client.ListProducts(context.Background(), "", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGatewayClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft domain.OrderDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "a@b.com", draft.CustomerEmail)
		require.Len(t, draft.OrderItems, 1)
		assert.Equal(t, uint64(1), draft.OrderItems[0].ProductID)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": 42,
			"customer_email": "a@b.com",
			"customer_name": "Test Customer",
			"shipping_address": "Jl. Sudirman No. 1",
			"total_amount": 20000,
			"status": "pending",
			"created_at": "2024-03-01T12:00:00Z",
			"order_items": [{"id":1,"product_id":1,"order_id":42,"quantity":2,"price_at_time":10000}]
		}`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, 2*time.Second)
	order, err := client.CreateOrder(context.Background(), domain.OrderDraft{
		CustomerEmail:   "a@b.com",
		CustomerName:    "Test Customer",
		ShippingAddress: "Jl. Sudirman No. 1",
		OrderItems:      []domain.OrderDraftItem{{ProductID: 1, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(42), order.ID)
	assert.Equal(t, int64(20000), order.TotalAmount)
	assert.Equal(t, domain.StatusPending, order.Status)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, int64(10000), order.OrderItems[0].PriceAtTime)
}

func TestGatewayClient_CreateOrderRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Insufficient stock for Nasi Goreng"}`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, 2*time.Second)
	order, err := client.CreateOrder(context.Background(), domain.OrderDraft{})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "status 400")
}

func TestGatewayClient_ListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "a+c@b.com", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`[{"id":1,"customer_email":"a+c@b.com","total_amount":25000,"status":"completed","created_at":"2024-03-01T12:00:00Z","order_items":[]}]`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, 2*time.Second)
	orders, err := client.ListOrders(context.Background(), "a+c@b.com")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusCompleted, orders[0].Status)
}

func TestGatewayClient_ListOrdersEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, 2*time.Second)
	orders, err := client.ListOrders(context.Background(), "nobody@b.com")

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestGatewayClient_TransportFailure(t *testing.T) {
	client := NewGatewayClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := client.ListProducts(context.Background(), "", "")
	assert.Error(t, err)
}
