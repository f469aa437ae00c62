package storefront

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopify_Products(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/products.json", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "shpat_token", r.Header.Get("X-Shopify-Access-Token"))

		_, _ = w.Write([]byte(`{"products":[
			{"id":632910392,"title":"IPod Nano","status":"active","updated_at":"2024-03-01T10:00:00-05:00",
			 "variants":[{"sku":"IPOD2008PINK","price":"199.00","inventory_quantity":10}]},
			{"id":921728736,"title":"IPod Touch","status":"draft","variants":[]}
		]}`))
	}))
	defer server.Close()

	shop := NewShopify(server.URL, "shpat_token", server.Client())
	require.True(t, shop.Configured())

	products, err := shop.Products(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, Product{
		ID:        "632910392",
		Title:     "IPod Nano",
		SKU:       "IPOD2008PINK",
		Price:     199,
		Stock:     10,
		Status:    "active",
		UpdatedAt: time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
	}, products[0])
	assert.Equal(t, "", products[1].SKU)
	assert.True(t, products[1].UpdatedAt.IsZero())
}

func TestShopify_Orders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/orders.json", r.URL.Path)
		assert.Equal(t, "any", r.URL.Query().Get("status"))

		_, _ = w.Write([]byte(`{"orders":[{"id":450789469,"name":"#1001","email":"bob@example.com",
			"total_price":"598.94","currency":"USD","financial_status":"paid","created_at":"2024-01-10T08:30:00Z",
			"customer":{"first_name":"Bob","last_name":"Norman"}}]}`))
	}))
	defer server.Close()

	orders, err := NewShopify(server.URL, "shpat_token", server.Client()).Orders(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, "#1001", orders[0].Number)
	assert.Equal(t, "Bob Norman", orders[0].Customer)
	assert.Equal(t, 598.94, orders[0].Total)
	assert.Equal(t, "paid", orders[0].Status)
	assert.Equal(t, time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC), orders[0].CreatedAt)
}

func TestShopify_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":"[API] Invalid API key or access token"}`))
	}))
	defer server.Close()

	_, err := NewShopify(server.URL, "bad", server.Client()).Products(context.Background(), 5)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "shopify returned 401: [API] Invalid API key or access token", apiErr.Error())
}

func TestShopify_NotConfigured(t *testing.T) {
	shop := NewShopify("", "", nil)
	assert.False(t, shop.Configured())

	_, err := shop.Orders(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewShopify_AddsScheme(t *testing.T) {
	assert.Equal(t, "https://acme.myshopify.com", NewShopify("acme.myshopify.com/", "t", nil).baseURL)
	assert.Equal(t, "http://localhost:9000", NewShopify("http://localhost:9000", "t", nil).baseURL)
}
