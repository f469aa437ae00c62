package storefront

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const shopifyAPIVersion = "2024-01"

type Shopify struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewShopify targets domain, e.g. "acme.myshopify.com". A value with a scheme is used as is.
func NewShopify(domain, accessToken string, httpClient *http.Client) *Shopify {
	base := strings.TrimRight(domain, "/")
	if base != "" && !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return &Shopify{
		baseURL:     base,
		accessToken: accessToken,
		httpClient:  defaultHTTPClient(httpClient),
	}
}

func (s *Shopify) Configured() bool {
	return s.baseURL != "" && s.accessToken != ""
}

func (s *Shopify) Products(ctx context.Context, limit int) ([]Product, error) {
	body, err := s.get(ctx, "products.json", url.Values{"limit": {strconv.Itoa(limit)}})
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0)
	gjson.GetBytes(body, "products").ForEach(func(_, p gjson.Result) bool {
		variant := p.Get("variants.0")
		products = append(products, Product{
			ID:        p.Get("id").String(),
			Title:     p.Get("title").String(),
			SKU:       variant.Get("sku").String(),
			Price:     variant.Get("price").Float(),
			Stock:     variant.Get("inventory_quantity").Int(),
			Status:    p.Get("status").String(),
			UpdatedAt: parseTime(p.Get("updated_at").String()),
		})
		return true
	})
	return products, nil
}

func (s *Shopify) Orders(ctx context.Context, limit int) ([]Order, error) {
	body, err := s.get(ctx, "orders.json", url.Values{
		"limit":  {strconv.Itoa(limit)},
		"status": {"any"},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]Order, 0)
	gjson.GetBytes(body, "orders").ForEach(func(_, o gjson.Result) bool {
		orders = append(orders, Order{
			ID:        o.Get("id").String(),
			Number:    o.Get("name").String(),
			Customer:  joinName(o.Get("customer.first_name").String(), o.Get("customer.last_name").String()),
			Email:     o.Get("email").String(),
			Total:     o.Get("total_price").Float(),
			Currency:  o.Get("currency").String(),
			Status:    o.Get("financial_status").String(),
			CreatedAt: parseTime(o.Get("created_at").String()),
		})
		return true
	})
	return orders, nil
}

func (s *Shopify) get(ctx context.Context, resource string, query url.Values) ([]byte, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/admin/api/%s/%s?%s", s.baseURL, shopifyAPIVersion, resource, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", s.accessToken)

	return getJSON(s.httpClient, req, "shopify", "errors")
}
