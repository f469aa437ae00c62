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

type WooCommerce struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

func NewWooCommerce(baseURL, consumerKey, consumerSecret string, httpClient *http.Client) *WooCommerce {
	return &WooCommerce{
		baseURL:        strings.TrimRight(baseURL, "/"),
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient:     defaultHTTPClient(httpClient),
	}
}

func (w *WooCommerce) Configured() bool {
	return w.baseURL != "" && w.consumerKey != "" && w.consumerSecret != ""
}

func (w *WooCommerce) Products(ctx context.Context, limit int) ([]Product, error) {
	body, err := w.get(ctx, "products", limit)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0)
	gjson.ParseBytes(body).ForEach(func(_, p gjson.Result) bool {
		products = append(products, Product{
			ID:        p.Get("id").String(),
			Title:     p.Get("name").String(),
			SKU:       p.Get("sku").String(),
			Price:     p.Get("price").Float(),
			Stock:     p.Get("stock_quantity").Int(),
			Status:    p.Get("status").String(),
			UpdatedAt: parseTime(p.Get("date_modified_gmt").String()),
		})
		return true
	})
	return products, nil
}

func (w *WooCommerce) Orders(ctx context.Context, limit int) ([]Order, error) {
	body, err := w.get(ctx, "orders", limit)
	if err != nil {
		return nil, err
	}

	orders := make([]Order, 0)
	gjson.ParseBytes(body).ForEach(func(_, o gjson.Result) bool {
		orders = append(orders, Order{
			ID:        o.Get("id").String(),
			Number:    o.Get("number").String(),
			Customer:  joinName(o.Get("billing.first_name").String(), o.Get("billing.last_name").String()),
			Email:     o.Get("billing.email").String(),
			Total:     o.Get("total").Float(),
			Currency:  o.Get("currency").String(),
			Status:    o.Get("status").String(),
			CreatedAt: parseTime(o.Get("date_created_gmt").String()),
		})
		return true
	})
	return orders, nil
}

func (w *WooCommerce) get(ctx context.Context, resource string, limit int) ([]byte, error) {
	if !w.Configured() {
		return nil, ErrNotConfigured
	}

	query := url.Values{"per_page": {strconv.Itoa(limit)}}
	endpoint := fmt.Sprintf("%s/wp-json/wc/v3/%s?%s", w.baseURL, resource, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(w.consumerKey, w.consumerSecret)

	return getJSON(w.httpClient, req, "woocommerce", "message")
}
