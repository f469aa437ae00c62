// Package storefront reads products and orders from Shopify and WooCommerce shops.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrNotConfigured is returned by a shop whose credentials are missing
var ErrNotConfigured = errors.New("storefront is not configured")

type Product struct {
	ID        string
	Title     string
	SKU       string
	Price     float64
	Stock     int64
	Status    string
	UpdatedAt time.Time
}

type Order struct {
	ID        string
	Number    string
	Customer  string
	Email     string
	Total     float64
	Currency  string
	Status    string
	CreatedAt time.Time
}

// Shop is one storefront platform
type Shop interface {
	Configured() bool
	Products(ctx context.Context, limit int) ([]Product, error)
	Orders(ctx context.Context, limit int) ([]Order, error)
}

// APIError is a non-2xx answer from a shop
type APIError struct {
	Platform   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Platform, e.StatusCode, e.Message)
}

func defaultHTTPClient(c *http.Client) *http.Client {
	if c == nil {
		return &http.Client{Timeout: 20 * time.Second}
	}
	return c
}

// getJSON performs req and returns the body of a 2xx answer
func getJSON(client *http.Client, req *http.Request, platform string, errorPaths ...string) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", platform, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", platform, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ""
		for _, p := range errorPaths {
			if message = gjson.GetBytes(body, p).String(); message != "" {
				break
			}
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Platform: platform, StatusCode: resp.StatusCode, Message: message}
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%s returned invalid JSON", platform)
	}
	return body, nil
}

// parseTime accepts RFC 3339 and the zone-less form WooCommerce uses for *_gmt fields
func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t
	}
	return time.Time{}
}

func joinName(parts ...string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}
