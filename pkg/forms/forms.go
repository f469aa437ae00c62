// Package forms exports entries from a Gravity Forms compatible REST API and
// verifies its submission webhooks.
package forms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const PageSize = 20

// ErrNotConfigured is returned when the API credentials are missing
var ErrNotConfigured = errors.New("forms API is not configured")

type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string
}

// Entry is one submission; Fields holds the answers keyed by field id
type Entry struct {
	ID        string
	FormID    string
	Fields    map[string]string
	CreatedAt time.Time
}

// APIError is a non-2xx answer from the forms API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("forms API returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg, httpClient: httpClient}
}

func (c *Client) Configured() bool {
	return c.cfg.BaseURL != "" && c.cfg.APIKey != "" && c.cfg.APISecret != ""
}

// Entries returns one page of entries of formID, newest first
func (c *Client) Entries(ctx context.Context, formID string, page int) ([]Entry, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("paging[page_size]", strconv.Itoa(PageSize))
	query.Set("paging[current_page]", strconv.Itoa(page))
	query.Set("sorting[key]", "date_created")
	query.Set("sorting[direction]", "DESC")

	endpoint := fmt.Sprintf("%s/wp-json/gf/v2/forms/%s/entries?%s", c.cfg.BaseURL, url.PathEscape(formID), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.cfg.APIKey, c.cfg.APISecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach forms API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read forms API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(body, "message").String()
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	entries := make([]Entry, 0)
	gjson.GetBytes(body, "entries").ForEach(func(_, e gjson.Result) bool {
		entries = append(entries, parseEntry(e))
		return true
	})
	return entries, nil
}

// parseEntry keeps the answer fields, whose keys are field ids such as "1" or "2.3"
func parseEntry(e gjson.Result) Entry {
	entry := Entry{
		ID:        e.Get("id").String(),
		FormID:    e.Get("form_id").String(),
		Fields:    make(map[string]string),
		CreatedAt: parseCreated(e.Get("date_created").String()),
	}
	e.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if k != "" && k[0] >= '0' && k[0] <= '9' && value.String() != "" {
			entry.Fields[k] = value.String()
		}
		return true
	})
	return entry
}

// date_created is UTC without a zone
func parseCreated(raw string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
