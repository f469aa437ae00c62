// Package voice places outbound calls through a Twilio-compatible REST API.
package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrNotConfigured is returned when the account credentials are missing
var ErrNotConfigured = errors.New("voice provider is not configured")

type Config struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	FromNumber string
	// TwimlURL is fetched by the provider once the call connects
	TwimlURL string
}

func (c Config) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// Call is the provider's view of a placed call
type Call struct {
	SID    string
	Status string
	To     string
	From   string
}

// APIError is a non-2xx answer from the provider
type APIError struct {
	StatusCode int
	Code       int64
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("voice provider returned %d (code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("voice provider returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg, httpClient: httpClient}
}

func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// Dial asks the provider to call to from the configured number
func (c *Client) Dial(ctx context.Context, to string) (*Call, error) {
	if !c.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.cfg.FromNumber)
	if c.cfg.TwimlURL != "" {
		form.Set("Url", c.cfg.TwimlURL)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Calls.json", c.cfg.BaseURL, url.PathEscape(c.cfg.AccountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach voice provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read voice provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(body, "message").String()
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       gjson.GetBytes(body, "code").Int(),
			Message:    message,
		}
	}

	result := gjson.ParseBytes(body)
	call := &Call{
		SID:    result.Get("sid").String(),
		Status: result.Get("status").String(),
		To:     result.Get("to").String(),
		From:   result.Get("from").String(),
	}
	if call.SID == "" {
		return nil, fmt.Errorf("voice provider response has no call sid")
	}
	return call, nil
}
