package forms

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	svix "github.com/standard-webhooks/standard-webhooks/libraries/go"
)

// ErrInvalidSignature is returned for a webhook whose signature does not verify
var ErrInvalidSignature = errors.New("invalid webhook signature")

// Verifier checks standard-webhooks signatures (webhook-id, webhook-timestamp, webhook-signature)
type Verifier struct {
	wh *svix.Webhook
}

// NewVerifier accepts a base64 secret with or without the "whsec_" prefix
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrNotConfigured
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook verifier: %w", err)
	}
	return &Verifier{wh: wh}, nil
}

func (v *Verifier) Verify(payload []byte, headers http.Header) error {
	if err := v.wh.Verify(payload, headers); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return nil
}

// Sign returns the headers a forms plugin would send with payload
func (v *Verifier) Sign(id string, at time.Time, payload []byte) (http.Header, error) {
	signature, err := v.wh.Sign(id, at, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to sign payload: %w", err)
	}
	headers := http.Header{}
	headers.Set("webhook-id", id)
	headers.Set("webhook-timestamp", strconv.FormatInt(at.Unix(), 10))
	headers.Set("webhook-signature", signature)
	return headers, nil
}
