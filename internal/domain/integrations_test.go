package domain_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
)

func TestDialRequest_Validate(t *testing.T) {
	assert.NoError(t, (&domain.DialRequest{ReferenceID: "TSA-1", To: "+639171234567"}).Validate())
	assert.Error(t, (&domain.DialRequest{ReferenceID: "TSA-1", To: "call me"}).Validate())
	assert.Error(t, (&domain.DialRequest{ReferenceID: "TSA-1", To: "+"}).Validate())
	assert.Error(t, (&domain.DialRequest{To: "+639171234567"}).Validate())
}

func TestMediaUpload_Validate(t *testing.T) {
	assert.NoError(t, (&domain.MediaUpload{Size: 100, ContentType: "image/png"}).Validate())
	assert.NoError(t, (&domain.MediaUpload{Size: 100, ContentType: "application/pdf"}).Validate())
	assert.Error(t, (&domain.MediaUpload{Size: 100, ContentType: "text/plain"}).Validate())
	assert.Error(t, (&domain.MediaUpload{Size: domain.MaxMediaSize + 1, ContentType: "image/png"}).Validate())
	assert.Error(t, (&domain.MediaUpload{ContentType: "image/png"}).Validate())
}

func TestStorefrontRequest_FromURLParams(t *testing.T) {
	var req domain.StorefrontRequest
	assert.Error(t, req.FromURLParams(url.Values{}))
	assert.Error(t, req.FromURLParams(url.Values{"platform": {"etsy"}}))
	assert.Error(t, req.FromURLParams(url.Values{"platform": {"shopify"}, "limit": {"0"}}))

	require.NoError(t, req.FromURLParams(url.Values{"platform": {"Shopify"}}))
	assert.Equal(t, domain.PlatformShopify, req.Platform)
	assert.Equal(t, domain.DefaultStorefrontLimit, req.Limit)

	require.NoError(t, req.FromURLParams(url.Values{"platform": {"woocommerce"}, "limit": {"1000"}}))
	assert.Equal(t, domain.MaxStorefrontLimit, req.Limit)
}

func TestFormEntriesRequest_FromURLParams(t *testing.T) {
	var req domain.FormEntriesRequest
	assert.Error(t, req.FromURLParams(url.Values{}))
	require.NoError(t, req.FromURLParams(url.Values{"form_id": {"7"}}))
	assert.Equal(t, 1, req.Page)
	assert.Error(t, req.FromURLParams(url.Values{"form_id": {"7"}, "page": {"-1"}}))
}

func TestFormSubmission_ToInquiry(t *testing.T) {
	sub := domain.FormSubmission{
		FormID:      "7",
		ReferenceID: "CSR-1",
		Fields: map[string]string{
			"company_name": "Acme",
			"name":         "Ana",
			"email":        "ana@example.com",
			"message":      "Price list please",
		},
	}
	inquiry, err := sub.ToInquiry()
	require.NoError(t, err)
	assert.Equal(t, "Acme", inquiry.CompanyName)
	assert.Equal(t, "Price list please", inquiry.Inquiry)
	assert.Equal(t, domain.InquiryStatusPending, inquiry.Status)

	sub.Fields["message"] = ""
	_, err = sub.ToInquiry()
	assert.Error(t, err)
}
