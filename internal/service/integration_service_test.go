package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/domain/mocks"
	"github.com/salesdesk/salesdesk/pkg/forms"
	"github.com/salesdesk/salesdesk/pkg/logger"
	"github.com/salesdesk/salesdesk/pkg/media"
	"github.com/salesdesk/salesdesk/pkg/storefront"
	"github.com/salesdesk/salesdesk/pkg/tracing"
	"github.com/salesdesk/salesdesk/pkg/voice"
)

type fakeShop struct {
	configured bool
	products   []storefront.Product
	orders     []storefront.Order
	err        error
	lastLimit  int
}

func (f *fakeShop) Configured() bool { return f.configured }

func (f *fakeShop) Products(_ context.Context, limit int) ([]storefront.Product, error) {
	f.lastLimit = limit
	return f.products, f.err
}

func (f *fakeShop) Orders(_ context.Context, limit int) ([]storefront.Order, error) {
	f.lastLimit = limit
	return f.orders, f.err
}

type integrationMocks struct {
	voice     *MockDialer
	media     *MockMediaUploader
	forms     *MockFormsExporter
	inquiries *mocks.MockInquiryService
	shopify   *fakeShop
	woo       *fakeShop
}

func setupIntegrationServiceTest(t *testing.T) (*IntegrationService, integrationMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := integrationMocks{
		voice:     NewMockDialer(ctrl),
		media:     NewMockMediaUploader(ctrl),
		forms:     NewMockFormsExporter(ctrl),
		inquiries: mocks.NewMockInquiryService(ctrl),
		shopify:   &fakeShop{configured: true},
		woo:       &fakeShop{},
	}
	service := NewIntegrationService(IntegrationServiceConfig{
		Voice: m.voice,
		Media: m.media,
		Shops: map[string]storefront.Shop{
			domain.PlatformShopify:     m.shopify,
			domain.PlatformWooCommerce: m.woo,
		},
		Forms:     m.forms,
		Inquiries: m.inquiries,
		Logger:    logger.NewMockLogger(t),
		Tracer:    tracing.NewTracer(),
	})
	return service, m
}

func TestIntegrationService_Dial(t *testing.T) {
	ctx := context.Background()

	t.Run("places the call", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		m.voice.EXPECT().Configured().Return(true)
		m.voice.EXPECT().Dial(gomock.Any(), "+639171234567").Return(&voice.Call{
			SID: "CA123", Status: "queued", To: "+639171234567", From: "+15005550006",
		}, nil)

		result, err := service.Dial(ctx, domain.DialRequest{ReferenceID: "CSR-1", To: " +639171234567 "})
		require.NoError(t, err)
		assert.Equal(t, &domain.CallResult{SID: "CA123", Status: "queued", To: "+639171234567", From: "+15005550006"}, result)
	})

	t.Run("not configured", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		m.voice.EXPECT().Configured().Return(false)

		_, err := service.Dial(ctx, domain.DialRequest{ReferenceID: "CSR-1", To: "+639171234567"})
		var notConfigured *domain.ErrNotConfigured
		require.True(t, errors.As(err, &notConfigured))
		assert.Equal(t, "voice", notConfigured.Integration)
	})

	t.Run("invalid number", func(t *testing.T) {
		service, _ := setupIntegrationServiceTest(t)

		_, err := service.Dial(ctx, domain.DialRequest{ReferenceID: "CSR-1", To: "call me"})
		assert.EqualError(t, err, "validation error: to must be a phone number")
	})

	t.Run("provider error", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		m.voice.EXPECT().Configured().Return(true)
		m.voice.EXPECT().Dial(gomock.Any(), "+639171234567").Return(nil, &voice.APIError{StatusCode: 400, Code: 21211, Message: "invalid To"})

		_, err := service.Dial(ctx, domain.DialRequest{ReferenceID: "CSR-1", To: "+639171234567"})
		require.Error(t, err)
		var apiErr *voice.APIError
		assert.True(t, errors.As(err, &apiErr))
	})
}

func TestIntegrationService_UploadMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		body := strings.NewReader("%PDF-1.4")
		m.media.EXPECT().Upload(gomock.Any(), "quote.pdf", "application/pdf", int64(8), body).Return(&media.Object{
			Key: "uploads/2024/05/abc.pdf", URL: "https://cdn.example.com/uploads/2024/05/abc.pdf", ContentType: "application/pdf", Size: 8,
		}, nil)

		obj, err := service.UploadMedia(ctx, domain.MediaUpload{Filename: "quote.pdf", ContentType: "application/pdf", Size: 8, Body: body})
		require.NoError(t, err)
		assert.Equal(t, "uploads/2024/05/abc.pdf", obj.Key)
		assert.Equal(t, int64(8), obj.Size)
	})

	t.Run("rejects other content types", func(t *testing.T) {
		service, _ := setupIntegrationServiceTest(t)

		_, err := service.UploadMedia(ctx, domain.MediaUpload{Filename: "run.sh", ContentType: "text/x-sh", Size: 10, Body: strings.NewReader("echo")})
		assert.EqualError(t, err, "validation error: file must be an image or a PDF")
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		service, _ := setupIntegrationServiceTest(t)

		_, err := service.UploadMedia(ctx, domain.MediaUpload{Filename: "big.png", ContentType: "image/png", Size: domain.MaxMediaSize + 1})
		assert.EqualError(t, err, "validation error: file must not exceed 10 MiB")
	})

	t.Run("no bucket", func(t *testing.T) {
		service := NewIntegrationService(IntegrationServiceConfig{Logger: logger.NewMockLogger(t)})

		_, err := service.UploadMedia(ctx, domain.MediaUpload{Filename: "a.png", ContentType: "image/png", Size: 1, Body: strings.NewReader("x")})
		var notConfigured *domain.ErrNotConfigured
		require.True(t, errors.As(err, &notConfigured))
		assert.Equal(t, "media", notConfigured.Integration)
	})
}

func TestIntegrationService_Storefront(t *testing.T) {
	ctx := context.Background()
	updated := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("products are tagged with their platform", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		m.shopify.products = []storefront.Product{{ID: "1", Title: "Router", SKU: "RT-1", Price: 1999.5, Stock: 4, Status: "active", UpdatedAt: updated}}

		products, err := service.ListProducts(ctx, domain.PlatformShopify, 25)
		require.NoError(t, err)
		assert.Equal(t, 25, m.shopify.lastLimit)
		assert.Equal(t, []domain.StoreProduct{{
			ID: "1", Platform: "shopify", Title: "Router", SKU: "RT-1", Price: 1999.5, Stock: 4, Status: "active", UpdatedAt: updated,
		}}, products)
	})

	t.Run("orders", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		m.shopify.orders = []storefront.Order{{ID: "9", Number: "#1009", Customer: "Ana Cruz", Total: 250, Currency: "PHP", Status: "paid", CreatedAt: updated}}

		orders, err := service.ListOrders(ctx, domain.PlatformShopify, 10)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "shopify", orders[0].Platform)
		assert.Equal(t, "#1009", orders[0].Number)
	})

	t.Run("unconfigured platform", func(t *testing.T) {
		service, _ := setupIntegrationServiceTest(t)

		_, err := service.ListOrders(ctx, domain.PlatformWooCommerce, 10)
		var notConfigured *domain.ErrNotConfigured
		require.True(t, errors.As(err, &notConfigured))
		assert.Equal(t, "woocommerce", notConfigured.Integration)
	})

	t.Run("unknown platform", func(t *testing.T) {
		service, _ := setupIntegrationServiceTest(t)

		_, err := service.ListProducts(ctx, "magento", 10)
		assert.EqualError(t, err, "validation error: invalid platform: magento")
	})

	t.Run("platform error", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		m.shopify.err = &storefront.APIError{Platform: "shopify", StatusCode: 401, Message: "Invalid API key"}

		_, err := service.ListProducts(ctx, domain.PlatformShopify, 10)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to list products: "))
	})
}

func TestIntegrationService_Forms(t *testing.T) {
	ctx := context.Background()

	t.Run("entries", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		created := time.Date(2024, 4, 2, 3, 4, 5, 0, time.UTC)
		m.forms.EXPECT().Configured().Return(true)
		m.forms.EXPECT().Entries(gomock.Any(), "3", 2).Return([]forms.Entry{
			{ID: "41", FormID: "3", Fields: map[string]string{"1": "Acme"}, CreatedAt: created},
		}, nil)

		entries, err := service.ListFormEntries(ctx, "3", 2)
		require.NoError(t, err)
		assert.Equal(t, []domain.FormEntry{{ID: "41", FormID: "3", Fields: map[string]string{"1": "Acme"}, CreatedAt: created}}, entries)
	})

	t.Run("not configured", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		m.forms.EXPECT().Configured().Return(false)

		_, err := service.ListFormEntries(ctx, "3", 1)
		assert.EqualError(t, err, "forms integration is not configured")
	})

	t.Run("submission becomes a pending inquiry", func(t *testing.T) {
		service, m := setupIntegrationServiceTest(t)
		m.inquiries.EXPECT().CreateInquiry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inquiry *domain.Inquiry) error {
			assert.Equal(t, "CSR-1", inquiry.ReferenceID)
			assert.Equal(t, "Acme Corp", inquiry.CompanyName)
			assert.Equal(t, "Juan Dela Cruz", inquiry.ContactName)
			assert.Equal(t, "Web Form", inquiry.Channel)
			assert.Equal(t, domain.InquiryStatusPending, inquiry.Status)
			inquiry.ID = 77
			return nil
		})

		inquiry, err := service.HandleFormSubmission(ctx, domain.FormSubmission{
			FormID:      "3",
			ReferenceID: "CSR-1",
			Fields: map[string]string{
				"company": "Acme Corp",
				"name":    "Juan Dela Cruz",
				"email":   "juan@example.com",
				"message": "Need a quote for 20 units",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(77), inquiry.ID)
	})

	t.Run("submission without company", func(t *testing.T) {
		service, _ := setupIntegrationServiceTest(t)

		_, err := service.HandleFormSubmission(ctx, domain.FormSubmission{
			ReferenceID: "CSR-1",
			Fields:      map[string]string{"message": "hi"},
		})
		assert.EqualError(t, err, "validation error: companyname is required")
	})
}
