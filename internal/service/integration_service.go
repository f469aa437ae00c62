package service

import (
	"context"
	"fmt"
	"io"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/forms"
	"github.com/salesdesk/salesdesk/pkg/logger"
	"github.com/salesdesk/salesdesk/pkg/media"
	"github.com/salesdesk/salesdesk/pkg/storefront"
	"github.com/salesdesk/salesdesk/pkg/tracing"
	"github.com/salesdesk/salesdesk/pkg/voice"
)

//go:generate mockgen -destination mock_integrations_test.go -package service github.com/salesdesk/salesdesk/internal/service Dialer,MediaUploader,FormsExporter

type Dialer interface {
	Configured() bool
	Dial(ctx context.Context, to string) (*voice.Call, error)
}

type MediaUploader interface {
	Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*media.Object, error)
}

type FormsExporter interface {
	Configured() bool
	Entries(ctx context.Context, formID string, page int) ([]forms.Entry, error)
}

type IntegrationService struct {
	voice     Dialer
	media     MediaUploader
	shops     map[string]storefront.Shop
	forms     FormsExporter
	inquiries domain.InquiryService
	logger    logger.Logger
	tracer    tracing.Tracer
}

type IntegrationServiceConfig struct {
	Voice Dialer
	// Media is nil when no bucket is configured
	Media     MediaUploader
	Shops     map[string]storefront.Shop
	Forms     FormsExporter
	Inquiries domain.InquiryService
	Logger    logger.Logger
	Tracer    tracing.Tracer
}

func NewIntegrationService(cfg IntegrationServiceConfig) *IntegrationService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	shops := cfg.Shops
	if shops == nil {
		shops = map[string]storefront.Shop{}
	}
	return &IntegrationService{
		voice:     cfg.Voice,
		media:     cfg.Media,
		shops:     shops,
		forms:     cfg.Forms,
		inquiries: cfg.Inquiries,
		logger:    cfg.Logger,
		tracer:    tracer,
	}
}

var _ domain.IntegrationService = (*IntegrationService)(nil)

func (s *IntegrationService) Dial(ctx context.Context, request domain.DialRequest) (*domain.CallResult, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "IntegrationService", "Dial")
	defer span.End()

	if err := request.Validate(); err != nil {
		return nil, err
	}
	if s.voice == nil || !s.voice.Configured() {
		return nil, &domain.ErrNotConfigured{Integration: "voice"}
	}

	call, err := s.voice.Dial(ctx, request.To)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("referenceid", request.ReferenceID).Error(fmt.Sprintf("Failed to dial: %v", err))
		return nil, fmt.Errorf("failed to dial: %w", err)
	}

	s.logger.WithField("referenceid", request.ReferenceID).WithField("sid", call.SID).Info("Call placed")
	return &domain.CallResult{
		SID:    call.SID,
		Status: call.Status,
		To:     call.To,
		From:   call.From,
	}, nil
}

func (s *IntegrationService) UploadMedia(ctx context.Context, upload domain.MediaUpload) (*domain.MediaObject, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "IntegrationService", "UploadMedia")
	defer span.End()

	if err := upload.Validate(); err != nil {
		return nil, err
	}
	if s.media == nil {
		return nil, &domain.ErrNotConfigured{Integration: "media"}
	}
	s.tracer.AddAttribute(ctx, "media.size", upload.Size)

	obj, err := s.media.Upload(ctx, upload.Filename, upload.ContentType, upload.Size, upload.Body)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("filename", upload.Filename).Error(fmt.Sprintf("Failed to upload media: %v", err))
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	return &domain.MediaObject{
		Key:         obj.Key,
		URL:         obj.URL,
		ContentType: obj.ContentType,
		Size:        obj.Size,
	}, nil
}

func (s *IntegrationService) shop(platform string) (storefront.Shop, error) {
	shop, ok := s.shops[platform]
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid platform: %s", platform))
	}
	if !shop.Configured() {
		return nil, &domain.ErrNotConfigured{Integration: platform}
	}
	return shop, nil
}

func (s *IntegrationService) ListProducts(ctx context.Context, platform string, limit int) ([]domain.StoreProduct, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "IntegrationService", "ListProducts")
	defer span.End()

	shop, err := s.shop(platform)
	if err != nil {
		return nil, err
	}

	products, err := shop.Products(ctx, limit)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("platform", platform).Error(fmt.Sprintf("Failed to list products: %v", err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := make([]domain.StoreProduct, 0, len(products))
	for _, p := range products {
		result = append(result, domain.StoreProduct{
			ID:        p.ID,
			Platform:  platform,
			Title:     p.Title,
			SKU:       p.SKU,
			Price:     p.Price,
			Stock:     p.Stock,
			Status:    p.Status,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return result, nil
}

func (s *IntegrationService) ListOrders(ctx context.Context, platform string, limit int) ([]domain.StoreOrder, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "IntegrationService", "ListOrders")
	defer span.End()

	shop, err := s.shop(platform)
	if err != nil {
		return nil, err
	}

	orders, err := shop.Orders(ctx, limit)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("platform", platform).Error(fmt.Sprintf("Failed to list orders: %v", err))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]domain.StoreOrder, 0, len(orders))
	for _, o := range orders {
		result = append(result, domain.StoreOrder{
			ID:        o.ID,
			Platform:  platform,
			Number:    o.Number,
			Customer:  o.Customer,
			Email:     o.Email,
			Total:     o.Total,
			Currency:  o.Currency,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}
	return result, nil
}

func (s *IntegrationService) ListFormEntries(ctx context.Context, formID string, page int) ([]domain.FormEntry, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "IntegrationService", "ListFormEntries")
	defer span.End()

	if s.forms == nil || !s.forms.Configured() {
		return nil, &domain.ErrNotConfigured{Integration: "forms"}
	}

	entries, err := s.forms.Entries(ctx, formID, page)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("form_id", formID).Error(fmt.Sprintf("Failed to list form entries: %v", err))
		return nil, fmt.Errorf("failed to list form entries: %w", err)
	}

	result := make([]domain.FormEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, domain.FormEntry{
			ID:        e.ID,
			FormID:    e.FormID,
			Fields:    e.Fields,
			CreatedAt: e.CreatedAt,
		})
	}
	return result, nil
}

func (s *IntegrationService) HandleFormSubmission(ctx context.Context, submission domain.FormSubmission) (*domain.Inquiry, error) {
	inquiry, err := submission.ToInquiry()
	if err != nil {
		return nil, err
	}

	if err := s.inquiries.CreateInquiry(ctx, inquiry); err != nil {
		return nil, err
	}

	s.logger.WithField("form_id", submission.FormID).WithField("inquiry_id", inquiry.ID).Info("Form submission stored as inquiry")
	return inquiry, nil
}
