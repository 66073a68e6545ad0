package service

import (
	"context"
	"time"

	"khqr-payment-gateway/internal/core/domain"
	"khqr-payment-gateway/internal/core/ports"
	"khqr-payment-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Terminal statuses never change, so a long TTL is safe. The TTL only
// bounds cache growth.
const statusCacheTTL = 24 * time.Hour

// QRServiceImpl implements ports.QRService.
type QRServiceImpl struct {
	merchant        domain.MerchantConfig
	defaultCurrency domain.Currency
	provider        ports.PaymentProvider
	renderer        ports.QRRenderer  // nil = image rendering disabled
	statusCache     ports.StatusCache // nil = caching disabled
	log             zerolog.Logger
}

// NewQRService creates a new QRServiceImpl.
func NewQRService(
	merchant domain.MerchantConfig,
	defaultCurrency domain.Currency,
	provider ports.PaymentProvider,
	renderer ports.QRRenderer,
	statusCache ports.StatusCache,
	log zerolog.Logger,
) *QRServiceImpl {
	return &QRServiceImpl{
		merchant:        merchant,
		defaultCurrency: defaultCurrency,
		provider:        provider,
		renderer:        renderer,
		statusCache:     statusCache,
		log:             log,
	}
}

// Generate validates the raw input, builds the canonical descriptor and
// delegates payload construction to the provider. Validation failures
// return before any provider call is made. Deep-link generation is
// best-effort: a failure there must not prevent QR delivery.
func (s *QRServiceImpl) Generate(ctx context.Context, req ports.GenerateRequest) (*ports.GenerateResult, error) {
	desc, err := domain.BuildDescriptor(domain.DescriptorInput{
		Amount:     req.Amount,
		Currency:   req.Currency,
		BillNumber: req.BillNumber,
	}, s.defaultCurrency)
	if err != nil {
		return nil, err
	}

	payment, err := s.provider.CreateRequest(ctx, s.merchant, desc)
	if err != nil {
		return nil, err
	}

	result := &ports.GenerateResult{
		Payload:     payment.Payload,
		Fingerprint: payment.Fingerprint,
		BillNumber:  desc.BillNumber,
	}

	if req.WithDeepLink && s.merchant.SupportsDeepLink() {
		link, err := s.provider.GenerateDeepLink(ctx, payment.Payload)
		if err != nil {
			s.log.Warn().Err(err).Str("md5", payment.Fingerprint).Msg("deep link generation failed, delivering QR without it")
		} else {
			result.DeepLink = &link
		}
	}

	if req.WithImage && s.renderer != nil {
		png, err := s.renderer.RenderPNG(payment.Payload)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		result.ImagePNG = png
	}

	s.log.Info().
		Str("md5", payment.Fingerprint).
		Str("bill_number", desc.BillNumber).
		Str("currency", string(desc.Currency)).
		Str("amount", desc.AmountString()).
		Msg("payment request issued")

	return result, nil
}

// CheckStatus polls the provider for the state behind a fingerprint.
// Terminal results (PAID, EXPIRED) are cached when a cache is configured;
// PENDING is never cached so the next poll hits the provider again.
func (s *QRServiceImpl) CheckStatus(ctx context.Context, fingerprint string) (*ports.StatusResult, error) {
	if fingerprint == "" {
		return nil, apperror.Validation("Fingerprint is required")
	}

	if s.statusCache != nil {
		status, hit, err := s.statusCache.Get(ctx, fingerprint)
		if err != nil {
			s.log.Warn().Err(err).Str("md5", fingerprint).Msg("status cache read failed, falling through to provider")
		} else if hit {
			return &ports.StatusResult{Status: status, IsPaid: status.IsPaid()}, nil
		}
	}

	status, err := s.provider.CheckStatus(ctx, fingerprint)
	if err != nil {
		return nil, err
	}

	if s.statusCache != nil && status.IsTerminal() {
		if err := s.statusCache.Set(ctx, fingerprint, status, statusCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("md5", fingerprint).Msg("status cache write failed")
		}
	}

	return &ports.StatusResult{Status: status, IsPaid: status.IsPaid()}, nil
}

// CheckBulkStatus polls many fingerprints in one provider round trip and
// partitions out the paid subset. Terminal entries are written to the
// cache so later single polls skip the provider.
func (s *QRServiceImpl) CheckBulkStatus(ctx context.Context, fingerprints []string) (*ports.BulkStatusResult, error) {
	if len(fingerprints) == 0 {
		return nil, apperror.Validation("At least one fingerprint is required")
	}

	entries, err := s.provider.CheckBulkStatus(ctx, fingerprints)
	if err != nil {
		return nil, err
	}

	result := &ports.BulkStatusResult{
		Entries:          entries,
		PaidFingerprints: make([]string, 0, len(entries)),
		TotalChecked:     len(fingerprints),
	}
	for _, e := range entries {
		if e.Status.IsPaid() {
			result.PaidFingerprints = append(result.PaidFingerprints, e.Fingerprint)
			result.PaidCount++
		}
		if s.statusCache != nil && e.Status.IsTerminal() {
			if err := s.statusCache.Set(ctx, e.Fingerprint, e.Status, statusCacheTTL); err != nil {
				s.log.Warn().Err(err).Str("md5", e.Fingerprint).Msg("status cache write failed")
			}
		}
	}

	s.log.Info().
		Int("total_checked", result.TotalChecked).
		Int("paid_count", result.PaidCount).
		Msg("bulk status poll completed")

	return result, nil
}

// GetTransactionInfo fetches the full provider-side transaction record
// behind a fingerprint.
func (s *QRServiceImpl) GetTransactionInfo(ctx context.Context, fingerprint string) (*domain.TransactionInfo, error) {
	if fingerprint == "" {
		return nil, apperror.Validation("Fingerprint is required")
	}
	return s.provider.GetTransactionInfo(ctx, fingerprint)
}
