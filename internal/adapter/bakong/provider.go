// Package bakong adapts the external KHQR provider: payload construction
// through a pluggable encoder, fingerprint derivation, and the Bakong open
// API for status lookup and deep links.
package bakong

import (
	"context"

	"khqr-payment-gateway/internal/core/domain"
	"khqr-payment-gateway/internal/core/ports"
	"khqr-payment-gateway/pkg/apperror"
)

// Provider implements ports.PaymentProvider.
type Provider struct {
	encoder ports.PayloadEncoder
	client  *Client
}

// NewProvider creates a Provider over the given encoder and API client.
func NewProvider(encoder ports.PayloadEncoder, client *Client) *Provider {
	return &Provider{encoder: encoder, client: client}
}

// CreateRequest encodes the KHQR payload and derives its MD5 fingerprint.
// Deterministic for a fixed merchant config and descriptor: the encoder is
// required to be a pure function of its inputs, and the fingerprint is a
// pure function of the payload bytes.
func (p *Provider) CreateRequest(ctx context.Context, merchant domain.MerchantConfig, desc domain.TransactionDescriptor) (domain.PaymentRequest, error) {
	payload, err := p.encoder.Encode(ctx, merchant, desc)
	if err != nil {
		return domain.PaymentRequest{}, apperror.ErrProvider(err)
	}
	return domain.NewPaymentRequest(payload), nil
}

// GenerateDeepLink asks the Bakong API for a short link opening a payment
// app preloaded with the payload.
func (p *Provider) GenerateDeepLink(ctx context.Context, payload string) (string, error) {
	return p.client.GenerateDeepLink(ctx, payload)
}

// CheckStatus queries the Bakong API for the payment behind a fingerprint.
func (p *Provider) CheckStatus(ctx context.Context, fingerprint string) (domain.PaymentStatus, error) {
	return p.client.CheckTransactionByMD5(ctx, fingerprint)
}

// CheckBulkStatus queries the Bakong API for many fingerprints at once.
func (p *Provider) CheckBulkStatus(ctx context.Context, fingerprints []string) ([]domain.BulkStatusEntry, error) {
	return p.client.CheckBulkPaymentStatus(ctx, fingerprints)
}

// GetTransactionInfo fetches the full transaction record behind a
// fingerprint.
func (p *Provider) GetTransactionInfo(ctx context.Context, fingerprint string) (*domain.TransactionInfo, error) {
	return p.client.GetPaymentInfo(ctx, fingerprint)
}
