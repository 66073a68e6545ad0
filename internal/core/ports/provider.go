package ports

import (
	"context"
	"time"

	"khqr-payment-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// PaymentProvider is the capability boundary to the external KHQR
// provider. Implementations must be safe for concurrent use.
type PaymentProvider interface {
	// CreateRequest builds the KHQR payload for the descriptor and derives
	// its fingerprint. Deterministic: the same merchant config and
	// descriptor always produce the same payload and fingerprint.
	CreateRequest(ctx context.Context, merchant domain.MerchantConfig, desc domain.TransactionDescriptor) (domain.PaymentRequest, error)

	// GenerateDeepLink converts a payload into a short link that opens a
	// payment app. Optional capability: callers treat failure as non-fatal.
	GenerateDeepLink(ctx context.Context, payload string) (string, error)

	// CheckStatus queries the provider for the payment state behind a
	// fingerprint. Stateless on the caller's side; safe to poll.
	CheckStatus(ctx context.Context, fingerprint string) (domain.PaymentStatus, error)

	// CheckBulkStatus queries the provider for many fingerprints in a
	// single round trip. The result carries one entry per fingerprint the
	// provider recognizes.
	CheckBulkStatus(ctx context.Context, fingerprints []string) ([]domain.BulkStatusEntry, error)

	// GetTransactionInfo fetches the full provider-side record behind a
	// fingerprint, including settlement details once paid.
	GetTransactionInfo(ctx context.Context, fingerprint string) (*domain.TransactionInfo, error)
}

// PayloadEncoder produces the KHQR-compliant payload string. The wire
// format itself lives behind this boundary and is never reimplemented
// here.
type PayloadEncoder interface {
	Encode(ctx context.Context, merchant domain.MerchantConfig, desc domain.TransactionDescriptor) (string, error)
}

// StatusCache holds terminal poll results so repeat polling can skip the
// provider round trip. A miss is (status, false, nil).
type StatusCache interface {
	Get(ctx context.Context, fingerprint string) (domain.PaymentStatus, bool, error)
	Set(ctx context.Context, fingerprint string, status domain.PaymentStatus, ttl time.Duration) error
}

// QRRenderer rasterizes a payload into an image.
type QRRenderer interface {
	RenderPNG(payload string) ([]byte, error)
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "redis", "bakong").
	Name() string
}

// --- Service Ports (Business Logic) ---

// QRService orchestrates the payment-request workflow: validate input,
// build the descriptor, delegate to the provider, shape the result.
type QRService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	CheckStatus(ctx context.Context, fingerprint string) (*StatusResult, error)
	CheckBulkStatus(ctx context.Context, fingerprints []string) (*BulkStatusResult, error)
	GetTransactionInfo(ctx context.Context, fingerprint string) (*domain.TransactionInfo, error)
}

// GenerateRequest holds raw caller input for QR generation.
type GenerateRequest struct {
	Amount       *decimal.Decimal
	Currency     string
	BillNumber   string
	WithDeepLink bool
	WithImage    bool
}

// GenerateResult holds the issued payment request and its optional extras.
type GenerateResult struct {
	Payload     string
	Fingerprint string
	BillNumber  string
	DeepLink    *string // nil when not requested or generation failed
	ImagePNG    []byte  // nil when not requested
}

// StatusResult holds one poll outcome.
type StatusResult struct {
	Status domain.PaymentStatus
	IsPaid bool
}

// BulkStatusResult holds the outcome of one bulk poll: every entry the
// provider returned plus the paid subset, pre-partitioned for callers
// that only reconcile settlements.
type BulkStatusResult struct {
	Entries          []domain.BulkStatusEntry
	PaidFingerprints []string
	TotalChecked     int
	PaidCount        int
}
