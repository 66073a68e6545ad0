package domain

import (
	"crypto/md5" //nolint:gosec // fingerprint keying, mandated by the Bakong status API
	"encoding/hex"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the observed lifecycle state of an issued payment
// request. It is derived from the provider on every poll, never stored.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
	PaymentStatusUnknown PaymentStatus = "UNKNOWN"
)

// IsPaid returns true only for PAID. PENDING, EXPIRED and UNKNOWN are
// never considered paid.
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid
}

// IsTerminal returns true if no further polling can change the status.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusExpired
}

// BulkStatusEntry is one fingerprint's outcome within a bulk status poll.
type BulkStatusEntry struct {
	Fingerprint   string
	Status        PaymentStatus
	TransactionID string
	Amount        decimal.Decimal
	Timestamp     int64
}

// TransactionInfo is the full provider-side record behind a payment
// request, including settlement details once it is paid.
type TransactionInfo struct {
	Fingerprint   string
	Status        PaymentStatus
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	MerchantName  string
	BillNumber    string
	CreatedAt     string
	PaidAt        string
	PayerAccount  string
	PayerName     string
}

// PaymentRequest pairs the opaque KHQR payload with its fingerprint, the
// lookup key for status polling.
type PaymentRequest struct {
	Payload     string `json:"qr"`
	Fingerprint string `json:"md5"`
}

// NewPaymentRequest derives the fingerprint from the payload. The
// fingerprint is a pure function of the payload bytes: identical payloads
// always yield identical fingerprints, which makes status polling
// idempotent.
func NewPaymentRequest(payload string) PaymentRequest {
	sum := md5.Sum([]byte(payload)) //nolint:gosec
	return PaymentRequest{
		Payload:     payload,
		Fingerprint: hex.EncodeToString(sum[:]),
	}
}
