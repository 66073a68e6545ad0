package dto

import "github.com/shopspring/decimal"

// GenerateRequest is the request body for QR generation. Amount is a
// pointer so an absent field is distinguishable from zero and reported as
// "Amount is required" rather than a binding error.
type GenerateRequest struct {
	Amount       *decimal.Decimal `json:"amount"`
	Currency     string           `json:"currency"`
	BillNumber   string           `json:"bill_number"`
	WithDeepLink bool             `json:"with_deeplink"`
	WithImage    bool             `json:"with_image"`
}

// GenerateResponse is the response body for a generated payment request.
type GenerateResponse struct {
	QR         string  `json:"qr"`
	MD5        string  `json:"md5"`
	BillNumber string  `json:"bill_number"`
	DeepLink   *string `json:"deeplink,omitempty"`
	QRImage    *string `json:"qr_image,omitempty"` // base64-encoded PNG
}

// StatusResponse is the response body for a status poll.
type StatusResponse struct {
	Status string `json:"status"`
	IsPaid bool   `json:"is_paid"`
}

// BulkStatusRequest is the request body for a bulk status poll.
type BulkStatusRequest struct {
	Fingerprints []string `json:"md5_hashes"`
}

// BulkStatusDetail is one fingerprint's entry within a bulk poll response.
type BulkStatusDetail struct {
	Status        string          `json:"status"`
	IsPaid        bool            `json:"is_paid"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     int64           `json:"timestamp,omitempty"`
}

// BulkStatusResponse is the response body for a bulk status poll, keyed
// by fingerprint with the paid subset pre-partitioned.
type BulkStatusResponse struct {
	PaidTransactions []string                    `json:"paid_transactions"`
	TotalChecked     int                         `json:"total_checked"`
	PaidCount        int                         `json:"paid_count"`
	PaymentDetails   map[string]BulkStatusDetail `json:"payment_details"`
}

// TransactionInfoResponse is the response body for a transaction lookup.
type TransactionInfoResponse struct {
	MD5           string          `json:"md5"`
	Status        string          `json:"status"`
	IsPaid        bool            `json:"is_paid"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	MerchantName  string          `json:"merchant_name,omitempty"`
	BillNumber    string          `json:"bill_number,omitempty"`
	CreatedAt     string          `json:"created_at,omitempty"`
	PaidAt        string          `json:"paid_at,omitempty"`
	PayerAccount  string          `json:"payer_account,omitempty"`
	PayerName     string          `json:"payer_name,omitempty"`
}
