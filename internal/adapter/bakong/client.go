package bakong

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"khqr-payment-gateway/internal/core/domain"
	"khqr-payment-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

const (
	checkTransactionPath = "/v1/check_transaction_by_md5"
	bulkCheckStatusPath  = "/v1/bulk_check_payment_status"
	paymentInfoPath      = "/v1/payment_info/"
	generateDeepLinkPath = "/v1/generate_deeplink_by_qr"

	// Bakong error code for "transaction could not be found". A QR that
	// nobody has scanned yet is in this state, so it maps to PENDING.
	errCodeTransactionNotFound = 1
	// Error code reported once the underlying QR/deep link has expired.
	errCodeTransactionFailed = 3
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SourceInfo is the deep-link branding block sent alongside the payload.
type SourceInfo struct {
	AppIconURL          string `json:"appIconUrl"`
	AppName             string `json:"appName"`
	AppDeepLinkCallback string `json:"appDeepLinkCallback"`
}

// Client talks to the Bakong open API.
type Client struct {
	baseURL    string
	token      string
	source     SourceInfo
	httpClient HTTPClient
}

// NewClient creates a Bakong API client. The token is the merchant's
// Bakong integration token, sent as a bearer credential.
func NewClient(baseURL, token string, source SourceInfo, httpClient HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		source:     source,
		httpClient: httpClient,
	}
}

// apiResponse is the common Bakong response envelope.
type apiResponse struct {
	ResponseCode    int             `json:"responseCode"`
	ResponseMessage string          `json:"responseMessage"`
	ErrorCode       *int            `json:"errorCode"`
	Data            json.RawMessage `json:"data"`
}

// CheckTransactionByMD5 looks up a transaction by its payload fingerprint.
// Response code 0 means the transaction settled (PAID). "Not found" is a
// normal pre-payment state and maps to PENDING. Anything else surfaces as
// a provider error with the API's message carried verbatim.
func (c *Client) CheckTransactionByMD5(ctx context.Context, fingerprint string) (domain.PaymentStatus, error) {
	body := map[string]string{"md5": fingerprint}

	resp, err := c.post(ctx, checkTransactionPath, body)
	if err != nil {
		return domain.PaymentStatusUnknown, err
	}

	if resp.ResponseCode == 0 {
		return domain.PaymentStatusPaid, nil
	}
	if resp.ErrorCode != nil {
		switch *resp.ErrorCode {
		case errCodeTransactionNotFound:
			return domain.PaymentStatusPending, nil
		case errCodeTransactionFailed:
			return domain.PaymentStatusExpired, nil
		}
	}
	return domain.PaymentStatusUnknown, apperror.ErrProvider(fmt.Errorf("%s", resp.ResponseMessage))
}

// bulkStatusResponse is the shape of the bulk status endpoint, which does
// not use the common response envelope.
type bulkStatusResponse struct {
	Results []struct {
		MD5Hash       string          `json:"md5_hash"`
		Status        string          `json:"status"`
		TransactionID string          `json:"transaction_id"`
		Amount        decimal.Decimal `json:"amount"`
		Timestamp     int64           `json:"timestamp"`
	} `json:"results"`
}

// CheckBulkPaymentStatus looks up many fingerprints in one round trip.
func (c *Client) CheckBulkPaymentStatus(ctx context.Context, fingerprints []string) ([]domain.BulkStatusEntry, error) {
	body := map[string]interface{}{"md5_hashes": fingerprints}

	raw, httpStatus, err := c.do(ctx, http.MethodPost, bulkCheckStatusPath, body)
	if err != nil {
		return nil, err
	}
	if httpStatus != http.StatusOK {
		return nil, apperror.ErrProvider(fmt.Errorf("bulk status check returned HTTP %d: %s", httpStatus, raw))
	}

	var resp bulkStatusResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, apperror.ErrProvider(fmt.Errorf("malformed bulk status response: %w", err))
	}

	entries := make([]domain.BulkStatusEntry, 0, len(resp.Results))
	for _, r := range resp.Results {
		entries = append(entries, domain.BulkStatusEntry{
			Fingerprint:   r.MD5Hash,
			Status:        normalizeProviderStatus(r.Status),
			TransactionID: r.TransactionID,
			Amount:        r.Amount,
			Timestamp:     r.Timestamp,
		})
	}
	return entries, nil
}

// paymentInfoResponse is the shape of the payment-info endpoint.
type paymentInfoResponse struct {
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	MerchantName  string          `json:"merchant_name"`
	BillNumber    string          `json:"bill_number"`
	CreatedAt     string          `json:"created_at"`
	PaidAt        string          `json:"paid_at"`
	PayerInfo     struct {
		Account string `json:"account"`
		Name    string `json:"name"`
	} `json:"payer_info"`
}

// GetPaymentInfo fetches the full transaction record behind a fingerprint.
// A fingerprint the provider has never seen yields a not-found error.
func (c *Client) GetPaymentInfo(ctx context.Context, fingerprint string) (*domain.TransactionInfo, error) {
	raw, httpStatus, err := c.do(ctx, http.MethodGet, paymentInfoPath+fingerprint, nil)
	if err != nil {
		return nil, err
	}
	if httpStatus == http.StatusNotFound {
		return nil, apperror.NotFound("Payment information not found")
	}
	if httpStatus != http.StatusOK {
		return nil, apperror.ErrProvider(fmt.Errorf("payment info lookup returned HTTP %d: %s", httpStatus, raw))
	}

	var resp paymentInfoResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, apperror.ErrProvider(fmt.Errorf("malformed payment info response: %w", err))
	}

	return &domain.TransactionInfo{
		Fingerprint:   fingerprint,
		Status:        normalizeProviderStatus(resp.Status),
		TransactionID: resp.TransactionID,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
		MerchantName:  resp.MerchantName,
		BillNumber:    resp.BillNumber,
		CreatedAt:     resp.CreatedAt,
		PaidAt:        resp.PaidAt,
		PayerAccount:  resp.PayerInfo.Account,
		PayerName:     resp.PayerInfo.Name,
	}, nil
}

// normalizeProviderStatus maps the free-form status strings of the bulk
// and payment-info endpoints onto the domain enum. SUCCESS is an alias
// the provider uses for settled transactions.
func normalizeProviderStatus(s string) domain.PaymentStatus {
	switch strings.ToUpper(s) {
	case "PAID", "SUCCESS":
		return domain.PaymentStatusPaid
	case "UNPAID", "PENDING":
		return domain.PaymentStatusPending
	case "EXPIRED", "FAILED":
		return domain.PaymentStatusExpired
	}
	return domain.PaymentStatusUnknown
}

// GenerateDeepLink converts a KHQR payload into a short link.
func (c *Client) GenerateDeepLink(ctx context.Context, payload string) (string, error) {
	body := map[string]interface{}{
		"qr":         payload,
		"sourceInfo": c.source,
	}

	resp, err := c.post(ctx, generateDeepLinkPath, body)
	if err != nil {
		return "", err
	}
	if resp.ResponseCode != 0 {
		return "", apperror.ErrProvider(fmt.Errorf("%s", resp.ResponseMessage))
	}

	var data struct {
		ShortLink string `json:"shortLink"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", apperror.ErrProvider(fmt.Errorf("malformed deep link response: %w", err))
	}
	if data.ShortLink == "" {
		return "", apperror.ErrProvider(fmt.Errorf("deep link response missing shortLink"))
	}
	return data.ShortLink, nil
}

// post sends a JSON body and decodes the common response envelope.
func (c *Client) post(ctx context.Context, path string, body interface{}) (*apiResponse, error) {
	raw, httpStatus, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, apperror.ErrProvider(fmt.Errorf("bakong api returned HTTP %d: %s", httpStatus, string(raw)))
	}
	return &resp, nil
}

// do performs one authenticated API call and returns the raw body plus
// HTTP status. body may be nil for GET requests.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, apperror.InternalError(fmt.Errorf("marshal request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, apperror.ErrProvider(err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, 0, apperror.ErrProvider(fmt.Errorf("read response: %w", err))
	}
	return raw, httpResp.StatusCode, nil
}
