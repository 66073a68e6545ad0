package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"khqr-payment-gateway/internal/core/domain"
	"khqr-payment-gateway/internal/core/ports"
	"khqr-payment-gateway/internal/core/ports/mocks"
	"khqr-payment-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMerchant = domain.MerchantConfig{
	Token:         "tok_test",
	BankAccount:   "merchant@bank",
	MerchantName:  "Test Shop",
	MerchantCity:  "Phnom Penh",
	PhoneNumber:   "85512345678",
	TerminalLabel: "Cashier-01",
	StoreLabel:    "Test Shop",
	CallbackURL:   "https://shop.example/orders",
	AppIconURL:    "https://shop.example/icon.png",
	AppName:       "Test Shop",
}

type qrTestDeps struct {
	svc      *QRServiceImpl
	provider *mocks.MockPaymentProvider
	renderer *mocks.MockQRRenderer
	cache    *mocks.MockStatusCache
	ctrl     *gomock.Controller
}

func setupQRService(t *testing.T, withCache bool) *qrTestDeps {
	ctrl := gomock.NewController(t)
	d := &qrTestDeps{
		provider: mocks.NewMockPaymentProvider(ctrl),
		renderer: mocks.NewMockQRRenderer(ctrl),
		cache:    mocks.NewMockStatusCache(ctrl),
		ctrl:     ctrl,
	}
	var cache ports.StatusCache
	if withCache {
		cache = d.cache
	}
	d.svc = NewQRService(testMerchant, domain.CurrencyUSD, d.provider, d.renderer, cache, zerolog.Nop())
	return d
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ==================== Generate Tests ====================

func TestQRService_Generate_Success(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().
		CreateRequest(ctx, testMerchant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.MerchantConfig, desc domain.TransactionDescriptor) (domain.PaymentRequest, error) {
			assert.Equal(t, domain.CurrencyUSD, desc.Currency)
			assert.Equal(t, "10.00", desc.AmountString())
			assert.Equal(t, "ORDER001", desc.BillNumber)
			return domain.NewPaymentRequest("QRPAYLOAD"), nil
		})

	result, err := d.svc.Generate(ctx, ports.GenerateRequest{
		Amount:     dec("10"),
		Currency:   "USD",
		BillNumber: "ORDER001",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "QRPAYLOAD", result.Payload)
	assert.Equal(t, domain.NewPaymentRequest("QRPAYLOAD").Fingerprint, result.Fingerprint)
	assert.Equal(t, "ORDER001", result.BillNumber)
	assert.Nil(t, result.DeepLink)
	assert.Nil(t, result.ImagePNG)
}

func TestQRService_Generate_SynthesizedBillNumber(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().
		CreateRequest(ctx, testMerchant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.MerchantConfig, desc domain.TransactionDescriptor) (domain.PaymentRequest, error) {
			assert.True(t, strings.HasPrefix(desc.BillNumber, "TRX"))
			return domain.NewPaymentRequest("QRPAYLOAD"), nil
		})

	result, err := d.svc.Generate(ctx, ports.GenerateRequest{Amount: dec("10")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.BillNumber, "TRX"))
}

func TestQRService_Generate_MissingAmount_NoProviderCall(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	// No expectation on the provider: validation must fail first.
	result, err := d.svc.Generate(context.Background(), ports.GenerateRequest{Currency: "USD"})
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "Amount is required", appErr.Message)
}

func TestQRService_Generate_WithDeepLink(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().
		CreateRequest(ctx, testMerchant, gomock.Any()).
		Return(domain.NewPaymentRequest("QRPAYLOAD"), nil)
	d.provider.EXPECT().
		GenerateDeepLink(ctx, "QRPAYLOAD").
		Return("https://bakong.page.link/abc", nil)

	result, err := d.svc.Generate(ctx, ports.GenerateRequest{
		Amount:       dec("10"),
		WithDeepLink: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.DeepLink)
	assert.Equal(t, "https://bakong.page.link/abc", *result.DeepLink)
}

func TestQRService_Generate_DeepLinkFailureIsNonFatal(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().
		CreateRequest(ctx, testMerchant, gomock.Any()).
		Return(domain.NewPaymentRequest("QRPAYLOAD"), nil)
	d.provider.EXPECT().
		GenerateDeepLink(ctx, "QRPAYLOAD").
		Return("", apperror.ErrProvider(errors.New("deeplink service unavailable")))

	result, err := d.svc.Generate(ctx, ports.GenerateRequest{
		Amount:       dec("10"),
		WithDeepLink: true,
	})
	require.NoError(t, err, "deep link failure must not prevent QR delivery")
	assert.Equal(t, "QRPAYLOAD", result.Payload)
	assert.Nil(t, result.DeepLink)
}

func TestQRService_Generate_WithImage(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	d.provider.EXPECT().
		CreateRequest(ctx, testMerchant, gomock.Any()).
		Return(domain.NewPaymentRequest("QRPAYLOAD"), nil)
	d.renderer.EXPECT().RenderPNG("QRPAYLOAD").Return(png, nil)

	result, err := d.svc.Generate(ctx, ports.GenerateRequest{
		Amount:    dec("10"),
		WithImage: true,
	})
	require.NoError(t, err)
	assert.Equal(t, png, result.ImagePNG)
}

func TestQRService_Generate_ProviderError(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()
	provErr := apperror.ErrProvider(errors.New("invalid bakong token"))

	d.provider.EXPECT().
		CreateRequest(ctx, testMerchant, gomock.Any()).
		Return(domain.PaymentRequest{}, provErr)

	_, err := d.svc.Generate(ctx, ports.GenerateRequest{Amount: dec("10")})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "invalid bakong token", appErr.Message)
}

// ==================== CheckStatus Tests ====================

func TestQRService_CheckStatus_Paid(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().CheckStatus(ctx, "abc123").Return(domain.PaymentStatusPaid, nil)

	result, err := d.svc.CheckStatus(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, result.Status)
	assert.True(t, result.IsPaid)
}

func TestQRService_CheckStatus_PendingIsNotPaid(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().CheckStatus(ctx, "abc123").Return(domain.PaymentStatusPending, nil)

	result, err := d.svc.CheckStatus(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, result.Status)
	assert.False(t, result.IsPaid)
}

func TestQRService_CheckStatus_EmptyFingerprint(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	_, err := d.svc.CheckStatus(context.Background(), "")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_004", appErr.Code)
}

func TestQRService_CheckStatus_ProviderErrorVerbatim(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().
		CheckStatus(ctx, "unknown-md5").
		Return(domain.PaymentStatusUnknown, apperror.ErrProvider(errors.New("Transaction could not be found")))

	_, err := d.svc.CheckStatus(ctx, "unknown-md5")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "Transaction could not be found", appErr.Message)
}

func TestQRService_CheckStatus_CacheHitSkipsProvider(t *testing.T) {
	d := setupQRService(t, true)
	defer d.ctrl.Finish()

	ctx := context.Background()

	// No provider expectation: the cached terminal result short-circuits.
	d.cache.EXPECT().Get(ctx, "abc123").Return(domain.PaymentStatusPaid, true, nil)

	result, err := d.svc.CheckStatus(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, result.IsPaid)
}

func TestQRService_CheckStatus_TerminalResultCached(t *testing.T) {
	d := setupQRService(t, true)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, "abc123").Return(domain.PaymentStatus(""), false, nil)
	d.provider.EXPECT().CheckStatus(ctx, "abc123").Return(domain.PaymentStatusPaid, nil)
	d.cache.EXPECT().Set(ctx, "abc123", domain.PaymentStatusPaid, statusCacheTTL).Return(nil)

	result, err := d.svc.CheckStatus(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, result.IsPaid)
}

func TestQRService_CheckStatus_PendingNeverCached(t *testing.T) {
	d := setupQRService(t, true)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, "abc123").Return(domain.PaymentStatus(""), false, nil)
	d.provider.EXPECT().CheckStatus(ctx, "abc123").Return(domain.PaymentStatusPending, nil)
	// No Set expectation: PENDING must not be cached.

	result, err := d.svc.CheckStatus(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, result.IsPaid)
}

func TestQRService_CheckStatus_CacheReadFailureFallsThrough(t *testing.T) {
	d := setupQRService(t, true)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, "abc123").Return(domain.PaymentStatus(""), false, errors.New("redis down"))
	d.provider.EXPECT().CheckStatus(ctx, "abc123").Return(domain.PaymentStatusPending, nil)

	result, err := d.svc.CheckStatus(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, result.Status)
}

// ==================== CheckBulkStatus Tests ====================

func TestQRService_CheckBulkStatus_EmptyList(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	// No provider expectation: validation must fail first.
	_, err := d.svc.CheckBulkStatus(context.Background(), nil)
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_004", appErr.Code)
}

func TestQRService_CheckBulkStatus_PartitionsPaid(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fingerprints := []string{"aaa", "bbb", "ccc"}

	d.provider.EXPECT().
		CheckBulkStatus(ctx, fingerprints).
		Return([]domain.BulkStatusEntry{
			{Fingerprint: "aaa", Status: domain.PaymentStatusPaid},
			{Fingerprint: "bbb", Status: domain.PaymentStatusPending},
			{Fingerprint: "ccc", Status: domain.PaymentStatusPaid},
		}, nil)

	result, err := d.svc.CheckBulkStatus(ctx, fingerprints)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalChecked)
	assert.Equal(t, 2, result.PaidCount)
	assert.Equal(t, []string{"aaa", "ccc"}, result.PaidFingerprints)
	assert.Len(t, result.Entries, 3)
}

func TestQRService_CheckBulkStatus_TerminalEntriesCached(t *testing.T) {
	d := setupQRService(t, true)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fingerprints := []string{"aaa", "bbb", "ccc"}

	d.provider.EXPECT().
		CheckBulkStatus(ctx, fingerprints).
		Return([]domain.BulkStatusEntry{
			{Fingerprint: "aaa", Status: domain.PaymentStatusPaid},
			{Fingerprint: "bbb", Status: domain.PaymentStatusPending},
			{Fingerprint: "ccc", Status: domain.PaymentStatusExpired},
		}, nil)
	// Only the terminal entries are written; PENDING is never cached.
	d.cache.EXPECT().Set(ctx, "aaa", domain.PaymentStatusPaid, statusCacheTTL).Return(nil)
	d.cache.EXPECT().Set(ctx, "ccc", domain.PaymentStatusExpired, statusCacheTTL).Return(nil)

	result, err := d.svc.CheckBulkStatus(ctx, fingerprints)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PaidCount)
}

func TestQRService_CheckBulkStatus_ProviderError(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.provider.EXPECT().
		CheckBulkStatus(ctx, []string{"aaa"}).
		Return(nil, apperror.ErrProvider(errors.New("bulk status check returned HTTP 500")))

	_, err := d.svc.CheckBulkStatus(ctx, []string{"aaa"})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRV_001", appErr.Code)
}

// ==================== GetTransactionInfo Tests ====================

func TestQRService_GetTransactionInfo_EmptyFingerprint(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	_, err := d.svc.GetTransactionInfo(context.Background(), "")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_004", appErr.Code)
}

func TestQRService_GetTransactionInfo_Success(t *testing.T) {
	d := setupQRService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()
	want := &domain.TransactionInfo{
		Fingerprint:   "abc123",
		Status:        domain.PaymentStatusPaid,
		TransactionID: "TXN42",
		Currency:      "USD",
		BillNumber:    "ORDER001",
	}

	d.provider.EXPECT().GetTransactionInfo(ctx, "abc123").Return(want, nil)

	info, err := d.svc.GetTransactionInfo(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, want, info)
}
