package domain

import (
	"fmt"
	"strings"
	"time"

	"khqr-payment-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Currency is a supported transaction currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyKHR Currency = "KHR" // zero-decimal: amounts are integral riel
)

// ParseCurrency normalizes a caller-supplied currency code, falling back to
// def when empty.
func ParseCurrency(s string, def Currency) (Currency, error) {
	if s == "" {
		return def, nil
	}
	switch Currency(strings.ToUpper(s)) {
	case CurrencyUSD:
		return CurrencyUSD, nil
	case CurrencyKHR:
		return CurrencyKHR, nil
	}
	return "", apperror.ErrUnsupportedCurrency(s)
}

// TransactionDescriptor is the canonical, normalized form of one payment
// request. Created per request, immutable, discarded once the response is
// sent.
type TransactionDescriptor struct {
	Amount     decimal.Decimal `json:"amount"`
	Currency   Currency        `json:"currency"`
	BillNumber string          `json:"bill_number"`
}

// AmountString renders the amount per the currency's decimal convention:
// integral for KHR, two decimals for USD.
func (d TransactionDescriptor) AmountString() string {
	if d.Currency == CurrencyKHR {
		return d.Amount.StringFixed(0)
	}
	return d.Amount.StringFixed(2)
}

// DescriptorInput is the raw, untyped caller input before validation.
type DescriptorInput struct {
	Amount     *decimal.Decimal
	Currency   string
	BillNumber string
}

// BuildDescriptor validates and normalizes raw input into a
// TransactionDescriptor. Pure apart from the bill-number clock read.
//
// When the caller supplies no bill number one is synthesized as
// TRX<unix-seconds>. Uniqueness is best-effort: two requests within the
// same second collide. Callers that need strict uniqueness must supply
// their own bill number.
func BuildDescriptor(in DescriptorInput, defaultCurrency Currency) (TransactionDescriptor, error) {
	if in.Amount == nil {
		return TransactionDescriptor{}, apperror.ErrAmountRequired()
	}
	if !in.Amount.IsPositive() {
		return TransactionDescriptor{}, apperror.ErrInvalidAmount()
	}

	currency, err := ParseCurrency(in.Currency, defaultCurrency)
	if err != nil {
		return TransactionDescriptor{}, err
	}

	amount := *in.Amount
	if currency == CurrencyKHR {
		amount = amount.Truncate(0)
	} else {
		amount = amount.Round(2)
	}

	billNumber := in.BillNumber
	if billNumber == "" {
		billNumber = fmt.Sprintf("TRX%d", time.Now().Unix())
	}

	return TransactionDescriptor{
		Amount:     amount,
		Currency:   currency,
		BillNumber: billNumber,
	}, nil
}
