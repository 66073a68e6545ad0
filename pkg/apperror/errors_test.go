package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("VAL_001", "Amount is required", http.StatusBadRequest)
	assert.Equal(t, "[VAL_001] Amount is required", e.Error())

	wrapped := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, errors.New("boom"))
	assert.Equal(t, "[SYS_001] Internal server error: boom", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)
	assert.True(t, errors.Is(e, inner))
}

func TestErrMissingConfig_ListsAllFields(t *testing.T) {
	e := ErrMissingConfig([]string{"BAKONG_TOKEN", "BANK_ACCOUNT", "PHONE_NUMBER"})
	assert.Equal(t, "CFG_001", e.Code)
	assert.Equal(t, "Missing required configuration: BAKONG_TOKEN, BANK_ACCOUNT, PHONE_NUMBER", e.Message)
}

func TestErrProvider_MessageVerbatim(t *testing.T) {
	inner := errors.New("Unauthorized. Token expired or invalid.")
	e := ErrProvider(inner)

	assert.Equal(t, "PRV_001", e.Code)
	assert.Equal(t, http.StatusBadGateway, e.HTTPStatus)
	assert.Equal(t, inner.Error(), e.Message)
	assert.True(t, errors.Is(e, inner))
}

func TestValidationErrors(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, ErrAmountRequired().HTTPStatus)
	require.Equal(t, http.StatusBadRequest, ErrInvalidAmount().HTTPStatus)

	e := ErrUnsupportedCurrency("EUR")
	assert.Equal(t, "VAL_003", e.Code)
	assert.Contains(t, e.Message, "EUR")
}
